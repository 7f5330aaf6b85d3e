package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validListing(t *testing.T) *Listing {
	t.Helper()
	price, err := primitive.ParseDecimal128("1000000")
	assert.NoError(t, err)
	return &Listing{
		Type:       TypeLand,
		Title:      "Corner parcel",
		Price:      price,
		City:       "Bursa",
		CategoryID: "cat-land",
		Land:       &LandDetails{LandType: "FIELD", SquareMeter: 2000},
	}
}

func TestListingValidate(t *testing.T) {
	t.Run("valid listing passes", func(t *testing.T) {
		assert.NoError(t, validListing(t).Validate())
	})

	t.Run("empty title", func(t *testing.T) {
		l := validListing(t)
		l.Title = ""
		assert.ErrorIs(t, l.Validate(), ErrValidation)
	})

	t.Run("title length limit counts runes", func(t *testing.T) {
		l := validListing(t)
		l.Title = strings.Repeat("ş", 150)
		assert.NoError(t, l.Validate())
		l.Title = strings.Repeat("ş", 151)
		assert.ErrorIs(t, l.Validate(), ErrValidation)
	})

	t.Run("price must be positive", func(t *testing.T) {
		for _, raw := range []string{"0", "-5"} {
			price, err := primitive.ParseDecimal128(raw)
			assert.NoError(t, err)
			l := validListing(t)
			l.Price = price
			assert.ErrorIs(t, l.Validate(), ErrValidation)
		}
	})

	t.Run("latitude without longitude", func(t *testing.T) {
		l := validListing(t)
		lat := 40.19
		l.Latitude = &lat
		assert.ErrorIs(t, l.Validate(), ErrValidation)
	})

	t.Run("variant must match the discriminator", func(t *testing.T) {
		l := validListing(t)
		l.Type = TypeVehicle
		assert.ErrorIs(t, l.Validate(), ErrValidation)
	})

	t.Run("exactly one variant payload", func(t *testing.T) {
		l := validListing(t)
		l.Vehicle = &VehicleDetails{Brand: "Renault"}
		assert.ErrorIs(t, l.Validate(), ErrValidation)

		l = validListing(t)
		l.Land = nil
		assert.ErrorIs(t, l.Validate(), ErrValidation)
	})

	t.Run("unknown type", func(t *testing.T) {
		l := validListing(t)
		l.Type = "BOAT"
		assert.ErrorIs(t, l.Validate(), ErrValidation)
	})
}

func TestPageNormalize(t *testing.T) {
	p := Page{Number: -3, Size: 0, SortOrder: "sideways"}.Normalize()
	assert.Equal(t, 0, p.Number)
	assert.Equal(t, 20, p.Size)
	assert.Equal(t, "desc", p.SortOrder)

	p = Page{Size: 5000, SortOrder: "asc"}.Normalize()
	assert.Equal(t, 100, p.Size)
	assert.Equal(t, "asc", p.SortOrder)
}

func TestListingPageTotalPages(t *testing.T) {
	page := &ListingPage{TotalCount: 21, Size: 10}
	assert.Equal(t, int64(3), page.TotalPages())

	page = &ListingPage{TotalCount: 0, Size: 10}
	assert.Equal(t, int64(0), page.TotalPages())
}
