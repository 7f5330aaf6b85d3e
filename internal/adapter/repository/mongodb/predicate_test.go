package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestFilterPredicate_EmptyFilterMatchesWholeCategory(t *testing.T) {
	p, err := filterPredicate(domain.VehicleFilter{})

	assert.NoError(t, err)
	doc := p.render()
	// Only the discriminator remains; an empty filter is find-all.
	assert.Equal(t, bson.D{{Key: "listing_type", Value: "VEHICLE"}}, doc)
}

func TestFilterPredicate_SkipsNilFields(t *testing.T) {
	p, err := filterPredicate(domain.RealEstateFilter{
		ListingFilter: domain.ListingFilter{City: strPtr("Istanbul")},
		MinSquareMeter: intPtr(80),
	})

	assert.NoError(t, err)
	doc := p.render()
	assert.Len(t, doc, 3)
	assert.Equal(t, "listing_type", doc[0].Key)
	assert.Equal(t, "city", doc[1].Key)
	assert.Equal(t, "real_estate.square_meter", doc[2].Key)
}

func TestFilterPredicate_CaseInsensitiveExactMatch(t *testing.T) {
	p, err := filterPredicate(domain.VehicleFilter{
		Brand: strPtr("B.M.W (official)"),
	})

	assert.NoError(t, err)
	doc := p.render()
	clause, ok := doc[1].Value.(bson.M)
	assert.True(t, ok)
	// Anchored and quoted: metacharacters in the value must not act as regex.
	assert.Equal(t, `^B\.M\.W \(official\)$`, clause["$regex"])
	assert.Equal(t, "i", clause["$options"])
}

func TestFilterPredicate_MergesRangeBoundsPerField(t *testing.T) {
	p, err := filterPredicate(domain.VehicleFilter{
		ListingFilter: domain.ListingFilter{
			MinPrice: floatPtr(500000),
			MaxPrice: floatPtr(900000),
		},
		MinYear: intPtr(2015),
		MaxYear: intPtr(2020),
	})

	assert.NoError(t, err)
	doc := p.render()
	assert.Len(t, doc, 3)

	price, ok := doc[1].Value.(bson.M)
	assert.True(t, ok)
	assert.Equal(t, 500000.0, price["$gte"])
	assert.Equal(t, 900000.0, price["$lte"])

	year, ok := doc[2].Value.(bson.M)
	assert.True(t, ok)
	assert.Equal(t, 2015, year["$gte"])
	assert.Equal(t, 2020, year["$lte"])
}

func TestFilterPredicate_ConditionOrderIsDeterministic(t *testing.T) {
	filter := domain.WorkplaceFilter{
		ListingFilter: domain.ListingFilter{
			City:   strPtr("Izmir"),
			Status: statusPtr(domain.StatusActive),
		},
		Furnished: boolPtr(true),
	}

	first, err := filterPredicate(filter)
	assert.NoError(t, err)
	second, err := filterPredicate(filter)
	assert.NoError(t, err)
	assert.Equal(t, first.render(), second.render())
}

func statusPtr(s domain.ListingStatus) *domain.ListingStatus { return &s }

func TestPredicate_Empty(t *testing.T) {
	p := &predicate{}
	assert.True(t, p.empty())
	p.eq("listing_type", "LAND")
	assert.False(t, p.empty())
}

func TestSortSpec(t *testing.T) {
	tests := []struct {
		name string
		page domain.Page
		want bson.D
	}{
		{
			"unknown field defaults to newest first",
			domain.Page{SortBy: "magic"},
			bson.D{{Key: "created_at", Value: -1}},
		},
		{
			"price ascending",
			domain.Page{SortBy: "price", SortOrder: "asc"},
			bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}},
		},
		{
			"vehicle year descending",
			domain.Page{SortBy: "year", SortOrder: "desc"},
			bson.D{{Key: "vehicle.year", Value: -1}, {Key: "_id", Value: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortSpec(tt.page))
		})
	}
}

func TestTextSearchPhrase_QuotesEveryToken(t *testing.T) {
	assert.Equal(t, `"deniz" "manzara"`, textSearchPhrase("deniz manzara"))
	assert.Equal(t, `"tek"`, textSearchPhrase("  tek  "))
	assert.Equal(t, "", textSearchPhrase("   "))
}
