package rest

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

// createListingRequest is the write shape of a listing. Price travels as a
// string so clients keep arbitrary decimal precision. Exactly one variant
// block must be present and must match listingType.
type createListingRequest struct {
	Type        domain.ListingType   `json:"listingType"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Price       string               `json:"price"`
	Currency    domain.Currency      `json:"currency"`
	Status      domain.ListingStatus `json:"status"`
	OfferType   domain.OfferType     `json:"offerType"`
	City        string               `json:"city"`
	District    string               `json:"district"`
	Latitude    *float64             `json:"latitude"`
	Longitude   *float64             `json:"longitude"`
	CategoryID  string               `json:"categoryId"`

	RealEstate *domain.RealEstateDetails `json:"realEstate"`
	Vehicle    *domain.VehicleDetails    `json:"vehicle"`
	Land       *domain.LandDetails       `json:"land"`
	Workplace  *domain.WorkplaceDetails  `json:"workplace"`
}

func (r *createListingRequest) toDomain() (*domain.Listing, error) {
	price, err := parsePrice(r.Price)
	if err != nil {
		return nil, err
	}
	return &domain.Listing{
		Type:        r.Type,
		Title:       r.Title,
		Description: r.Description,
		Price:       price,
		Currency:    r.Currency,
		Status:      r.Status,
		OfferType:   r.OfferType,
		City:        r.City,
		District:    r.District,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		CategoryID:  r.CategoryID,
		RealEstate:  r.RealEstate,
		Vehicle:     r.Vehicle,
		Land:        r.Land,
		Workplace:   r.Workplace,
	}, nil
}

// updateListingRequest mirrors the patch shape: absent fields leave stored
// values untouched.
type updateListingRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Price       *string               `json:"price"`
	Currency    *domain.Currency      `json:"currency"`
	Status      *domain.ListingStatus `json:"status"`
	OfferType   *domain.OfferType     `json:"offerType"`
	City        *string               `json:"city"`
	District    *string               `json:"district"`
	Latitude    *float64              `json:"latitude"`
	Longitude   *float64              `json:"longitude"`
	CategoryID  *string               `json:"categoryId"`

	RealEstate *domain.RealEstatePatch `json:"realEstate"`
	Vehicle    *domain.VehiclePatch    `json:"vehicle"`
	Land       *domain.LandPatch       `json:"land"`
	Workplace  *domain.WorkplacePatch  `json:"workplace"`
}

func (r *updateListingRequest) toDomain() (domain.ListingPatch, error) {
	patch := domain.ListingPatch{
		Title:       r.Title,
		Description: r.Description,
		Currency:    r.Currency,
		Status:      r.Status,
		OfferType:   r.OfferType,
		City:        r.City,
		District:    r.District,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		CategoryID:  r.CategoryID,
		RealEstate:  r.RealEstate,
		Vehicle:     r.Vehicle,
		Land:        r.Land,
		Workplace:   r.Workplace,
	}
	if r.Price != nil {
		price, err := parsePrice(*r.Price)
		if err != nil {
			return domain.ListingPatch{}, err
		}
		patch.Price = &price
	}
	return patch, nil
}

type updateStatusRequest struct {
	Status domain.ListingStatus `json:"status"`
}

type compareRequest struct {
	ListingIDs []int64 `json:"listingIds"`
}

type saveSearchRequest struct {
	Name     string            `json:"name"`
	Criteria map[string]string `json:"criteria"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func parsePrice(s string) (primitive.Decimal128, error) {
	if s == "" {
		return primitive.Decimal128{}, fmt.Errorf("%w: price is required", domain.ErrValidation)
	}
	price, err := primitive.ParseDecimal128(s)
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("%w: invalid price %q", domain.ErrValidation, s)
	}
	return price, nil
}
