package domain

import (
	"fmt"
	"time"
)

type SearchSort string

const (
	SortByDate      SearchSort = "date"
	SortByPrice     SearchSort = "price"
	SortByDistance  SearchSort = "distance"
	SortByRelevance SearchSort = "relevance"
)

// SearchQuery is an advanced-search request: full text, geospatial radius
// and plain filters composed with a logical AND. Zero values mean the
// corresponding criterion is absent.
type SearchQuery struct {
	Query    string
	City     string
	District string
	Status   ListingStatus
	MinPrice *float64
	MaxPrice *float64

	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64

	SortBy    SearchSort
	SortOrder string

	Page Page
}

// Validate rejects combinations the store cannot execute. Sorting by
// distance needs a point, sorting by relevance needs query text and a
// radius is meaningless without a point.
func (q *SearchQuery) Validate() error {
	if (q.Latitude == nil) != (q.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be provided together", ErrValidation)
	}
	if q.RadiusKm != nil {
		if q.Latitude == nil {
			return fmt.Errorf("%w: radius search requires latitude and longitude", ErrValidation)
		}
		if *q.RadiusKm <= 0 {
			return fmt.Errorf("%w: radius must be greater than zero", ErrValidation)
		}
	}
	if q.SortBy == SortByDistance && q.Latitude == nil {
		return fmt.Errorf("%w: sorting by distance requires latitude and longitude", ErrValidation)
	}
	if q.SortBy == SortByRelevance && q.Query == "" {
		return fmt.Errorf("%w: sorting by relevance requires a query string", ErrValidation)
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return fmt.Errorf("%w: minPrice must not exceed maxPrice", ErrValidation)
	}
	return nil
}

type SuggestionType string

const (
	SuggestionCity     SuggestionType = "CITY"
	SuggestionDistrict SuggestionType = "DISTRICT"
)

// Suggestion is one autocomplete entry annotated with the number of
// listings sharing the value.
type Suggestion struct {
	Type         SuggestionType `json:"type"`
	Value        string         `json:"value"`
	ListingCount int64          `json:"listingCount"`
}

// SavedSearch stores an arbitrary criteria map that can later be replayed
// as an advanced-search request. Unrecognized keys survive storage and are
// ignored at replay time.
type SavedSearch struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Name      string            `json:"name"`
	Criteria  map[string]string `json:"criteria"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ListingSummary is the normalized cross-category shape consumed by the
// aggregated feed, search results and external subsystems.
type ListingSummary struct {
	ID            int64         `json:"id"`
	ListingType   ListingType   `json:"listingType"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Price         string        `json:"price"`
	Currency      Currency      `json:"currency"`
	City          string        `json:"city"`
	District      string        `json:"district"`
	CategorySlug  string        `json:"categorySlug"`
	CategoryName  string        `json:"categoryName"`
	Status        ListingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	OwnerUsername string        `json:"ownerUsername"`
	ImageURL      string        `json:"imageUrl,omitempty"`
	ViewCount     int64         `json:"viewCount"`
	FavoriteCount int64         `json:"favoriteCount"`
}

// ComparisonField is one row of a side-by-side comparison: a display name
// and one formatted value per listing id.
type ComparisonField struct {
	FieldName string            `json:"fieldName"`
	Values    map[string]string `json:"values"`
}

// ComparisonHeader describes one compared listing in the header block.
type ComparisonHeader struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	City     string `json:"city"`
	District string `json:"district"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type ComparisonResult struct {
	Category string                      `json:"category"`
	Fields   []ComparisonField           `json:"fields"`
	Listings map[string]ComparisonHeader `json:"listings"`
}
