package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

const (
	minSuggestionTermLen = 2
	suggestionLimit      = 5
)

// SearchResult is one page of advanced-search hits.
type SearchResult struct {
	Items      []domain.ListingSummary `json:"items"`
	TotalCount int64                   `json:"totalCount"`
	TotalPages int64                   `json:"totalPages"`
	Number     int                     `json:"page"`
	Size       int                     `json:"size"`
}

type SearchUsecase struct {
	search      domain.SearchRepository
	suggestions domain.SuggestionCache
	saved       domain.SavedSearchStore
	summarizer  *Summarizer
	logger      logger.Logger
}

func NewSearchUsecase(
	search domain.SearchRepository,
	suggestions domain.SuggestionCache,
	saved domain.SavedSearchStore,
	summarizer *Summarizer,
	log logger.Logger,
) *SearchUsecase {
	return &SearchUsecase{
		search:      search,
		suggestions: suggestions,
		saved:       saved,
		summarizer:  summarizer,
		logger:      log,
	}
}

// Advanced executes a validated full-text / geospatial / filtered search.
func (uc *SearchUsecase) Advanced(ctx context.Context, q domain.SearchQuery) (*SearchResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	q.Page = q.Page.Normalize()

	page, err := uc.search.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		Items:      uc.summarizer.Summarize(ctx, page.Items),
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages(),
		Number:     page.Number,
		Size:       page.Size,
	}, nil
}

// Nearby is radius search around a point, sorted by distance.
func (uc *SearchUsecase) Nearby(ctx context.Context, lat, lng, radiusKm float64, page domain.Page) (*SearchResult, error) {
	q := domain.SearchQuery{
		Latitude:  &lat,
		Longitude: &lng,
		RadiusKm:  &radiusKm,
		SortBy:    domain.SortByDistance,
		Page:      page,
	}
	return uc.Advanced(ctx, q)
}

// Suggest returns up to five city and five district completions for the
// prefix term, most frequent first. Terms shorter than two characters never
// reach the store or the cache.
func (uc *SearchUsecase) Suggest(ctx context.Context, term string) ([]domain.Suggestion, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < minSuggestionTermLen {
		return []domain.Suggestion{}, nil
	}

	if cached, ok, err := uc.suggestions.GetSuggestions(ctx, term); err != nil {
		uc.logger.Warnf("suggestion cache read failed: %v", err)
	} else if ok {
		return cached, nil
	}

	cities, err := uc.search.SuggestField(ctx, domain.SuggestionCity, term, suggestionLimit)
	if err != nil {
		return nil, err
	}
	districts, err := uc.search.SuggestField(ctx, domain.SuggestionDistrict, term, suggestionLimit)
	if err != nil {
		return nil, err
	}
	result := append(cities, districts...)

	if err := uc.suggestions.SetSuggestions(ctx, term, result); err != nil {
		uc.logger.Warnf("suggestion cache write failed: %v", err)
	}
	return result, nil
}

// SaveSearch persists a named criteria map for the user.
func (uc *SearchUsecase) SaveSearch(ctx context.Context, userID, name string, criteria map[string]string) (*domain.SavedSearch, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: saved search name is required", domain.ErrValidation)
	}
	search := &domain.SavedSearch{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Criteria:  criteria,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.saved.Save(ctx, search); err != nil {
		return nil, err
	}
	return search, nil
}

func (uc *SearchUsecase) ListSaved(ctx context.Context, userID string) ([]*domain.SavedSearch, error) {
	return uc.saved.FindByUser(ctx, userID)
}

func (uc *SearchUsecase) DeleteSaved(ctx context.Context, userID, id string) error {
	return uc.saved.Delete(ctx, userID, id)
}

// ReplaySaved re-executes a stored search with fresh pagination. The stored
// criteria map may contain keys written by older clients; only recognized
// keys contribute to the rebuilt query.
func (uc *SearchUsecase) ReplaySaved(ctx context.Context, userID, id string, page domain.Page) (*SearchResult, error) {
	search, err := uc.saved.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	q := RequestFromCriteria(search.Criteria)
	q.Page = page
	return uc.Advanced(ctx, q)
}

// RequestFromCriteria rebuilds a search query from a stored string criteria
// map. Unrecognized keys and unparseable numeric values are ignored.
func RequestFromCriteria(criteria map[string]string) domain.SearchQuery {
	var q domain.SearchQuery
	for key, value := range criteria {
		switch key {
		case "query":
			q.Query = value
		case "city":
			q.City = value
		case "district":
			q.District = value
		case "status":
			q.Status = domain.ListingStatus(value)
		case "minPrice":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				q.MinPrice = &f
			}
		case "maxPrice":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				q.MaxPrice = &f
			}
		case "lat":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				q.Latitude = &f
			}
		case "lng":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				q.Longitude = &f
			}
		case "radius":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				q.RadiusKm = &f
			}
		case "sortBy":
			q.SortBy = domain.SearchSort(value)
		case "sortOrder":
			q.SortOrder = value
		}
	}
	return q
}
