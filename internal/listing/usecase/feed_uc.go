package usecase

import (
	"context"

	"github.com/burakcnaksy0/classifieds-service/internal/config"
	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

// FeedPage is one page of the aggregated cross-category feed.
type FeedPage struct {
	Items      []domain.ListingSummary `json:"items"`
	TotalCount int64                   `json:"totalCount"`
	TotalPages int64                   `json:"totalPages"`
	Number     int                     `json:"page"`
	Size       int                     `json:"size"`
}

// FeedUsecase merges the four category result sets into one polymorphic
// feed. The page slice is always computed over the concatenation of the
// category sets in fixed variant order, so page boundaries may split inside
// a category; both pagination modes preserve that semantics.
type FeedUsecase struct {
	repo       domain.ListingRepository
	search     domain.SearchRepository
	summarizer *Summarizer
	mode       string
	logger     logger.Logger
}

func NewFeedUsecase(
	repo domain.ListingRepository,
	search domain.SearchRepository,
	summarizer *Summarizer,
	mode string,
	log logger.Logger,
) *FeedUsecase {
	return &FeedUsecase{
		repo:       repo,
		search:     search,
		summarizer: summarizer,
		mode:       mode,
		logger:     log,
	}
}

// Feed returns the entire unpaged feed: all four category result sets
// concatenated in variant order and mapped to summaries.
func (uc *FeedUsecase) Feed(ctx context.Context) ([]domain.ListingSummary, error) {
	var all []*domain.Listing
	for _, t := range domain.AllListingTypes() {
		listings, err := uc.repo.FindAllByType(ctx, t)
		if err != nil {
			return nil, err
		}
		all = append(all, listings...)
	}
	return uc.summarizer.Summarize(ctx, all), nil
}

func (uc *FeedUsecase) FeedPage(ctx context.Context, page domain.Page) (*FeedPage, error) {
	page = page.Normalize()

	var result *domain.ListingPage
	var err error
	if uc.mode == config.FeedModeStore {
		result, err = uc.search.FeedPage(ctx, page)
	} else {
		result, err = uc.memoryFeedPage(ctx, page)
	}
	if err != nil {
		return nil, err
	}

	return &FeedPage{
		Items:      uc.summarizer.Summarize(ctx, result.Items),
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages(),
		Number:     result.Number,
		Size:       result.Size,
	}, nil
}

// memoryFeedPage keeps the historical page semantics: the page is sliced out
// of the concatenation of the category result sets. Totals come from the
// per-type counts, so categories wholly outside the requested window are
// counted but never loaded. The store mode exists for deployments where even
// one category result set is too large to hold in memory.
func (uc *FeedUsecase) memoryFeedPage(ctx context.Context, page domain.Page) (*domain.ListingPage, error) {
	types := domain.AllListingTypes()
	counts := make([]int64, len(types))
	var total int64
	for i, t := range types {
		count, err := uc.repo.CountByType(ctx, t)
		if err != nil {
			return nil, err
		}
		counts[i] = count
		total += count
	}

	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + int64(page.Size)
	if end > total {
		end = total
	}

	var items []*domain.Listing
	cursor := int64(0)
	for i, t := range types {
		next := cursor + counts[i]
		if next <= start || cursor >= end {
			cursor = next
			continue
		}
		listings, err := uc.repo.FindAllByType(ctx, t)
		if err != nil {
			return nil, err
		}
		lo := start - cursor
		if lo < 0 {
			lo = 0
		}
		hi := end - cursor
		if hi > int64(len(listings)) {
			hi = int64(len(listings))
		}
		if lo < hi {
			items = append(items, listings[lo:hi]...)
		}
		cursor = next
	}

	return &domain.ListingPage{
		Items:      items,
		TotalCount: total,
		Number:     page.Number,
		Size:       page.Size,
	}, nil
}
