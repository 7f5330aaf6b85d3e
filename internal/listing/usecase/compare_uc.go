package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

const (
	minCompareCount = 2
	maxCompareCount = 3
)

// CompareUsecase builds side-by-side comparison tables for two or three
// listings of the same category.
type CompareUsecase struct {
	repo       domain.ListingRepository
	categories domain.CategoryRepository
	images     domain.ImageStorage
	logger     logger.Logger
}

func NewCompareUsecase(
	repo domain.ListingRepository,
	categories domain.CategoryRepository,
	images domain.ImageStorage,
	log logger.Logger,
) *CompareUsecase {
	return &CompareUsecase{repo: repo, categories: categories, images: images, logger: log}
}

// Compare validates the id count before touching the store, loads the
// listings and renders the fixed per-category field table. Every listing
// must exist and all of them must belong to the same category.
func (uc *CompareUsecase) Compare(ctx context.Context, ids []int64) (*domain.ComparisonResult, error) {
	if len(ids) < minCompareCount || len(ids) > maxCompareCount {
		return nil, fmt.Errorf("%w: select 2 or 3 listings to compare", domain.ErrInvalidComparison)
	}

	listings, err := uc.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}

	ordered := make([]*domain.Listing, 0, len(ids))
	for _, id := range ids {
		l, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: listing %d", domain.ErrNotFound, id)
		}
		ordered = append(ordered, l)
	}

	slug, err := uc.sharedCategorySlug(ctx, ordered)
	if err != nil {
		return nil, err
	}

	result := &domain.ComparisonResult{
		Category: slug,
		Listings: make(map[string]domain.ComparisonHeader, len(ordered)),
	}
	for _, l := range ordered {
		result.Listings[strconv.FormatInt(l.ID, 10)] = uc.header(ctx, l)
	}

	for _, spec := range comparisonFields(ordered[0].Type) {
		field := domain.ComparisonField{
			FieldName: spec.name,
			Values:    make(map[string]string, len(ordered)),
		}
		for _, l := range ordered {
			field.Values[strconv.FormatInt(l.ID, 10)] = spec.value(l)
		}
		result.Fields = append(result.Fields, field)
	}
	return result, nil
}

// sharedCategorySlug resolves every listing's category and requires them to
// agree. Mixed-category selections cannot be compared field by field.
func (uc *CompareUsecase) sharedCategorySlug(ctx context.Context, listings []*domain.Listing) (string, error) {
	var slug string
	for i, l := range listings {
		if l.Type != listings[0].Type {
			return "", fmt.Errorf("%w: listings must belong to the same category", domain.ErrInvalidComparison)
		}
		cat, err := uc.categories.FindByID(ctx, l.CategoryID)
		if err != nil {
			return "", fmt.Errorf("resolve category of listing %d: %w", l.ID, err)
		}
		if i == 0 {
			slug = cat.Slug
			continue
		}
		if cat.Slug != slug {
			return "", fmt.Errorf("%w: listings must belong to the same category", domain.ErrInvalidComparison)
		}
	}
	return slug, nil
}

func (uc *CompareUsecase) header(ctx context.Context, l *domain.Listing) domain.ComparisonHeader {
	header := domain.ComparisonHeader{
		ID:       l.ID,
		Title:    l.Title,
		Price:    FormatPrice(l.Price, l.Currency),
		City:     l.City,
		District: l.District,
	}
	if url, err := uc.images.FirstImageURL(ctx, l.ID); err != nil {
		uc.logger.Debugf("failed to resolve image of listing %d: %v", l.ID, err)
	} else {
		header.ImageURL = url
	}
	return header
}
