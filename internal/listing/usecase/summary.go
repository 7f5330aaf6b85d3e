package usecase

import (
	"context"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

// Summarizer maps listings to the normalized cross-category summary shape,
// resolving category, owner username and first image through the
// collaborator interfaces. Resolution failures degrade to empty values;
// a feed page must not fail because one owner or image is unresolvable.
type Summarizer struct {
	categories domain.CategoryRepository
	users      domain.UserResolver
	images     domain.ImageStorage
	logger     logger.Logger
}

func NewSummarizer(
	categories domain.CategoryRepository,
	users domain.UserResolver,
	images domain.ImageStorage,
	log logger.Logger,
) *Summarizer {
	return &Summarizer{categories: categories, users: users, images: images, logger: log}
}

func (s *Summarizer) Summarize(ctx context.Context, listings []*domain.Listing) []domain.ListingSummary {
	categoryByID := map[string]*domain.Category{}
	usernameByID := map[string]string{}

	summaries := make([]domain.ListingSummary, 0, len(listings))
	for _, l := range listings {
		summary := domain.ListingSummary{
			ID:            l.ID,
			ListingType:   l.Type,
			Title:         l.Title,
			Description:   l.Description,
			Price:         l.Price.String(),
			Currency:      l.Currency,
			City:          l.City,
			District:      l.District,
			Status:        l.Status,
			CreatedAt:     l.CreatedAt,
			UpdatedAt:     l.UpdatedAt,
			ViewCount:     l.ViewCount,
			FavoriteCount: l.FavoriteCount,
		}

		if cat := s.category(ctx, categoryByID, l.CategoryID); cat != nil {
			summary.CategorySlug = cat.Slug
			summary.CategoryName = cat.Name
		}
		summary.OwnerUsername = s.username(ctx, usernameByID, l.CreatedBy)

		if url, err := s.images.FirstImageURL(ctx, l.ID); err != nil {
			s.logger.Debugf("failed to resolve image of listing %d: %v", l.ID, err)
		} else {
			summary.ImageURL = url
		}

		summaries = append(summaries, summary)
	}
	return summaries
}

func (s *Summarizer) category(ctx context.Context, memo map[string]*domain.Category, id string) *domain.Category {
	if id == "" {
		return nil
	}
	if cat, ok := memo[id]; ok {
		return cat
	}
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		s.logger.Debugf("failed to resolve category %s: %v", id, err)
		memo[id] = nil
		return nil
	}
	memo[id] = cat
	return cat
}

func (s *Summarizer) username(ctx context.Context, memo map[string]string, userID string) string {
	if userID == "" {
		return ""
	}
	if name, ok := memo[userID]; ok {
		return name
	}
	name, err := s.users.UsernameByID(ctx, userID)
	if err != nil {
		s.logger.Debugf("failed to resolve username of user %s: %v", userID, err)
		name = ""
	}
	memo[userID] = name
	return name
}
