package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/burakcnaksy0/classifieds-service/internal/config"
	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

// newTestSummarizer builds a summarizer whose collaborators resolve nothing;
// listings in these tests carry no category or owner references.
func newTestSummarizer(t *testing.T) *Summarizer {
	t.Helper()
	images := new(MockImageStorage)
	images.On("FirstImageURL", mock.Anything, mock.Anything).Return("", nil)
	return NewSummarizer(new(MockCategoryRepository), new(MockUserResolver), images, logger.NewNop())
}

func feedListing(t *testing.T, id int64, lt domain.ListingType) *domain.Listing {
	t.Helper()
	l := &domain.Listing{
		ID:    id,
		Type:  lt,
		Title: "listing",
		Price: mustPrice(t, "1000"),
	}
	switch lt {
	case domain.TypeRealEstate:
		l.RealEstate = &domain.RealEstateDetails{}
	case domain.TypeVehicle:
		l.Vehicle = &domain.VehicleDetails{}
	case domain.TypeLand:
		l.Land = &domain.LandDetails{}
	case domain.TypeWorkplace:
		l.Workplace = &domain.WorkplaceDetails{}
	}
	return l
}

func stubFeedRepo(t *testing.T, repo *MockListingRepository, perType map[domain.ListingType][]*domain.Listing) {
	t.Helper()
	for _, lt := range domain.AllListingTypes() {
		listings := perType[lt]
		if listings == nil {
			listings = []*domain.Listing{}
		}
		repo.On("FindAllByType", mock.Anything, lt).Return(listings, nil)
		repo.On("CountByType", mock.Anything, lt).Return(int64(len(listings)), nil)
	}
}

func TestFeedUsecase_Feed_ConcatenatesInVariantOrder(t *testing.T) {
	repo := new(MockListingRepository)
	stubFeedRepo(t, repo, map[domain.ListingType][]*domain.Listing{
		domain.TypeRealEstate: {feedListing(t, 1, domain.TypeRealEstate)},
		domain.TypeVehicle:    {feedListing(t, 2, domain.TypeVehicle)},
		domain.TypeLand:       {feedListing(t, 3, domain.TypeLand)},
		domain.TypeWorkplace:  {feedListing(t, 4, domain.TypeWorkplace)},
	})
	uc := NewFeedUsecase(repo, new(MockSearchRepository), newTestSummarizer(t), config.FeedModeMemory, logger.NewNop())

	items, err := uc.Feed(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Equal(t, []int64{1, 2, 3, 4}, []int64{items[0].ID, items[1].ID, items[2].ID, items[3].ID})
	assert.Equal(t, domain.TypeRealEstate, items[0].ListingType)
	assert.Equal(t, domain.TypeWorkplace, items[3].ListingType)
}

func TestFeedUsecase_FeedPage_Memory_PageSpansCategories(t *testing.T) {
	repo := new(MockListingRepository)
	stubFeedRepo(t, repo, map[domain.ListingType][]*domain.Listing{
		domain.TypeRealEstate: {
			feedListing(t, 1, domain.TypeRealEstate),
			feedListing(t, 2, domain.TypeRealEstate),
			feedListing(t, 3, domain.TypeRealEstate),
		},
		domain.TypeVehicle: {
			feedListing(t, 4, domain.TypeVehicle),
			feedListing(t, 5, domain.TypeVehicle),
		},
		domain.TypeLand: {feedListing(t, 6, domain.TypeLand)},
	})
	uc := NewFeedUsecase(repo, new(MockSearchRepository), newTestSummarizer(t), config.FeedModeMemory, logger.NewNop())

	page, err := uc.FeedPage(context.Background(), domain.Page{Number: 1, Size: 4})

	assert.NoError(t, err)
	assert.Equal(t, int64(6), page.TotalCount)
	assert.Equal(t, int64(2), page.TotalPages)
	// The second page starts inside the vehicle block and crosses into land.
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.Items[0].ID)
	assert.Equal(t, int64(6), page.Items[1].ID)
}

func TestFeedUsecase_FeedPage_Memory_SkipsCategoriesOutsideWindow(t *testing.T) {
	repo := new(MockListingRepository)
	stubFeedRepo(t, repo, map[domain.ListingType][]*domain.Listing{
		domain.TypeRealEstate: {
			feedListing(t, 1, domain.TypeRealEstate),
			feedListing(t, 2, domain.TypeRealEstate),
			feedListing(t, 3, domain.TypeRealEstate),
		},
		domain.TypeVehicle:   {feedListing(t, 4, domain.TypeVehicle)},
		domain.TypeWorkplace: {feedListing(t, 5, domain.TypeWorkplace)},
	})
	uc := NewFeedUsecase(repo, new(MockSearchRepository), newTestSummarizer(t), config.FeedModeMemory, logger.NewNop())

	page, err := uc.FeedPage(context.Background(), domain.Page{Number: 0, Size: 2})

	assert.NoError(t, err)
	// Totals still cover every category, but only the one holding the window
	// is actually loaded.
	assert.Equal(t, int64(5), page.TotalCount)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(1), page.Items[0].ID)
	assert.Equal(t, int64(2), page.Items[1].ID)
	repo.AssertNotCalled(t, "FindAllByType", mock.Anything, domain.TypeVehicle)
	repo.AssertNotCalled(t, "FindAllByType", mock.Anything, domain.TypeWorkplace)
}

func TestFeedUsecase_FeedPage_Memory_EmptyStore(t *testing.T) {
	repo := new(MockListingRepository)
	stubFeedRepo(t, repo, nil)
	uc := NewFeedUsecase(repo, new(MockSearchRepository), newTestSummarizer(t), config.FeedModeMemory, logger.NewNop())

	page, err := uc.FeedPage(context.Background(), domain.Page{Number: 0, Size: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Equal(t, int64(0), page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestFeedUsecase_FeedPage_Memory_OffsetBeyondEnd(t *testing.T) {
	repo := new(MockListingRepository)
	stubFeedRepo(t, repo, map[domain.ListingType][]*domain.Listing{
		domain.TypeLand: {feedListing(t, 1, domain.TypeLand)},
	})
	uc := NewFeedUsecase(repo, new(MockSearchRepository), newTestSummarizer(t), config.FeedModeMemory, logger.NewNop())

	page, err := uc.FeedPage(context.Background(), domain.Page{Number: 5, Size: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.Empty(t, page.Items)
}

func TestFeedUsecase_FeedPage_StoreModeDelegates(t *testing.T) {
	repo := new(MockListingRepository)
	search := new(MockSearchRepository)
	search.On("FeedPage", mock.Anything, mock.Anything).Return(&domain.ListingPage{
		Items:      []*domain.Listing{feedListing(t, 7, domain.TypeVehicle)},
		TotalCount: 11,
		Number:     0,
		Size:       20,
	}, nil)
	uc := NewFeedUsecase(repo, search, newTestSummarizer(t), config.FeedModeStore, logger.NewNop())

	page, err := uc.FeedPage(context.Background(), domain.Page{})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), page.TotalCount)
	assert.Len(t, page.Items, 1)
	repo.AssertNotCalled(t, "FindAllByType", mock.Anything, mock.Anything)
	search.AssertExpectations(t)
}
