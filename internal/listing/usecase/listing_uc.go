package usecase

import (
	"context"
	"fmt"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

// Actor identifies the authenticated caller of a mutating operation.
type Actor struct {
	UserID string
	Admin  bool
}

type ListingUsecase struct {
	repo       domain.ListingRepository
	categories domain.CategoryRepository
	cache      domain.ListingCache
	images     domain.ImageStorage
	events     domain.EventPublisher
	logger     logger.Logger
}

func NewListingUsecase(
	repo domain.ListingRepository,
	categories domain.CategoryRepository,
	cache domain.ListingCache,
	images domain.ImageStorage,
	events domain.EventPublisher,
	log logger.Logger,
) *ListingUsecase {
	return &ListingUsecase{
		repo:       repo,
		categories: categories,
		cache:      cache,
		images:     images,
		events:     events,
		logger:     log,
	}
}

// Create validates and persists a new listing owned by the actor. Status
// and offer type default when the request leaves them empty; the variant
// discriminator must already be set and match the payload.
func (uc *ListingUsecase) Create(ctx context.Context, actor Actor, listing *domain.Listing) (*domain.Listing, error) {
	listing.CreatedBy = actor.UserID
	if listing.Status == "" {
		listing.Status = domain.StatusActive
	}
	if listing.OfferType == "" {
		listing.OfferType = domain.OfferForSale
	}
	if listing.Currency == "" {
		listing.Currency = domain.CurrencyTRY
	}

	if err := listing.Validate(); err != nil {
		return nil, err
	}
	if _, err := uc.categories.FindByID(ctx, listing.CategoryID); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, listing); err != nil {
		uc.logger.Errorf("failed to create listing for user %s: %v", actor.UserID, err)
		return nil, err
	}

	if err := uc.events.ListingCreated(ctx, listing); err != nil {
		uc.logger.Warnf("failed to publish created event for listing %d: %v", listing.ID, err)
	}
	return listing, nil
}

// Get fetches a listing without touching the view counter.
func (uc *ListingUsecase) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	if cached, err := uc.cache.GetListing(ctx, id); err != nil {
		uc.logger.Warnf("listing cache read failed for %d: %v", id, err)
	} else if cached != nil {
		return cached, nil
	}

	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.SetListing(ctx, listing); err != nil {
		uc.logger.Warnf("listing cache write failed for %d: %v", id, err)
	}
	return listing, nil
}

/// Detail is the detail-view read: it bumps the view counter atomically in
// the store, then returns the listing.
func (uc *ListingUsecase) Detail(ctx context.Context, id int64) (*domain.Listing, error) {
	if err := uc.repo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	// The cached copy has a stale counter now.
	if err := uc.cache.DeleteListing(ctx, id); err != nil {
		uc.logger.Warnf("listing cache invalidation failed for %d: %v", id, err)
	}

	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.SetListing(ctx, listing); err != nil {
		uc.logger.Warnf("listing cache write failed for %d: %v", id, err)
	}
	return listing, nil
}

// Update applies a partial patch after authorizing the actor as the owner
// (or an admin). Only non-nil patch fields overwrite stored values.
func (uc *ListingUsecase) Update(ctx context.Context, actor Actor, id int64, patch domain.ListingPatch) (*domain.Listing, error) {
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, current); err != nil {
		return nil, err
	}
	if err := validatePatchVariant(current, patch); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.DeleteListing(ctx, id); err != nil {
		uc.logger.Warnf("listing cache invalidation failed for %d: %v", id, err)
	}
	if err := uc.events.ListingUpdated(ctx, updated); err != nil {
		uc.logger.Warnf("failed to publish updated event for listing %d: %v", id, err)
	}
	return updated, nil
}

// UpdateStatus is the narrow status-only mutation.
func (uc *ListingUsecase) UpdateStatus(ctx context.Context, actor Actor, id int64, status domain.ListingStatus) (*domain.Listing, error) {
	switch status {
	case domain.StatusActive, domain.StatusPassive, domain.StatusSold, domain.StatusExpired:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return uc.Update(ctx, actor, id, domain.ListingPatch{Status: &status})
}

// Delete removes a listing after authorizing the actor. Cascade of images
// and favorites is the responsibility of consumers of the deleted event.
func (uc *ListingUsecase) Delete(ctx context.Context, actor Actor, id int64) error {
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorize(actor, current); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.cache.DeleteListing(ctx, id); err != nil {
		uc.logger.Warnf("listing cache invalidation failed for %d: %v", id, err)
	}
	if err := uc.events.ListingDeleted(ctx, id); err != nil {
		uc.logger.Warnf("failed to publish deleted event for listing %d: %v", id, err)
	}
	return nil
}

// UploadImage stores one listing image after authorizing the actor as the
// owner. Display order controls which image leads the listing card.
func (uc *ListingUsecase) UploadImage(ctx context.Context, actor Actor, id int64, displayOrder int, fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image payload is empty", domain.ErrValidation)
	}
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := authorize(actor, current); err != nil {
		return "", err
	}
	return uc.images.Upload(ctx, id, displayOrder, fileName, data)
}

// SearchByFilter runs a per-category filter query. An entirely empty filter
// is equivalent to paged find-all for the category.
func (uc *ListingUsecase) SearchByFilter(ctx context.Context, filter domain.Filter, page domain.Page) (*domain.ListingPage, error) {
	return uc.repo.FindByFilter(ctx, filter, page)
}

// OwnListings returns every listing created by the actor, across all four
// categories.
func (uc *ListingUsecase) OwnListings(ctx context.Context, actor Actor) ([]*domain.Listing, error) {
	return uc.repo.FindByOwner(ctx, actor.UserID)
}

func authorize(actor Actor, listing *domain.Listing) error {
	if actor.Admin || listing.CreatedBy == actor.UserID {
		return nil
	}
	return fmt.Errorf("%w: only the owner or an admin may modify listing %d", domain.ErrAccessDenied, listing.ID)
}

// validatePatchVariant rejects a patch that targets a different variant
// than the one the listing is; the discriminator is immutable.
func validatePatchVariant(current *domain.Listing, patch domain.ListingPatch) error {
	mismatch := (patch.RealEstate != nil && current.Type != domain.TypeRealEstate) ||
		(patch.Vehicle != nil && current.Type != domain.TypeVehicle) ||
		(patch.Land != nil && current.Type != domain.TypeLand) ||
		(patch.Workplace != nil && current.Type != domain.TypeWorkplace)
	if mismatch {
		return fmt.Errorf("%w: patch variant does not match listing type %s", domain.ErrValidation, current.Type)
	}
	return nil
}
