package domain

import "context"

// ListingRepository is the typed persistence port shared by all four
// categories. Delete performs no authorization; callers must have already
// authorized the operation.
type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	Update(ctx context.Context, id int64, patch ListingPatch) (*Listing, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Listing, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*Listing, error)
	FindAllByType(ctx context.Context, t ListingType) ([]*Listing, error)
	FindByFilter(ctx context.Context, filter Filter, page Page) (*ListingPage, error)
	FindByOwner(ctx context.Context, userID string) ([]*Listing, error)
	CountByType(ctx context.Context, t ListingType) (int64, error)
	IncrementViewCount(ctx context.Context, id int64) error
}

// SearchRepository answers the advanced full-text/geospatial queries plus
// the store-side aggregated feed page.
type SearchRepository interface {
	Search(ctx context.Context, q SearchQuery) (*ListingPage, error)
	SuggestField(ctx context.Context, field SuggestionType, term string, limit int) ([]Suggestion, error)
	FeedPage(ctx context.Context, page Page) (*ListingPage, error)
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]*Category, error)
}

// UserResolver is the narrow collaborator interface resolving listing owners
// to display usernames.
type UserResolver interface {
	UsernameByID(ctx context.Context, userID string) (string, error)
}

// ImageStorage holds listing images in the external object store.
// FirstImageURL returns the URL of the image with the lowest display order,
// or an empty string when the listing has none.
type ImageStorage interface {
	Upload(ctx context.Context, listingID int64, displayOrder int, fileName string, data []byte) (string, error)
	FirstImageURL(ctx context.Context, listingID int64) (string, error)
}

// EventPublisher emits listing lifecycle events for the notification,
// favorite and messaging subsystems.
type EventPublisher interface {
	ListingCreated(ctx context.Context, listing *Listing) error
	ListingUpdated(ctx context.Context, listing *Listing) error
	ListingDeleted(ctx context.Context, id int64) error
}

// ListingCache is a read-through cache for listing detail lookups.
type ListingCache interface {
	GetListing(ctx context.Context, id int64) (*Listing, error)
	SetListing(ctx context.Context, listing *Listing) error
	DeleteListing(ctx context.Context, id int64) error
}

// SuggestionCache caches autocomplete results for a short TTL.
type SuggestionCache interface {
	GetSuggestions(ctx context.Context, term string) ([]Suggestion, bool, error)
	SetSuggestions(ctx context.Context, term string, suggestions []Suggestion) error
}

type SavedSearchStore interface {
	Save(ctx context.Context, search *SavedSearch) error
	FindByUser(ctx context.Context, userID string) ([]*SavedSearch, error)
	FindByID(ctx context.Context, userID, id string) (*SavedSearch, error)
	Delete(ctx context.Context, userID, id string) error
}
