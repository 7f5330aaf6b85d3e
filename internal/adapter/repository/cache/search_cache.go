package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

// SuggestionCache keeps autocomplete results for a short TTL so repeated
// keystrokes do not hammer the aggregation pipeline.
type SuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSuggestionCache(client *redis.Client, ttl time.Duration) *SuggestionCache {
	return &SuggestionCache{client: client, ttl: ttl}
}

func suggestionKey(term string) string {
	return "suggest:" + strings.ToLower(term)
}

func (c *SuggestionCache) GetSuggestions(ctx context.Context, term string) ([]domain.Suggestion, bool, error) {
	data, err := c.client.Get(ctx, suggestionKey(term)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read suggestions for %q: %w", term, err)
	}
	var suggestions []domain.Suggestion
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached suggestions for %q: %w", term, err)
	}
	return suggestions, true, nil
}

func (c *SuggestionCache) SetSuggestions(ctx context.Context, term string, suggestions []domain.Suggestion) error {
	data, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("failed to encode suggestions for %q: %w", term, err)
	}
	return c.client.Set(ctx, suggestionKey(term), data, c.ttl).Err()
}

// SavedSearchStore persists saved search criteria per user in a Redis hash,
// keyed by the search id.
type SavedSearchStore struct {
	client *redis.Client
}

func NewSavedSearchStore(client *redis.Client) *SavedSearchStore {
	return &SavedSearchStore{client: client}
}

func savedSearchKey(userID string) string {
	return "saved_search:" + userID
}

func (s *SavedSearchStore) Save(ctx context.Context, search *domain.SavedSearch) error {
	data, err := json.Marshal(search)
	if err != nil {
		return fmt.Errorf("failed to encode saved search %s: %w", search.ID, err)
	}
	return s.client.HSet(ctx, savedSearchKey(search.UserID), search.ID, data).Err()
}

func (s *SavedSearchStore) FindByUser(ctx context.Context, userID string) ([]*domain.SavedSearch, error) {
	entries, err := s.client.HGetAll(ctx, savedSearchKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches of user %s: %w", userID, err)
	}
	searches := make([]*domain.SavedSearch, 0, len(entries))
	for _, raw := range entries {
		var search domain.SavedSearch
		if err := json.Unmarshal([]byte(raw), &search); err != nil {
			return nil, fmt.Errorf("failed to decode saved search of user %s: %w", userID, err)
		}
		searches = append(searches, &search)
	}
	return searches, nil
}

func (s *SavedSearchStore) FindByID(ctx context.Context, userID, id string) (*domain.SavedSearch, error) {
	raw, err := s.client.HGet(ctx, savedSearchKey(userID), id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("saved search %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saved search %s: %w", id, err)
	}
	var search domain.SavedSearch
	if err := json.Unmarshal([]byte(raw), &search); err != nil {
		return nil, fmt.Errorf("failed to decode saved search %s: %w", id, err)
	}
	return &search, nil
}

func (s *SavedSearchStore) Delete(ctx context.Context, userID, id string) error {
	removed, err := s.client.HDel(ctx, savedSearchKey(userID), id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete saved search %s: %w", id, err)
	}
	if removed == 0 {
		return fmt.Errorf("saved search %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
