package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/marquee/internal/domain"
	"github.com/redis/go-redis/v9"
)

// GetSavedItems returns the user's saved-item ledger, oldest first. A user
// with no ledger yet gets an empty slice, never an error.
func (s *Store) GetSavedItems(ctx context.Context, user string) ([]domain.SavedItem, error) {
	data, err := s.client.Get(ctx, SavedKey(user)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []domain.SavedItem{}, nil
		}
		return nil, fmt.Errorf("failed to read saved items: %w", err)
	}

	var items []domain.SavedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode saved items: %w", err)
	}
	return items, nil
}

// HasSavedItems reports whether the user has a saved-item ledger at all.
// An empty ledger counts; only a missing key does not.
func (s *Store) HasSavedItems(ctx context.Context, user string) (bool, error) {
	n, err := s.client.Exists(ctx, SavedKey(user)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check saved items: %w", err)
	}
	return n > 0, nil
}

// SetSavedItems replaces the user's saved-item ledger wholesale.
func (s *Store) SetSavedItems(ctx context.Context, user string, items []domain.SavedItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode saved items: %w", err)
	}
	if err := s.client.Set(ctx, SavedKey(user), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save saved items: %w", err)
	}
	return nil
}

// ToggleSaved flips the saved state of one item and persists the result.
// It reports whether the item is saved after the toggle.
func (s *Store) ToggleSaved(ctx context.Context, user, id string, kind domain.Kind, now time.Time) (bool, error) {
	items, err := s.GetSavedItems(ctx, user)
	if err != nil {
		return false, err
	}

	updated, saved := domain.ToggleSaved(items, id, kind, now)
	if err := s.SetSavedItems(ctx, user, updated); err != nil {
		return false, err
	}
	return saved, nil
}
