package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/marquee/internal/domain"
	"github.com/redis/go-redis/v9"
)

// GetPreferences returns the user's preference ledger in insertion order.
func (s *Store) GetPreferences(ctx context.Context, user string) ([]domain.Preference, error) {
	data, err := s.client.Get(ctx, PrefsKey(user)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []domain.Preference{}, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var prefs []domain.Preference
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return prefs, nil
}

// HasPreferences reports whether the user has a preference ledger at all.
func (s *Store) HasPreferences(ctx context.Context, user string) (bool, error) {
	n, err := s.client.Exists(ctx, PrefsKey(user)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check preferences: %w", err)
	}
	return n > 0, nil
}

// SetPreferences replaces the user's preference ledger wholesale.
func (s *Store) SetPreferences(ctx context.Context, user string, prefs []domain.Preference) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := s.client.Set(ctx, PrefsKey(user), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// TogglePreference adds or removes one (type, value) preference. newID is
// the identifier assigned when the toggle results in an add. It reports
// whether the preference is present after the toggle.
func (s *Store) TogglePreference(ctx context.Context, user, prefType, value, newID string) (bool, error) {
	prefs, err := s.GetPreferences(ctx, user)
	if err != nil {
		return false, err
	}

	updated, present := domain.TogglePreference(prefs, prefType, value, newID)
	if err := s.SetPreferences(ctx, user, updated); err != nil {
		return false, err
	}
	return present, nil
}
