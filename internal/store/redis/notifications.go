package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/marquee/internal/domain"
	"github.com/redis/go-redis/v9"
)

// GetNotifications returns the event ids the user asked to be notified
// about, in insertion order.
func (s *Store) GetNotifications(ctx context.Context, user string) ([]string, error) {
	data, err := s.client.Get(ctx, NotifyKey(user)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return ids, nil
}

// SetNotifications replaces the user's notification list wholesale.
func (s *Store) SetNotifications(ctx context.Context, user string, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode notifications: %w", err)
	}
	if err := s.client.Set(ctx, NotifyKey(user), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save notifications: %w", err)
	}
	return nil
}

// ToggleNotification flips the notify flag for one event and reports
// whether it is set after the toggle.
func (s *Store) ToggleNotification(ctx context.Context, user, eventID string) (bool, error) {
	ids, err := s.GetNotifications(ctx, user)
	if err != nil {
		return false, err
	}

	updated, notified := domain.ToggleNotification(ids, eventID)
	if err := s.SetNotifications(ctx, user, updated); err != nil {
		return false, err
	}
	return notified, nil
}
