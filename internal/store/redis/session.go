package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Session hash fields, one per profile key the frontend reads.
const (
	fieldLoggedIn      = "loggedIn"
	fieldEmail         = "email"
	fieldName          = "name"
	fieldBio           = "bio"
	fieldLocation      = "location"
	fieldNotifications = "notifications"
	fieldToken         = "token"
)

// Profile is the user-visible part of a session.
type Profile struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Bio           string `json:"bio"`
	Location      string `json:"location"`
	Notifications bool   `json:"receiveNotifications"`
}

// SignIn marks a user as logged in and records the profile basics. The
// token is informational only; no credential is ever stored.
func (s *Store) SignIn(ctx context.Context, user string, profile Profile, token string) error {
	key := SessionKey(user)
	fields := map[string]interface{}{
		fieldLoggedIn:      "true",
		fieldEmail:         profile.Email,
		fieldName:          profile.Name,
		fieldToken:         token,
		fieldNotifications: strconv.FormatBool(profile.Notifications),
	}
	if profile.Bio != "" {
		fields[fieldBio] = profile.Bio
	}
	if profile.Location != "" {
		fields[fieldLocation] = profile.Location
	}

	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SignOut clears the logged-in flag and token but keeps the profile
// fields; logging back in finds the profile intact.
func (s *Store) SignOut(ctx context.Context, user string) error {
	if err := s.client.HDel(ctx, SessionKey(user), fieldLoggedIn, fieldToken).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// IsLoggedIn reports whether the user currently holds a session.
func (s *Store) IsLoggedIn(ctx context.Context, user string) (bool, error) {
	v, err := s.client.HGet(ctx, SessionKey(user), fieldLoggedIn).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return v == "true", nil
}

// GetProfile retrieves the stored profile fields. Missing fields come back
// empty; a completely absent session yields a zero profile, not an error.
func (s *Store) GetProfile(ctx context.Context, user string) (Profile, error) {
	values, err := s.client.HGetAll(ctx, SessionKey(user)).Result()
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	return Profile{
		Email:         values[fieldEmail],
		Name:          values[fieldName],
		Bio:           values[fieldBio],
		Location:      values[fieldLocation],
		Notifications: values[fieldNotifications] != "false",
	}, nil
}

// UpdateProfile overwrites the editable profile fields.
func (s *Store) UpdateProfile(ctx context.Context, user string, profile Profile) error {
	fields := map[string]interface{}{
		fieldName:          profile.Name,
		fieldBio:           profile.Bio,
		fieldLocation:      profile.Location,
		fieldNotifications: strconv.FormatBool(profile.Notifications),
	}
	if err := s.client.HSet(ctx, SessionKey(user), fields).Err(); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
