package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/marquee/internal/domain"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/mw"
	"github.com/MrSnakeDoc/marquee/internal/logger"
	redisstore "github.com/MrSnakeDoc/marquee/internal/store/redis"
)

// Defaults shown for a profile that never edited its fields.
const (
	defaultBio      = "Music enthusiast and event lover"
	defaultLocation = "New York"
)

// Profile returns the caller's profile, seeding demo ledgers on first
// visit when enabled.
func Profile(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user := mw.User(r)

		profile, err := store.GetProfile(ctx, user)
		if err != nil {
			d.Logger.Error("failed to load profile",
				logger.String("user", user),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load profile")
			return
		}

		if profile.Bio == "" {
			profile.Bio = defaultBio
		}
		if profile.Location == "" {
			profile.Location = defaultLocation
		}

		if d.SeedDemoData {
			seedDemoLedgers(ctx, store, user, d)
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// UpdateProfile overwrites the editable profile fields.
func UpdateProfile(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)

		var profile redisstore.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := store.UpdateProfile(r.Context(), user, profile); err != nil {
			d.Logger.Error("failed to update profile",
				logger.String("user", user),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to update profile")
			return
		}

		d.Logger.Info("profile updated",
			logger.String("user", user))

		writeJSON(w, http.StatusOK, profile)
	}
}

// seedDemoLedgers gives a first-time profile something to look at. Only a
// missing ledger triggers seeding; a user who unsaved everything keeps
// their empty list. Failures are logged and ignored.
func seedDemoLedgers(ctx context.Context, store *redisstore.Store, user string, d deps.Deps) {
	now := d.TimeNow()

	hasSaved, err := store.HasSavedItems(ctx, user)
	if err != nil {
		d.Logger.Warn("failed to check saved items for seeding",
			logger.String("user", user),
			logger.Error(err))
	} else if !hasSaved {
		demo := []domain.SavedItem{
			{ID: "evt1", Type: domain.KindEvent, SavedAt: now},
			{ID: "evt3", Type: domain.KindEvent, SavedAt: now},
			{ID: "art2", Type: domain.KindArtist, SavedAt: now},
			{ID: "ven1", Type: domain.KindVenue, SavedAt: now},
		}
		if err := store.SetSavedItems(ctx, user, demo); err != nil {
			d.Logger.Warn("failed to seed saved items",
				logger.String("user", user),
				logger.Error(err))
		}
	}

	hasPrefs, err := store.HasPreferences(ctx, user)
	if err != nil {
		d.Logger.Warn("failed to check preferences for seeding",
			logger.String("user", user),
			logger.Error(err))
		return
	}
	if hasPrefs {
		return
	}

	demo := []domain.Preference{
		{ID: "pref1", Type: domain.PrefGenre, Value: "Electronic"},
		{ID: "pref2", Type: domain.PrefGenre, Value: "Indie Rock"},
		{ID: "pref3", Type: domain.PrefCategory, Value: "Concert"},
		{ID: "pref4", Type: domain.PrefLocation, Value: "New York"},
	}
	if err := store.SetPreferences(ctx, user, demo); err != nil {
		d.Logger.Warn("failed to seed preferences",
			logger.String("user", user),
			logger.Error(err))
	}
}
