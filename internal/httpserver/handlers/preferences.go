package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/marquee/internal/domain"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/mw"
	"github.com/MrSnakeDoc/marquee/internal/logger"
	redisstore "github.com/MrSnakeDoc/marquee/internal/store/redis"
)

type preferenceListResponse struct {
	Count       int                 `json:"count"`
	Preferences []domain.Preference `json:"preferences"`
}

// Preferences lists the caller's taste preferences.
func Preferences(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)

		prefs, err := store.GetPreferences(r.Context(), user)
		if err != nil {
			d.Logger.Error("failed to load preferences",
				logger.String("user", user),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load preferences")
			return
		}

		writeJSON(w, http.StatusOK, preferenceListResponse{Count: len(prefs), Preferences: prefs})
	}
}

type togglePreferenceRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type togglePreferenceResponse struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

// TogglePreference adds or removes one (type, value) preference.
func TogglePreference(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)

		var req togglePreferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Value = strings.TrimSpace(req.Value)
		if req.Value == "" {
			writeError(w, http.StatusBadRequest, "value is required")
			return
		}
		switch req.Type {
		case domain.PrefGenre, domain.PrefCategory, domain.PrefLocation:
		default:
			writeError(w, http.StatusBadRequest, "unknown preference type")
			return
		}

		present, err := store.TogglePreference(r.Context(), user, req.Type, req.Value, uuid.NewString())
		if err != nil {
			d.Logger.Error("failed to toggle preference",
				logger.String("user", user),
				logger.String("type", req.Type),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to toggle preference")
			return
		}

		writeJSON(w, http.StatusOK, togglePreferenceResponse{
			Type:    req.Type,
			Value:   req.Value,
			Present: present,
		})
	}
}
