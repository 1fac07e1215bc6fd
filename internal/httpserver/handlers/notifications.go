package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/mw"
	"github.com/MrSnakeDoc/marquee/internal/logger"
	redisstore "github.com/MrSnakeDoc/marquee/internal/store/redis"
)

type notificationListResponse struct {
	Count    int      `json:"count"`
	EventIDs []string `json:"eventIds"`
}

// Notifications lists the events the caller flagged for reminders.
func Notifications(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)

		ids, err := store.GetNotifications(r.Context(), user)
		if err != nil {
			d.Logger.Error("failed to load notifications",
				logger.String("user", user),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load notifications")
			return
		}

		writeJSON(w, http.StatusOK, notificationListResponse{Count: len(ids), EventIDs: ids})
	}
}

type toggleNotificationRequest struct {
	EventID string `json:"eventId"`
}

type toggleNotificationResponse struct {
	EventID  string `json:"eventId"`
	Notified bool   `json:"notified"`
}

// ToggleNotification flips the reminder flag for one event.
func ToggleNotification(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)

		var req toggleNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.EventID == "" {
			writeError(w, http.StatusBadRequest, "eventId is required")
			return
		}
		if _, ok := d.Catalog.EventByID(req.EventID); !ok {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}

		notified, err := store.ToggleNotification(r.Context(), user, req.EventID)
		if err != nil {
			d.Logger.Error("failed to toggle notification",
				logger.String("user", user),
				logger.String("event_id", req.EventID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to toggle notification")
			return
		}

		writeJSON(w, http.StatusOK, toggleNotificationResponse{EventID: req.EventID, Notified: notified})
	}
}
