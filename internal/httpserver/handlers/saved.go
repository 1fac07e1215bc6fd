package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/marquee/internal/domain"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/mw"
	"github.com/MrSnakeDoc/marquee/internal/logger"
	redisstore "github.com/MrSnakeDoc/marquee/internal/store/redis"
)

type savedEntry struct {
	domain.SavedItem
	Name string `json:"name,omitempty"`
}

type savedListResponse struct {
	Count int          `json:"count"`
	Items []savedEntry `json:"items"`
}

// SavedItems lists the caller's saved ledger with each entry's current
// catalog name attached. Entries whose item left the catalog keep their
// place with no name; the next orphan sweep removes them.
func SavedItems(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)

		items, err := store.GetSavedItems(r.Context(), user)
		if err != nil {
			d.Logger.Error("failed to load saved items",
				logger.String("user", user),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load saved items")
			return
		}

		entries := make([]savedEntry, 0, len(items))
		for _, item := range items {
			entries = append(entries, savedEntry{
				SavedItem: item,
				Name:      savedItemName(d, item),
			})
		}

		writeJSON(w, http.StatusOK, savedListResponse{Count: len(entries), Items: entries})
	}
}

type toggleSavedRequest struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type toggleSavedResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Saved bool   `json:"saved"`
}

// ToggleSaved flips one item in the caller's saved ledger.
func ToggleSaved(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)

		var req toggleSavedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}
		kind, err := domain.ParseKind(req.Type)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		saved, err := store.ToggleSaved(r.Context(), user, req.ID, kind, d.TimeNow())
		if err != nil {
			d.Logger.Error("failed to toggle saved item",
				logger.String("user", user),
				logger.String("id", req.ID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to toggle saved item")
			return
		}

		writeJSON(w, http.StatusOK, toggleSavedResponse{ID: req.ID, Type: req.Type, Saved: saved})
	}
}

func savedItemName(d deps.Deps, item domain.SavedItem) string {
	switch item.Type {
	case domain.KindEvent:
		if e, ok := d.Catalog.EventByID(item.ID); ok {
			return e.Name
		}
	case domain.KindArtist:
		if a, ok := d.Catalog.ArtistByID(item.ID); ok {
			return a.Name
		}
	case domain.KindVenue:
		if v, ok := d.Catalog.VenueByID(item.ID); ok {
			return v.Name
		}
	}
	return ""
}
