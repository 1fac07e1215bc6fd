package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/mw"
	redisstore "github.com/MrSnakeDoc/marquee/internal/store/redis"
)

func init() { Register(registerProfile) }

// Everything under /api/profile belongs to a signed-in user.
func registerProfile(r chi.Router, d deps.Deps) {
	store := redisstore.NewStore(d.RedisClient)
	auth := r.With(mw.RequireSession(store, d.Logger))

	auth.Get("/api/profile", handlers.Profile(d))
	auth.Put("/api/profile", handlers.UpdateProfile(d))

	auth.Get("/api/profile/saved", handlers.SavedItems(d))
	auth.Post("/api/profile/saved/toggle", handlers.ToggleSaved(d))

	auth.Get("/api/profile/preferences", handlers.Preferences(d))
	auth.Post("/api/profile/preferences/toggle", handlers.TogglePreference(d))

	auth.Get("/api/profile/notifications", handlers.Notifications(d))
	auth.Post("/api/profile/notifications/toggle", handlers.ToggleNotification(d))
}
