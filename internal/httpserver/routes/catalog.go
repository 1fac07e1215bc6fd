package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/handlers"
)

func init() { Register(registerCatalog) }

func registerCatalog(r chi.Router, d deps.Deps) {
	r.Get("/api/events", handlers.Events(d))
	r.Get("/api/events/{id}", handlers.EventDetail(d))
	r.Get("/api/artists", handlers.Artists(d))
	r.Get("/api/artists/{id}", handlers.ArtistDetail(d))
	r.Get("/api/venues", handlers.Venues(d))
	r.Get("/api/venues/{id}", handlers.VenueDetail(d))
	r.Get("/api/meta", handlers.Meta(d))
}
