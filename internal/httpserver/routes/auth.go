package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/handlers"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	r.Post("/api/auth/signin", handlers.SignIn(d))
	r.Post("/api/auth/join", handlers.Join(d))
	r.Post("/api/auth/logout", handlers.Logout(d))
}
