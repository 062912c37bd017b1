package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/scoreline/internal/httpserver/deps"
	"github.com/MrSnakeDoc/scoreline/internal/httpserver/handlers"
)

func init() { Register(registerProfile) }

func registerProfile(r chi.Router, d deps.Deps) {
	r.Get("/api/players/{id}", handlers.Player(d))
	r.Post("/api/players/{id}/favorite", handlers.TogglePlayer(d))
	r.Get("/api/teams/{id}", handlers.Team(d))
	r.Post("/api/teams/{id}/favorite", handlers.ToggleTeam(d))
}
