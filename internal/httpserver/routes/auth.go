package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/scoreline/internal/httpserver/deps"
	"github.com/MrSnakeDoc/scoreline/internal/httpserver/handlers"
)

func init() {
	Register(registerCredentials, authLimited)
	Register(registerSession)
}

func registerCredentials(r chi.Router, d deps.Deps) {
	r.Post("/api/auth/login", handlers.Login(d))
	r.Post("/api/auth/register", handlers.Register(d))
}

func registerSession(r chi.Router, d deps.Deps) {
	r.Post("/api/auth/logout", handlers.Logout(d))
	r.Get("/api/auth/me", handlers.Me(d))
}
