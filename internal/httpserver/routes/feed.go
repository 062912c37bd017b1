package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/scoreline/internal/httpserver/deps"
	"github.com/MrSnakeDoc/scoreline/internal/httpserver/handlers"
)

func init() { Register(registerFeed) }

func registerFeed(r chi.Router, d deps.Deps) {
	r.Get("/api/home", handlers.Home(d))
	r.Get("/api/sports", handlers.Sports(d))
	r.Get("/api/news", handlers.News(d))
	r.Get("/api/teams/{id}/results", handlers.TeamResults(d))
	r.Get("/api/favorites", handlers.Favorites(d))
	r.Delete("/api/favorites/{kind}/{id}", handlers.RemoveFavorite(d))
}
