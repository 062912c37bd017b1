package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/scoreline/internal/httpserver/deps"
)

// Home always answers 200: every section carries its own status.
func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Logger, http.StatusOK, d.Feed.Home(r.Context()))
	}
}

func Sports(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := d.Feed.Sports(r.Context())
		writeJSON(w, d.Logger, viewStatus(view.Status), view)
	}
}

func News(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := d.Feed.News(r.Context(), r.URL.Query().Get("q"))
		writeJSON(w, d.Logger, viewStatus(view.Status), view)
	}
}

func TeamResults(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := d.Feed.TeamResults(r.Context(), chi.URLParam(r, "id"))
		writeJSON(w, d.Logger, viewStatus(section.Status), section)
	}
}

func Favorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, d.Logger, http.StatusOK, d.Feed.Favorites(r.Context(), r.URL.Query().Get("q")))
	}
}

// RemoveFavorite answers with the saved sections after the removal.
func RemoveFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := d.Feed.RemoveFavorite(r.Context(), chi.URLParam(r, "kind"), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, view)
	}
}
