package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/scoreline/internal/httpserver/deps"
)

func Player(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := d.Players.Load(r.Context(), chi.URLParam(r, "id"))
		writeJSON(w, d.Logger, viewStatus(view.Status), view)
	}
}

func TogglePlayer(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := d.Players.Toggle(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, res)
	}
}

func Team(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := d.Teams.Load(r.Context(), chi.URLParam(r, "id"))
		writeJSON(w, d.Logger, viewStatus(view.Status), view)
	}
}

func ToggleTeam(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := d.Teams.Toggle(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, res)
	}
}
