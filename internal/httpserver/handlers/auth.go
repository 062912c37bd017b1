package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/httpserver/deps"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
)

// Login signs in against the accounts provider and stores the session user.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds domain.Credentials
		if err := decodeBody(r, &creds); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		user, err := d.Accounts.Login(r.Context(), creds)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if err := d.Session.Save(r.Context(), user); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("user signed in", logger.String("username", user.Username))
		writeJSON(w, d.Logger, http.StatusOK, user)
	}
}

// Register creates the account, then signs in with the same credentials.
// The demo provider does not persist new accounts, so a rejected sign-in
// falls back to the account returned by the registration.
func Register(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reg domain.Registration
		if err := decodeBody(r, &reg); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		created, err := d.Accounts.Register(r.Context(), reg)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		user, err := d.Accounts.Login(r.Context(), domain.Credentials{Username: reg.Username, Password: reg.Password})
		switch {
		case errors.Is(err, apperror.ErrUnauthorized):
			d.Logger.Debug("sign-in after registration rejected, using the created account",
				logger.String("username", reg.Username))
			user = created
		case err != nil:
			writeError(w, d.Logger, err)
			return
		}

		if err := d.Session.Save(r.Context(), user); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("user registered", logger.String("username", user.Username))
		writeJSON(w, d.Logger, http.StatusCreated, user)
	}
}

func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Session.Clear(r.Context()); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// Me returns the stored session user.
func Me(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := d.Session.Load(r.Context())
		if !ok {
			writeError(w, d.Logger, &apperror.AppError{Err: apperror.ErrNotFound, Message: "not signed in"})
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, user)
	}
}
