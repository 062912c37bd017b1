package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error   string `json:"error"`   // machine-readable type, ex: "not_found"
	Message string `json:"message"` // safe to show
}

func writeJSON(w http.ResponseWriter, log logger.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Debug("failed to write response", logger.Error(err))
	}
}

// writeError maps an error class to its status. Unknown errors never leak.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		log.Error("unhandled error", logger.Error(err))
		writeJSON(w, log, http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
		return
	}

	status, errorType := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, apperror.ErrValidation):
		status, errorType = http.StatusBadRequest, "validation_error"
	case errors.Is(err, apperror.ErrUnauthorized):
		status, errorType = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, apperror.ErrNotFound):
		status, errorType = http.StatusNotFound, "not_found"
	case errors.Is(err, apperror.ErrInProgress):
		status, errorType = http.StatusConflict, "in_progress"
	case errors.Is(err, apperror.ErrRequestFailed):
		status, errorType = http.StatusBadGateway, "request_failed"
	case errors.Is(err, apperror.ErrWriteFailed):
		status, errorType = http.StatusServiceUnavailable, "write_failed"
	}

	writeJSON(w, log, status, ErrorResponse{Error: errorType, Message: appErr.Message})
}

// viewStatus maps a view status to its HTTP status.
func viewStatus(s domain.Status) int {
	switch s {
	case domain.StatusNotFound:
		return http.StatusNotFound
	case domain.StatusUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

// decodeBody reads a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return apperror.ValidationFailed("body", "request body must be a JSON object")
	}
	return nil
}
