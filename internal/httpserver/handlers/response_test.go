package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
		wantMsg  string
	}{
		{name: "validation", err: apperror.ValidationFailed("kind", "bad kind"), wantCode: http.StatusBadRequest, wantType: "validation_error", wantMsg: "bad kind"},
		{name: "unauthorized", err: apperror.Unauthorized("Invalid credentials"), wantCode: http.StatusUnauthorized, wantType: "unauthorized", wantMsg: "Invalid credentials"},
		{name: "not found", err: apperror.NotFound("player", "0"), wantCode: http.StatusNotFound, wantType: "not_found", wantMsg: "player not found with id 0"},
		{name: "in progress", err: apperror.InProgress("toggle"), wantCode: http.StatusConflict, wantType: "in_progress", wantMsg: "toggle already in progress"},
		{name: "request failed", err: apperror.RequestFailed("sportsdb", errors.New("dial tcp: refused")), wantCode: http.StatusBadGateway, wantType: "request_failed", wantMsg: "sportsdb request failed"},
		{name: "write failed", err: apperror.WriteFailed("favorites", errors.New("disk full")), wantCode: http.StatusServiceUnavailable, wantType: "write_failed", wantMsg: "could not persist favorites"},
		{name: "wrapped", err: fmt.Errorf("toggle: %w", apperror.NotFound("team", "1")), wantCode: http.StatusNotFound, wantType: "not_found", wantMsg: "team not found with id 1"},
		{name: "unknown", err: errors.New("pq: password authentication failed"), wantCode: http.StatusInternalServerError, wantType: "internal_error", wantMsg: "An internal error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, logger.Nop(), tt.err)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body ErrorResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.wantType, body.Error)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestViewStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, viewStatus(domain.StatusReady))
	assert.Equal(t, http.StatusOK, viewStatus(domain.StatusEmpty))
	assert.Equal(t, http.StatusNotFound, viewStatus(domain.StatusNotFound))
	assert.Equal(t, http.StatusBadGateway, viewStatus(domain.StatusUnavailable))
}
