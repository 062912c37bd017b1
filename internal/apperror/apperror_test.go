package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKinds(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{
			name:    "not found",
			err:     NotFound("player", "34145937"),
			kind:    ErrNotFound,
			message: "player not found with id 34145937",
		},
		{
			name:    "validation",
			err:     ValidationFailed("kind", "kind must be player or team"),
			kind:    ErrValidation,
			message: "kind must be player or team",
		},
		{
			name:    "request failed keeps cause",
			err:     RequestFailed("sportsdb", cause),
			kind:    ErrRequestFailed,
			message: "sportsdb request failed",
		},
		{
			name:    "write failed keeps cause",
			err:     WriteFailed("favorites", cause),
			kind:    ErrWriteFailed,
			message: "could not persist favorites",
		},
		{
			name:    "in progress",
			err:     InProgress("favorite toggle"),
			kind:    ErrInProgress,
			message: "favorite toggle already in progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.kind)
			}

			var appErr *AppError
			if !errors.As(wrapped, &appErr) {
				t.Fatalf("errors.As() failed for %v", wrapped)
			}
			if appErr.Message != tt.message {
				t.Errorf("Message = %q, want %q", appErr.Message, tt.message)
			}
		})
	}
}

func TestCauseIsReachable(t *testing.T) {
	cause := errors.New("disk full")
	err := WriteFailed("favorites", cause)

	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through errors.Is")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("write failure must not match ErrNotFound")
	}
	if got, want := err.Error(), "could not persist favorites: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
