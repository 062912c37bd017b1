package domain

import (
	"errors"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
)

// Status is the render state of a screen or of one of its sections.
type Status string

const (
	StatusReady       Status = "ready"
	StatusEmpty       Status = "empty"
	StatusNotFound    Status = "not_found"
	StatusUnavailable Status = "unavailable"
)

// StatusOf classifies the outcome of a collection fetch.
// A not-found lookup is an empty collection here; every other error is unavailable.
func StatusOf(n int, err error) Status {
	switch {
	case err == nil && n == 0:
		return StatusEmpty
	case err == nil:
		return StatusReady
	case errors.Is(err, apperror.ErrNotFound):
		return StatusEmpty
	default:
		return StatusUnavailable
	}
}

// Section is one independently loaded part of a view.
type Section[T any] struct {
	Status Status `json:"status"`
	Items  []T    `json:"items"`
}

// NewSection builds a section from a fetch result. Items is never nil so
// it encodes as [].
func NewSection[T any](items []T, err error) Section[T] {
	if err != nil || items == nil {
		items = []T{}
	}
	return Section[T]{Status: StatusOf(len(items), err), Items: items}
}
