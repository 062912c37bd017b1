// Package profile builds the player and team profile views and toggles
// their favorite membership.
package profile

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
)

// Favorites is the part of favorites.Repository the controllers use.
type Favorites interface {
	IsFavorite(ctx context.Context, kind domain.Kind, id string) bool
	Add(ctx context.Context, entry domain.FavoriteEntry) error
	Remove(ctx context.Context, kind domain.Kind, id string) error
}

// HonoursSource looks honours up by display name.
type HonoursSource interface {
	Honours(ctx context.Context, name string) ([]domain.Honour, error)
}

// ToggleResult is the membership after a toggle.
type ToggleResult struct {
	Kind       domain.Kind           `json:"kind"`
	ID         string                `json:"id"`
	IsFavorite bool                  `json:"isFavorite"`
	Entry      *domain.FavoriteEntry `json:"entry,omitempty"`
}

// statusOfDetail classifies a detail lookup failure.
func statusOfDetail(err error) domain.Status {
	if errors.Is(err, apperror.ErrNotFound) {
		return domain.StatusNotFound
	}
	return domain.StatusUnavailable
}

// inflight rejects a second toggle of the same entity while one runs.
type inflight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInflight() *inflight {
	return &inflight{active: make(map[string]struct{})}
}

func (f *inflight) acquire(kind domain.Kind, id string) (func(), error) {
	key := string(kind) + "/" + id
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, busy := f.active[key]; busy {
		return nil, apperror.InProgress(string(kind) + " " + id + " favorite toggle")
	}
	f.active[key] = struct{}{}
	return func() {
		f.mu.Lock()
		delete(f.active, key)
		f.mu.Unlock()
	}, nil
}

// toggler holds the membership flip shared by both controllers.
type toggler struct {
	kind      domain.Kind
	favorites Favorites
	logger    logger.Logger
	guard     *inflight
}

// toggle removes a favorite, or looks the entity up and adds it.
// A failed lookup writes nothing.
func (t *toggler) toggle(ctx context.Context, id string, lookup func(context.Context, string) (domain.FavoriteEntry, error)) (ToggleResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ToggleResult{}, apperror.ValidationFailed("id", "id is required")
	}

	release, err := t.guard.acquire(t.kind, id)
	if err != nil {
		return ToggleResult{}, err
	}
	defer release()

	result := ToggleResult{Kind: t.kind, ID: id}

	if t.favorites.IsFavorite(ctx, t.kind, id) {
		if err := t.favorites.Remove(ctx, t.kind, id); err != nil {
			return ToggleResult{}, err
		}
		t.logger.Info("favorite removed", logger.String("kind", t.kind.String()), logger.String("id", id))
		return result, nil
	}

	entry, err := lookup(ctx, id)
	if err != nil {
		return ToggleResult{}, err
	}
	if err := t.favorites.Add(ctx, entry); err != nil {
		return ToggleResult{}, err
	}
	t.logger.Info("favorite added", logger.String("kind", t.kind.String()), logger.String("id", id))

	result.IsFavorite = true
	result.Entry = &entry
	return result, nil
}
