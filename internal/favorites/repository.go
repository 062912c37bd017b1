// Package favorites owns the persisted favorites collection.
//
// The collection is a single JSON array stored under one key. Every read
// and write of that key goes through Repository, which keeps (kind, id)
// unique and serializes read-modify-write cycles.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/metrics"
	"github.com/MrSnakeDoc/scoreline/internal/store"
)

// Key is the storage key of the collection.
const Key = "favorites"

// Repository is the sole reader and writer of the favorites key.
// Use one Repository per store namespace.
type Repository struct {
	kv      store.KV
	logger  logger.Logger
	metrics *metrics.Manager
	now     func() time.Time

	// mu serializes mutations so concurrent callers cannot lose updates.
	mu sync.Mutex
}

func NewRepository(kv store.KV, log logger.Logger, m *metrics.Manager) *Repository {
	return &Repository{
		kv:      kv,
		logger:  log,
		metrics: m,
		now:     time.Now,
	}
}

// LoadAll returns the persisted collection in insertion order.
// An absent, unreadable or unparsable blob yields an empty collection.
func (r *Repository) LoadAll(ctx context.Context) []domain.FavoriteEntry {
	entries, err := r.load(ctx)
	if err != nil {
		r.logger.Warn("favorites unreadable, treating as empty", logger.Error(err))
		return []domain.FavoriteEntry{}
	}
	return entries
}

// Snapshot is LoadAll wrapped for membership lookups.
func (r *Repository) Snapshot(ctx context.Context) Snapshot {
	return Snapshot(r.LoadAll(ctx))
}

func (r *Repository) IsFavorite(ctx context.Context, kind domain.Kind, id string) bool {
	return r.Snapshot(ctx).Contains(kind, id)
}

// Add appends entry unless (kind, id) is already present. Re-adding is a
// no-op: the stored display fields are left as they are.
func (r *Repository) Add(ctx context.Context, entry domain.FavoriteEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if entry.AddedAt.IsZero() {
		entry.AddedAt = r.now().UTC()
	}

	return r.mutate(ctx, "add", func(current Snapshot) (Snapshot, bool) {
		if current.Contains(entry.Kind, entry.ID) {
			return current, false
		}
		return append(current, entry), true
	})
}

// Remove drops (kind, id). Nothing is written when the entry is absent.
func (r *Repository) Remove(ctx context.Context, kind domain.Kind, id string) error {
	if err := (domain.FavoriteEntry{Kind: kind, ID: id}).Validate(); err != nil {
		return err
	}

	return r.mutate(ctx, "remove", func(current Snapshot) (Snapshot, bool) {
		return current.without(kind, id)
	})
}

// mutate runs one read-modify-write cycle under the repository lock.
// A store read failure aborts the mutation: writing over a value that
// could not be read would discard it. A corrupt value is replaced.
func (r *Repository) mutate(ctx context.Context, op string, fn func(Snapshot) (Snapshot, bool)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load(ctx)
	if err != nil {
		var corrupt *corruptError
		if !errors.As(err, &corrupt) {
			r.metrics.RecordFavoritesMutation(op, metrics.ResultFailed)
			return apperror.WriteFailed(Key, err)
		}
		r.logger.Warn("replacing corrupt favorites blob", logger.String("op", op), logger.Error(err))
		current = nil
	}

	next, changed := fn(Snapshot(current))
	if !changed {
		r.metrics.RecordFavoritesMutation(op, metrics.ResultUnchanged)
		return nil
	}

	if err := r.persist(ctx, next); err != nil {
		r.metrics.RecordFavoritesMutation(op, metrics.ResultFailed)
		r.logger.Warn("failed to persist favorites", logger.String("op", op), logger.Error(err))
		return err
	}

	r.metrics.RecordFavoritesMutation(op, metrics.ResultChanged)
	r.metrics.SetFavoritesCount(len(next))
	return nil
}

// corruptError marks a blob that exists but does not decode.
type corruptError struct {
	err error
}

func (e *corruptError) Error() string { return "corrupt favorites blob: " + e.err.Error() }
func (e *corruptError) Unwrap() error { return e.err }

func (r *Repository) load(ctx context.Context) ([]domain.FavoriteEntry, error) {
	raw, err := r.kv.Get(ctx, Key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []domain.FavoriteEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return []domain.FavoriteEntry{}, nil
	}

	var decoded []domain.FavoriteEntry
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, &corruptError{err: err}
	}

	// Entries that do not carry a valid identity are not favorites; the
	// first occurrence of a duplicated identity wins.
	entries := make([]domain.FavoriteEntry, 0, len(decoded))
	seen := make(map[string]struct{}, len(decoded))
	for _, e := range decoded {
		if e.Validate() != nil {
			continue
		}
		id := string(e.Kind) + "/" + e.ID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *Repository) persist(ctx context.Context, entries []domain.FavoriteEntry) error {
	if entries == nil {
		entries = []domain.FavoriteEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return apperror.WriteFailed(Key, err)
	}
	if err := r.kv.Set(ctx, Key, string(data)); err != nil {
		return apperror.WriteFailed(Key, err)
	}
	return nil
}
