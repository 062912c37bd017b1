// Package session persists the signed-in demo user.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/store"
)

// Key is the storage key of the session user.
const Key = "user"

type Store struct {
	kv     store.KV
	logger logger.Logger
}

func New(kv store.KV, log logger.Logger) *Store {
	return &Store{kv: kv, logger: log}
}

// Load returns the persisted user. A missing, unreadable or corrupt value
// reports ok == false.
func (s *Store) Load(ctx context.Context) (domain.SessionUser, bool) {
	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("session user unreadable, treating as signed out", logger.Error(err))
		}
		return domain.SessionUser{}, false
	}

	var u domain.SessionUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.logger.Warn("corrupt session user, treating as signed out", logger.Error(err))
		return domain.SessionUser{}, false
	}
	if u.ID == "" && u.Username == "" {
		return domain.SessionUser{}, false
	}
	return u, true
}

func (s *Store) Save(ctx context.Context, u domain.SessionUser) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}
	if err := s.kv.Set(ctx, Key, string(data)); err != nil {
		return apperror.WriteFailed(Key, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, Key); err != nil {
		return apperror.WriteFailed(Key, err)
	}
	return nil
}
