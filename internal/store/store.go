// Package store is the string key-value persistence used for the session
// user and the favorites collection. Every key lives under a namespace.
package store

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("store: key not found")

// KV is a namespaced string store. A Set replaces the whole value in one
// write: callers never observe a partially written value.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Pinger is implemented by backends that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Lister is implemented by backends that can enumerate their namespace.
type Lister interface {
	Keys(ctx context.Context) ([]string, error)
}

// Memory is an in-process KV, used with SCORELINE_STORE=memory and in tests.
type Memory struct {
	mu        sync.RWMutex
	namespace string
	values    map[string]string
}

func NewMemory(namespace string) *Memory {
	return &Memory{
		namespace: namespace,
		values:    make(map[string]string),
	}
}

func (m *Memory) key(k string) string {
	return m.namespace + ":" + k
}

func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[m.key(key)]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[m.key(key)] = value
	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, m.key(key))
	return nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Keys returns the namespace's keys in lexical order.
func (m *Memory) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix := m.key("")
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		if rest, ok := strings.CutPrefix(k, prefix); ok {
			keys = append(keys, rest)
		}
	}
	slices.Sort(keys)
	return keys, nil
}
