package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MrSnakeDoc/scoreline/internal/store"
	"github.com/MrSnakeDoc/scoreline/internal/store/storetest"
)

func TestMemory(t *testing.T) {
	storetest.Run(t, store.NewMemory("test"))
}

func TestMemoryNamespaces(t *testing.T) {
	ctx := context.Background()
	a := store.NewMemory("alice")
	if err := a.Set(ctx, "favorites", "[]"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	b := store.NewMemory("bob")
	if _, err := b.Get(ctx, "favorites"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("separate stores should not share values, got %v", err)
	}
}

func TestMemoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := store.NewMemory("test")
	if err := m.Set(ctx, "k", "v"); !errors.Is(err, context.Canceled) {
		t.Errorf("Set() error = %v, want context.Canceled", err)
	}
}
