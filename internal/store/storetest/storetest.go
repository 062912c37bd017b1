// Package storetest checks that a store.KV backend honours the contract
// the favorites and session packages rely on.
package storetest

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/MrSnakeDoc/scoreline/internal/store"
)

// Run exercises kv. The backend must start empty for the keys it uses.
func Run(t *testing.T, kv store.KV) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := kv.Get(ctx, "storetest:missing")
		if !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("Get() error = %v, want store.ErrNotFound", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := kv.Set(ctx, "storetest:a", `[{"kind":"player"}]`); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := kv.Get(ctx, "storetest:a")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != `[{"kind":"player"}]` {
			t.Errorf("Get() = %q", got)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := kv.Set(ctx, "storetest:b", "one"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := kv.Set(ctx, "storetest:b", "two"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := kv.Get(ctx, "storetest:b")
		if err != nil || got != "two" {
			t.Errorf("Get() = (%q, %v), want (two, nil)", got, err)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if err := kv.Set(ctx, "storetest:c", "x"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := kv.Remove(ctx, "storetest:c"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if _, err := kv.Get(ctx, "storetest:c"); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("Get() after Remove error = %v, want store.ErrNotFound", err)
		}
	})

	t.Run("remove missing key", func(t *testing.T) {
		if err := kv.Remove(ctx, "storetest:never-set"); err != nil {
			t.Errorf("Remove() of a missing key error = %v, want nil", err)
		}
	})

	t.Run("empty value", func(t *testing.T) {
		if err := kv.Set(ctx, "storetest:d", ""); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := kv.Get(ctx, "storetest:d")
		if err != nil || got != "" {
			t.Errorf("Get() = (%q, %v), want empty value without error", got, err)
		}
	})

	t.Run("keys", func(t *testing.T) {
		l, ok := kv.(store.Lister)
		if !ok {
			t.Skip("backend does not list keys")
		}
		keys, err := l.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		for _, k := range []string{"storetest:a", "storetest:b", "storetest:d"} {
			if !slices.Contains(keys, k) {
				t.Errorf("Keys() = %v, missing %s", keys, k)
			}
		}
		if slices.Contains(keys, "storetest:c") {
			t.Errorf("Keys() = %v, still lists a removed key", keys)
		}
	})
}
