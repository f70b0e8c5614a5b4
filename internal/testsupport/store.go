package testsupport

import (
	"context"
	"testing"

	"lifelist/internal/config"
	"lifelist/internal/kvstore"
	"lifelist/internal/lifelist"
)

// MustOpenStore opens the configured key-value backend for tests and
// registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) kvstore.Store {
	t.Helper()

	store, err := kvstore.Open(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// MustOpenLifeList wraps MustOpenStore in a lifelist.Store.
func MustOpenLifeList(t testing.TB, cfg *config.Config) *lifelist.Store {
	t.Helper()
	return lifelist.NewStore(MustOpenStore(t, cfg), nil)
}
