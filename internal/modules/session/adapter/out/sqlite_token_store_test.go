package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"turma/internal/modules/session/adapter/out"
	apperrors "turma/internal/platform/errors"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store, err := out.NewSQLiteTokenStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated before save, got %v", err)
	}

	if err := store.Save(ctx, "jwt-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if token, err := store.Load(ctx); err != nil || token != "jwt-1" {
		t.Fatalf("load = %q, %v", token, err)
	}

	// Saving again overwrites the single entry.
	if err := store.Save(ctx, "jwt-2"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if token, _ := store.Load(ctx); token != "jwt-2" {
		t.Fatalf("load after overwrite = %q", token)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated after clear, got %v", err)
	}
}
