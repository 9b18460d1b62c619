package memory

import (
	"context"
	"testing"

	"github.com/Nowell222/green-path-ai/internal/core/domain"
)

func TestSessionStore_SaveLoadClear(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	if store.Load(ctx) != nil {
		t.Fatalf("fresh store must be empty")
	}

	profile := &domain.UserProfile{
		ID:        "drv-001",
		Email:     "driver@greenpath.example",
		Name:      "Pedro Reyes",
		Role:      domain.RoleDriver,
		VehicleID: "TRK-247",
	}
	if err := store.Save(ctx, profile); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := store.Load(ctx)
	if loaded == nil {
		t.Fatalf("load returned nil after save")
	}
	if loaded.ID != profile.ID || loaded.Role != profile.Role || loaded.VehicleID != profile.VehicleID {
		t.Fatalf("roundtrip mismatch: %+v", loaded)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if store.Load(ctx) != nil {
		t.Fatalf("store not empty after clear")
	}

	// Clearing an empty store is a no-op.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clearing empty store failed: %v", err)
	}
}

func TestSessionStore_MalformedDataIsNoSession(t *testing.T) {
	store := NewSessionStore()
	store.Seed([]byte("][ not json"))

	if store.Load(context.Background()) != nil {
		t.Fatalf("malformed payload must load as no session")
	}
}
