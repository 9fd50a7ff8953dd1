package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tshehlatshego/checkmate/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreatePendingAndComplete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreatePending(ctx, "the earth is flat")
	if err != nil {
		t.Fatalf("CreatePending failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected non-zero id")
	}

	fc, err := store.GetFactCheck(ctx, id)
	if err != nil {
		t.Fatalf("GetFactCheck failed: %v", err)
	}
	if fc == nil {
		t.Fatal("Expected row, got nil")
	}
	if fc.Status != models.StatusPending {
		t.Errorf("Expected pending status, got %q", fc.Status)
	}
	if fc.Claim != "the earth is flat" {
		t.Errorf("Unexpected claim: %q", fc.Claim)
	}
	if fc.Verdict != "" || fc.Analysis != "" || len(fc.Sources) != 0 {
		t.Errorf("Pending row should have no verdict fields: %+v", fc)
	}

	sources := []models.Source{{Title: "NASA", URL: "https://nasa.gov", Credibility: "high"}}
	if err := store.Complete(ctx, id, models.VerdictFalse, "It is round.", 40, sources); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	fc, err = store.GetFactCheck(ctx, id)
	if err != nil {
		t.Fatalf("GetFactCheck failed: %v", err)
	}
	if fc.Status != models.StatusCompleted {
		t.Errorf("Expected completed status, got %q", fc.Status)
	}
	if fc.Verdict != models.VerdictFalse || fc.Credibility != 40 {
		t.Errorf("Unexpected verdict fields: %+v", fc)
	}
	if fc.Analysis != "It is round." {
		t.Errorf("Unexpected analysis: %q", fc.Analysis)
	}
	if len(fc.Sources) != 1 || fc.Sources[0].Title != "NASA" {
		t.Errorf("Sources did not round-trip: %+v", fc.Sources)
	}
	if !fc.UpdatedAt.After(fc.CreatedAt) && !fc.UpdatedAt.Equal(fc.CreatedAt) {
		t.Errorf("updated_at should not precede created_at")
	}
}

func TestGetFactCheckMissing(t *testing.T) {
	store := newTestStore(t)

	fc, err := store.GetFactCheck(context.Background(), 999)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if fc != nil {
		t.Errorf("Expected nil for missing row, got %+v", fc)
	}
}

func TestListFactChecks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id1, _ := store.CreatePending(ctx, "claim one")
	id2, _ := store.CreatePending(ctx, "claim two")
	store.CreatePending(ctx, "claim three")

	store.Complete(ctx, id1, models.VerdictTrue, "ok", 90, nil)
	store.Complete(ctx, id2, models.VerdictUnclear, "hmm", 60, nil)

	all, err := store.ListFactChecks(ctx, "", 10, 0)
	if err != nil {
		t.Fatalf("ListFactChecks failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(all))
	}
	// newest first
	if all[0].Claim != "claim three" {
		t.Errorf("Expected newest first, got %q", all[0].Claim)
	}

	pending, err := store.ListFactChecks(ctx, models.StatusPending, 10, 0)
	if err != nil {
		t.Fatalf("ListFactChecks failed: %v", err)
	}
	if len(pending) != 1 || pending[0].Claim != "claim three" {
		t.Errorf("Unexpected pending rows: %+v", pending)
	}

	completed, err := store.ListFactChecks(ctx, models.StatusCompleted, 1, 1)
	if err != nil {
		t.Fatalf("ListFactChecks failed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != id1 {
		t.Errorf("Pagination off: %+v", completed)
	}
}

func TestIdenticalClaimsGetSeparateRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id1, _ := store.CreatePending(ctx, "same claim")
	id2, _ := store.CreatePending(ctx, "same claim")

	if id1 == id2 {
		t.Error("Identical claims must create independent rows")
	}
}
