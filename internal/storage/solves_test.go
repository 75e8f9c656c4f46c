package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenCreatesSchema(t *testing.T) {
	db := openTestDB(t)

	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='solves'
	`).Scan(&count)
	if err != nil {
		t.Fatalf("schema query returned error: %v", err)
	}
	if count != 1 {
		t.Error("solves table should exist after Open")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open returned error: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	defer db.Close()

	var version int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("version query returned error: %v", err)
	}
	if version != 1 {
		t.Errorf("schema version = %d, want 1", version)
	}
}

func TestSolveCreateAndGet(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	id, err := repo.Create(`{"up":[]}`, "R U R' U'", "U R U' R'", "ida", 4, true, 1500*time.Millisecond)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned empty ID")
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Solution != "U R U' R'" {
		t.Errorf("solution = %q, want %q", got.Solution, "U R U' R'")
	}
	if got.Scramble == nil || *got.Scramble != "R U R' U'" {
		t.Errorf("scramble = %v, want R U R' U'", got.Scramble)
	}
	if got.MoveCount != 4 {
		t.Errorf("move count = %d, want 4", got.MoveCount)
	}
	if !got.Solved {
		t.Error("solved flag lost on round trip")
	}
	if got.DurationMs != 1500 {
		t.Errorf("duration = %dms, want 1500", got.DurationMs)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created timestamp should be set")
	}
}

func TestSolveEmptyScrambleStoredAsNull(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	id, err := repo.Create(`{}`, "", "R", "heuristic", 1, false, time.Second)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Scramble != nil {
		t.Errorf("scramble = %q, want nil", *got.Scramble)
	}
	if got.Solved {
		t.Error("unsolved attempt should stay unsolved")
	}
}

func TestSolveList(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		id, err := repo.Create(`{}`, "", "R U", "ida", 2, true, time.Second)
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		ids[id] = true
	}

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("got %d solves, want 3", len(solves))
	}
	for _, s := range solves {
		if !ids[s.SolveID] {
			t.Errorf("unexpected solve ID %s", s.SolveID)
		}
	}

	limited, err := repo.List(2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d solves, want 2", len(limited))
	}
}

func TestGetMissingSolve(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))
	if _, err := repo.Get("no-such-id"); err == nil {
		t.Error("Get on a missing ID should return an error")
	}
}
