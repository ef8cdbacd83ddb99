package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dori/tabdo/internal/storage"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestBlobRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.Load(storage.TabsKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := db.Save(storage.TabsKey, []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := db.Save(storage.TabsKey, []byte(`[{"name":"メイン"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := db.Load(storage.TabsKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[{"name":"メイン"}]` {
		t.Errorf("got %s", got)
	}

	keys, err := db.Keys()
	if err != nil || len(keys) != 1 || keys[0] != storage.TabsKey {
		t.Errorf("keys = %v, %v", keys, err)
	}

	if err := db.Delete(storage.TabsKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.Load(storage.TabsKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Save(storage.SortConfigKey, []byte(`{"priorities":[]}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	first.Close()

	// Migrations must be idempotent on an existing file
	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	got, err := second.Load(storage.SortConfigKey)
	if err != nil || string(got) != `{"priorities":[]}` {
		t.Fatalf("got %s, %v", got, err)
	}
}
