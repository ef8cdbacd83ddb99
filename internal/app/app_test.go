package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dori/tabdo/internal/db"
	"github.com/dori/tabdo/internal/model"
	"github.com/dori/tabdo/internal/sorting"
	"github.com/dori/tabdo/internal/storage"
	"github.com/dori/tabdo/internal/taskset"
	"golang.org/x/text/language"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SetDataDir(t.TempDir())
	cfg.Notifications = false
	return cfg
}

func TestNewWithStorePersistsChanges(t *testing.T) {
	store := storage.NewMemoryStore()
	a := NewWithStore(store, testConfig(t))

	if _, err := a.Board.AddTask("buy milk", "", model.PriorityHigh); err != nil {
		t.Fatalf("add: %v", err)
	}
	a.Board.SetSortKey(3, sorting.KeyName)

	reloaded := NewWithStore(store, testConfig(t))
	tabs := reloaded.Board.Tabs()
	if len(tabs) != 1 || len(tabs[0].Tasks) != 1 || tabs[0].Tasks[0].Title != "buy milk" {
		t.Fatalf("tabs not persisted: %+v", tabs)
	}
	got := reloaded.Board.SortConfiguration().Priorities
	if got[3] != sorting.KeyName {
		t.Errorf("sort configuration not persisted: %v", got)
	}
}

func TestSaveTaskSet(t *testing.T) {
	a := NewWithStore(storage.NewMemoryStore(), testConfig(t))

	if _, err := a.SaveTaskSet("empty"); !errors.Is(err, taskset.ErrNoTasks) {
		t.Fatalf("expected ErrNoTasks, got %v", err)
	}

	a.Board.AddTask("pack bag", "", model.PriorityMedium)
	if _, err := a.SaveTaskSet("  "); !errors.Is(err, taskset.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}

	set, err := a.SaveTaskSet("Travel")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	sets := a.TaskSets.LoadAll()
	if len(sets) != 1 || sets[0].ID != set.ID || len(sets[0].Tasks) != 1 {
		t.Errorf("unexpected sets: %+v", sets)
	}
}

func TestNewUsesDatabase(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a.Board.CreateTab("Work", 1)
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := New(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b.Close()

	if tabs := b.Board.Tabs(); len(tabs) != 2 || tabs[1].Name != "Work" {
		t.Errorf("tabs not reloaded: %+v", tabs)
	}
}

func TestSingleInstanceLock(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	if _, err := New(cfg); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.PromoDelay != DefaultPromoDelay || cfg.Locale != "ja" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.DBPath != db.DefaultDBPath() {
		t.Errorf("db path = %s, want %s", cfg.DBPath, db.DefaultDBPath())
	}

	path := filepath.Join(dir, "config.yaml")
	data := "data_dir: /tmp/tabdo-test\ntheme: dracula\npromo_delay: 1s\nnotifications: false\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "dracula" || cfg.PromoDelay != time.Second || cfg.Notifications {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.DBPath != filepath.Join("/tmp/tabdo-test", "tabdo.db") {
		t.Errorf("db path should follow data dir, got %s", cfg.DBPath)
	}

	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"en", language.English},
		{"ja", language.Japanese},
		{"", language.Japanese},
		{"not a locale!", language.Japanese},
	}
	for _, tt := range tests {
		if got := Language(tt.locale); got != tt.want {
			t.Errorf("Language(%q) = %v, want %v", tt.locale, got, tt.want)
		}
	}
}
