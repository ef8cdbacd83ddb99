package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dori/tabdo/internal/board"
	"github.com/dori/tabdo/internal/db"
	"github.com/dori/tabdo/internal/model"
	"github.com/dori/tabdo/internal/notify"
	"github.com/dori/tabdo/internal/sorting"
	"github.com/dori/tabdo/internal/storage"
	"github.com/dori/tabdo/internal/taskset"
	"github.com/gofrs/flock"
	"golang.org/x/text/language"
)

// ErrAlreadyRunning is returned when another process holds the lock
var ErrAlreadyRunning = errors.New("another instance of tabdo is already running")

// App holds the application state and dependencies
type App struct {
	DB         *db.DB
	Store      storage.Store
	Board      *board.Board
	TaskSets   *taskset.Manager
	Tabs       *storage.TabRepository
	SortConfig *storage.SortConfigRepository
	Notifier   *notify.Notifier
	Logger     *log.Logger
	Config     *Config

	lockFile *flock.Flock
	logFile  *os.File
}

// New creates a new application instance backed by the sqlite database
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	a := &App{Config: cfg}

	// Acquire lock to ensure single instance
	if err := a.acquireLock(); err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.DB = database

	if err := a.openLog(); err != nil {
		a.Close()
		return nil, err
	}

	a.wire(database)
	return a, nil
}

// NewWithStore builds the application over any store, without a lock or database
func NewWithStore(store storage.Store, cfg *Config) *App {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	a := &App{Config: cfg}
	a.Logger = log.New(logOutput(cfg, nil), "tabdo: ", log.LstdFlags)
	a.wire(store)
	return a
}

func (a *App) wire(store storage.Store) {
	cfg := a.Config
	a.Store = store
	a.Tabs = storage.NewTabRepository(store, a.Logger)
	a.SortConfig = storage.NewSortConfigRepository(store, a.Logger)
	a.TaskSets = taskset.NewManager(store, a.Logger)

	a.Notifier = notify.NewNotifier()
	a.Notifier.SetEnabled(cfg.Notifications)

	a.Board = board.New(a.Tabs.Load(), a.SortConfig.Load(),
		board.WithSorter(sorting.NewSorter(Language(cfg.Locale))))
	a.Board.Subscribe(a.persist)
}

// persist flushes the part of the state that changed
func (a *App) persist(c board.Change) {
	switch c.Kind {
	case board.TabsChanged:
		if err := a.Tabs.Save(c.Tabs); err != nil {
			a.Logger.Printf("warning: %v", err)
		}
	case board.SortChanged:
		if err := a.SortConfig.Save(c.Sort); err != nil {
			a.Logger.Printf("warning: %v", err)
		}
	}
}

// SaveTaskSet stores the tasks of the active tab as a new task set
func (a *App) SaveTaskSet(name string) (model.TaskSet, error) {
	set, err := a.TaskSets.Snapshot(name, a.Board.ActiveTab().Tasks)
	if err != nil {
		return model.TaskSet{}, err
	}
	if err := a.TaskSets.Save(set); err != nil {
		return model.TaskSet{}, err
	}
	return set, nil
}

// Language parses a locale, falling back to Japanese
func Language(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return language.Japanese
	}
	return tag
}

func (a *App) openLog() error {
	var file *os.File
	if a.Config.LogOutput == nil && (a.Config.Debug || os.Getenv("TABDO_DEBUG") == "1") {
		f, err := os.OpenFile(filepath.Join(a.Config.DataDir, "tabdo.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		file = f
	}
	a.Logger = log.New(logOutput(a.Config, file), "tabdo: ", log.LstdFlags)
	return nil
}

func logOutput(cfg *Config, file *os.File) io.Writer {
	switch {
	case cfg.LogOutput != nil:
		return cfg.LogOutput
	case file != nil:
		return file
	default:
		return io.Discard
	}
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.Config.DataDir, "tabdo.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return ErrAlreadyRunning
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}

	a.releaseLock()

	return errors.Join(errs...)
}
