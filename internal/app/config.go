package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dori/tabdo/internal/db"
	"gopkg.in/yaml.v3"
)

// DefaultPromoDelay is how long to wait after a task set is saved before the
// announcement goes out
const DefaultPromoDelay = 600 * time.Millisecond

// Config holds application configuration
type Config struct {
	DataDir       string        `yaml:"data_dir"`
	DBPath        string        `yaml:"db_path"`
	Locale        string        `yaml:"locale"`
	Theme         string        `yaml:"theme"`
	Notifications bool          `yaml:"notifications"`
	PromoDelay    time.Duration `yaml:"promo_delay"`
	Debug         bool          `yaml:"debug"`

	// LogOutput overrides where the logger writes. Not read from the file.
	LogOutput io.Writer `yaml:"-"`
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir:       db.DefaultDataDir(),
		DBPath:        db.DefaultDBPath(),
		Locale:        "ja",
		Theme:         "nord",
		Notifications: true,
		PromoDelay:    DefaultPromoDelay,
	}
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tabdo", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tabdo.yaml"
	}
	return filepath.Join(home, ".config", "tabdo", "config.yaml")
}

// LoadConfig reads path on top of the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dataDir, dbPath := cfg.DataDir, cfg.DBPath
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// A relocated data dir carries the database with it unless set explicitly
	if cfg.DataDir != dataDir && cfg.DBPath == dbPath {
		cfg.DBPath = filepath.Join(cfg.DataDir, "tabdo.db")
	}
	if cfg.PromoDelay < 0 {
		cfg.PromoDelay = 0
	}
	return cfg, nil
}

// SetDataDir moves the data directory and the database inside it
func (c *Config) SetDataDir(dir string) {
	c.DataDir = dir
	c.DBPath = filepath.Join(dir, "tabdo.db")
}
