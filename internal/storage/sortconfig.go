package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/dori/tabdo/internal/sorting"
)

// SortConfigRepository persists the sort configuration
type SortConfigRepository struct {
	store  Store
	logger *log.Logger
}

// NewSortConfigRepository creates a repository writing under SortConfigKey
func NewSortConfigRepository(store Store, logger *log.Logger) *SortConfigRepository {
	return &SortConfigRepository{store: store, logger: orDiscard(logger)}
}

// Load returns the stored configuration, falling back to sorting.Default when
// nothing is stored or the stored value is unusable.
func (r *SortConfigRepository) Load() sorting.Configuration {
	data, err := r.store.Load(SortConfigKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Printf("failed to read sort configuration: %v", err)
		}
		return sorting.Default()
	}

	var cfg sorting.Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		r.logger.Printf("failed to decode sort configuration: %v", err)
		return sorting.Default()
	}
	if err := cfg.Validate(); err != nil {
		r.logger.Printf("ignoring stored sort configuration: %v", err)
		return sorting.Default()
	}
	return cfg
}

// Save writes the configuration
func (r *SortConfigRepository) Save(cfg sorting.Configuration) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode sort configuration: %w", err)
	}
	if err := r.store.Save(SortConfigKey, data); err != nil {
		return fmt.Errorf("failed to write sort configuration: %w", err)
	}
	return nil
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return logger
}
