package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/dori/tabdo/internal/model"
)

// TabRepository mirrors the tab collection into a Store
type TabRepository struct {
	store  Store
	logger *log.Logger
}

// NewTabRepository creates a repository writing under TabsKey
func NewTabRepository(store Store, logger *log.Logger) *TabRepository {
	return &TabRepository{store: store, logger: orDiscard(logger)}
}

// Load returns the stored tabs, or nil when nothing usable is stored.
// Decode failures are logged and treated as missing data.
func (r *TabRepository) Load() []model.Tab {
	data, err := r.store.Load(TabsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Printf("failed to read tabs: %v", err)
		}
		return nil
	}

	var tabs []model.Tab
	if err := json.Unmarshal(data, &tabs); err != nil {
		r.logger.Printf("failed to decode tabs: %v", err)
		return nil
	}
	if len(tabs) == 0 {
		return nil
	}

	for i := range tabs {
		if tabs[i].Tasks == nil {
			tabs[i].Tasks = []model.Task{}
		}
	}
	return tabs
}

// Save writes the whole collection
func (r *TabRepository) Save(tabs []model.Tab) error {
	data, err := json.Marshal(tabs)
	if err != nil {
		return fmt.Errorf("failed to encode tabs: %w", err)
	}
	if err := r.store.Save(TabsKey, data); err != nil {
		return fmt.Errorf("failed to write tabs: %w", err)
	}
	return nil
}
