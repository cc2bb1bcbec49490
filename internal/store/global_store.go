package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/carddown/internal/domain"
)

// GlobalStateStore persists the cross-card statistics as one local JSON
// file, with the same tolerant-load and atomic-save policy as the card
// store. Falling back to defaults on a corrupt file is deliberate: losing
// the running mean is cheaper than refusing to run.
type GlobalStateStore struct {
	path string
}

// NewGlobalStateStore returns a store persisting to the given file path.
func NewGlobalStateStore(path string) *GlobalStateStore {
	return &GlobalStateStore{path: path}
}

// Load reads the global state, degrading to defaults when the file is
// missing or unparsable.
func (s *GlobalStateStore) Load() (*domain.GlobalState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("no global state found, using defaults", "path", s.path)
			return domain.NewGlobalState(), nil
		}
		return nil, fmt.Errorf("failed to read global state %s: %w", s.path, err)
	}

	state := domain.NewGlobalState()
	if err := json.Unmarshal(data, state); err != nil {
		slog.Warn("global state corrupted, using defaults", "path", s.path, "error", err)
		return domain.NewGlobalState(), nil
	}
	return state, nil
}

// Save rewrites the global-state file.
func (s *GlobalStateStore) Save(state *domain.GlobalState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize global state: %w", err)
	}
	if err := atomicWriteFile(s.path, data); err != nil {
		return fmt.Errorf("failed to write global state %s: %w", s.path, err)
	}
	return nil
}
