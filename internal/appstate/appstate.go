// Package appstate holds the in-memory application state and persists a
// subset of it between runs.
//
// Implements: prd006-application-state
package appstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the state file kept in the config directory.
const FileName = "state.json"

// State is the full runtime state. Subscription fields are derived at
// startup and never written to disk; see persisted for the subset that
// survives a restart.
type State struct {
	Initialized        bool
	DarkMode           bool
	ActiveFarmID       int64
	SubscriptionActive bool
	SubscriptionExpiry string
}

// persisted is the on-disk shape.
type persisted struct {
	Initialized  bool  `json:"initialized"`
	DarkMode     bool  `json:"dark_mode"`
	ActiveFarmID int64 `json:"active_farm_id"`
}

// Load reads the state file from dir. A missing file is not an error;
// it returns the zero state, as on first launch.
func Load(dir string) (*State, error) {
	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	return &State{
		Initialized:  p.Initialized,
		DarkMode:     p.DarkMode,
		ActiveFarmID: p.ActiveFarmID,
	}, nil
}

// Save writes the persisted subset to dir, creating it if needed.
func (s *State) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	raw, err := json.MarshalIndent(persisted{
		Initialized:  s.Initialized,
		DarkMode:     s.DarkMode,
		ActiveFarmID: s.ActiveFarmID,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), raw, 0o600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}
