package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"taskdeck/internal/model"
)

const stateFile = "state.json"

// state is the durable client state: the three persisted keys of the
// client (token, serialized profile, theme preference).
type state struct {
	Token string      `json:"token,omitempty"`
	User  *model.User `json:"user,omitempty"`
	Theme model.Theme `json:"theme,omitempty"`
}

// loadState reads the state file. A missing file is an empty session,
// not an error.
func loadState(dir string) (state, error) {
	var st state

	raw, err := os.ReadFile(filepath.Join(dir, stateFile))
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("failed to read session state: %w", err)
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		return state{}, fmt.Errorf("failed to decode session state: %w", err)
	}
	return st, nil
}

// saveState writes the state file atomically with owner-only
// permissions; the file holds the bearer token.
func saveState(dir string, st state) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	path := filepath.Join(dir, stateFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace session state: %w", err)
	}
	return nil
}
