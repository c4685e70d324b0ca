package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ghost_tester/domain/interfaces"
)

const preferencesFile = "prefs.json"

type preferencesStore struct {
	path string
}

// NewPreferencesStore - creates preferences storage under stateDir
func NewPreferencesStore(stateDir string) (interfaces.Storage, error) {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &preferencesStore{path: filepath.Join(stateDir, preferencesFile)}, nil
}

// LoadPreferences - loads preferences from file
func (s *preferencesStore) LoadPreferences() (interfaces.Preferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return interfaces.Preferences{}, nil
		}
		return interfaces.Preferences{}, err
	}

	var prefs interfaces.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return interfaces.Preferences{}, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return prefs, nil
}

// SavePreferences - saves preferences to file
func (s *preferencesStore) SavePreferences(prefs interfaces.Preferences) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
