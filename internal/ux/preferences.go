// Package ux persists user-interface preferences across runs. Preferences
// are cosmetic only; session state (who is logged in, the expense list)
// lives in the store and is deliberately memory-only.
package ux

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// PreferencesVersion is the current schema version for preferences.json.
const PreferencesVersion = "1.0"

// Preferences is the persisted UI preference schema.
type Preferences struct {
	// Version is the schema version for migration detection
	Version string `json:"version"`

	// Theme is "auto", "light" or "dark"
	Theme string `json:"theme"`

	// Currency is the symbol prefixed to formatted amounts
	Currency string `json:"currency"`

	// ConfirmDelete gates the confirmation step before deleting an expense
	ConfirmDelete bool `json:"confirm_delete"`

	// ShowHints controls the keybinding hint footer
	ShowHints bool `json:"show_hints"`
}

var prefsMu sync.Mutex

// DefaultPreferences returns the out-of-the-box preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Version:       PreferencesVersion,
		Theme:         "auto",
		Currency:      "$",
		ConfirmDelete: true,
		ShowHints:     true,
	}
}

func prefsPath(stateDir string) string {
	return filepath.Join(stateDir, "preferences.json")
}

// Load reads preferences from the state directory. A missing or
// unreadable file yields defaults.
func Load(stateDir string) Preferences {
	prefsMu.Lock()
	defer prefsMu.Unlock()

	data, err := os.ReadFile(prefsPath(stateDir))
	if err != nil {
		return DefaultPreferences()
	}

	prefs := DefaultPreferences()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return DefaultPreferences()
	}

	// Older schema: re-stamp and carry what parsed.
	if prefs.Version != PreferencesVersion {
		prefs.Version = PreferencesVersion
	}

	return prefs
}

// Save writes preferences to the state directory.
func Save(stateDir string, prefs Preferences) error {
	prefsMu.Lock()
	defer prefsMu.Unlock()

	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	prefs.Version = PreferencesVersion
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(prefsPath(stateDir), data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	return nil
}
