package ux

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	prefs := Load(t.TempDir())

	want := DefaultPreferences()
	if prefs != want {
		t.Errorf("got %+v, want %+v", prefs, want)
	}
}

func TestLoadCorruptFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "preferences.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if prefs := Load(dir); prefs != DefaultPreferences() {
		t.Errorf("expected defaults for corrupt file, got %+v", prefs)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	prefs := DefaultPreferences()
	prefs.Theme = "dark"
	prefs.Currency = "€"
	prefs.ConfirmDelete = false

	if err := Save(dir, prefs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Load(dir)
	if loaded != prefs {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, prefs)
	}
}

func TestSaveCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")

	if err := Save(dir, DefaultPreferences()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "preferences.json")); err != nil {
		t.Errorf("preferences.json not written: %v", err)
	}
}

func TestLoadRestampsOldVersion(t *testing.T) {
	dir := t.TempDir()
	old := `{"version":"0.9","theme":"dark","currency":"$","confirm_delete":true,"show_hints":false}`
	if err := os.WriteFile(filepath.Join(dir, "preferences.json"), []byte(old), 0644); err != nil {
		t.Fatal(err)
	}

	prefs := Load(dir)
	if prefs.Version != PreferencesVersion {
		t.Errorf("version not restamped: %q", prefs.Version)
	}
	if prefs.Theme != "dark" || prefs.ShowHints {
		t.Errorf("old values not carried: %+v", prefs)
	}
}
