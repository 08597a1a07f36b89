package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// These tests mutate package state, so none of them run in parallel.

func reset() {
	CloseAll()
	logsDir = ""
	stateDir = ""
	config = loggingConfig{}
	logLevel = LevelInfo
}

func TestInitializeWithoutConfigIsSilent(t *testing.T) {
	defer reset()

	dir := t.TempDir()
	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Boot("this should go nowhere")

	if _, err := os.Stat(filepath.Join(dir, "logs")); !os.IsNotExist(err) {
		t.Error("logs directory created in production mode")
	}
}

func TestInitializeDebugModeWritesFiles(t *testing.T) {
	defer reset()

	dir := t.TempDir()
	cfg := "logging:\n  debug_mode: true\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Session("logged in as %s", "jane@example.com")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("logs directory missing: %v", err)
	}

	var found bool
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_session.log") {
			found = true
			data, err := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), "jane@example.com") {
				t.Errorf("log entry missing: %s", data)
			}
		}
	}
	if !found {
		t.Error("no session log file written")
	}
}

func TestCategoryToggle(t *testing.T) {
	defer reset()

	dir := t.TempDir()
	cfg := "logging:\n  debug_mode: true\n  categories:\n    api: false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if IsCategoryEnabled(CategoryAPI) {
		t.Error("api category should be disabled")
	}
	if !IsCategoryEnabled(CategoryStore) {
		t.Error("unlisted categories default to enabled")
	}
}

func TestRequestLoggerCorrelatesLines(t *testing.T) {
	defer reset()

	dir := t.TempDir()
	cfg := "logging:\n  debug_mode: true\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	rl := WithRequestID(CategoryAPI, "abc12345")
	rl.Info("GET /expenses -> 200")
	CloseAll()

	entries, _ := os.ReadDir(filepath.Join(dir, "logs"))
	var content string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_api.log") {
			data, _ := os.ReadFile(filepath.Join(dir, "logs", e.Name()))
			content = string(data)
		}
	}
	if !strings.Contains(content, "[req:abc12345]") {
		t.Errorf("correlation id missing from log: %q", content)
	}
}
