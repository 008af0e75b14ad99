package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetLoggingState() {
	CloseAll()
	loggers = make(map[Category]*Logger)
	logsDir = ""
	workspace = ""
	config = loggingConfig{}
}

func writeTestConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, ".brandstudio")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDebugModeWritesCategoryFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeTestConfig(t, tempDir, `{
		"logging": {
			"level": "debug",
			"debug_mode": true
		}
	}`)

	resetLoggingState()
	defer resetLoggingState()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	if !IsDebugMode() {
		t.Fatal("Expected debug mode to be enabled")
	}

	Store("store message")
	Lifecycle("lifecycle message")

	logsPath := filepath.Join(tempDir, ".brandstudio", "logs")
	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}
	found := map[string]bool{}
	for _, e := range entries {
		for _, cat := range []string{"store", "lifecycle"} {
			if strings.HasSuffix(e.Name(), "_"+cat+".log") {
				found[cat] = true
			}
		}
	}
	for _, cat := range []string{"store", "lifecycle"} {
		if !found[cat] {
			t.Errorf("No log file created for category %q", cat)
		}
	}
}

func TestProductionModeIsSilent(t *testing.T) {
	tempDir := t.TempDir()
	// No config file at all = production mode.

	resetLoggingState()
	defer resetLoggingState()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	if IsDebugMode() {
		t.Fatal("Expected debug mode to be disabled without config")
	}

	Generation("should go nowhere")

	if _, err := os.Stat(filepath.Join(tempDir, ".brandstudio", "logs")); !os.IsNotExist(err) {
		t.Errorf("Logs directory should not exist in production mode, stat err=%v", err)
	}
}

func TestCategoryFilter(t *testing.T) {
	tempDir := t.TempDir()
	writeTestConfig(t, tempDir, `{
		"logging": {
			"level": "debug",
			"debug_mode": true,
			"categories": {
				"store": true,
				"generation": false
			}
		}
	}`)

	resetLoggingState()
	defer resetLoggingState()

	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if !IsCategoryEnabled(CategoryStore) {
		t.Error("store category should be enabled")
	}
	if IsCategoryEnabled(CategoryGeneration) {
		t.Error("generation category should be disabled")
	}
	// Unlisted categories default to enabled in debug mode.
	if !IsCategoryEnabled(CategoryUI) {
		t.Error("unlisted category should default to enabled")
	}
}
