package config

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{
		Version:      "1",
		DatabasePath: filepath.Join(dir, "custom.db"),
	}

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Version != "1" {
		t.Errorf("expected version '1', got '%s'", loaded.Version)
	}
	if loaded.DatabasePath != cfg.DatabasePath {
		t.Errorf("expected database path '%s', got '%s'", cfg.DatabasePath, loaded.DatabasePath)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}
