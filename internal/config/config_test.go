package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EntriesWindowDays != 7 || cfg.SearchWindowDays != 30 {
		t.Errorf("defaults wrong: %+v", cfg)
	}
	if cfg.DefaultWorkspaceID != 0 {
		t.Errorf("DefaultWorkspaceID = %d, want 0 (first workspace)", cfg.DefaultWorkspaceID)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_workspace_id: 42\nentries_window_days: 14\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultWorkspaceID != 42 {
		t.Errorf("DefaultWorkspaceID = %d, want 42", cfg.DefaultWorkspaceID)
	}
	if cfg.EntriesWindowDays != 14 {
		t.Errorf("EntriesWindowDays = %d, want 14", cfg.EntriesWindowDays)
	}
	// Unset fields keep their defaults
	if cfg.SearchWindowDays != 30 {
		t.Errorf("SearchWindowDays = %d, want 30", cfg.SearchWindowDays)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_workspace_id: [nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadZeroWindowsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("entries_window_days: 0\nsearch_window_days: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EntriesWindowDays != 7 || cfg.SearchWindowDays != 30 {
		t.Errorf("windows not defaulted: %+v", cfg)
	}
}
