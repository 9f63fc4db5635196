package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWindow(t *testing.T) {
	cfg := DefaultWindow()

	if cfg.Title != "Snake "+Version {
		t.Errorf("Expected default title %q, got %q", "Snake "+Version, cfg.Title)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.Centered || !cfg.HighDPI || !cfg.Accelerated || !cfg.VSync {
		t.Errorf("Expected all flags enabled by default, got %+v", cfg)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := ParseWindow(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParseWindow() failed: %v", err)
	}

	if cfg != DefaultWindow() {
		t.Errorf("Embedded default %+v differs from DefaultWindow() %+v", cfg, DefaultWindow())
	}
}

func TestLoadWindowCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.yaml")
	data := []byte("title: Custom\nwidth: 1024\nvsync: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadWindow(path)
	if err != nil {
		t.Fatalf("LoadWindow() failed: %v", err)
	}

	if cfg.Title != "Custom" {
		t.Errorf("Expected title Custom, got %q", cfg.Title)
	}
	if cfg.Width != 1024 {
		t.Errorf("Expected width 1024, got %d", cfg.Width)
	}
	// Missing fields keep their defaults
	if cfg.Height != 600 {
		t.Errorf("Expected default height 600, got %d", cfg.Height)
	}
	if cfg.VSync {
		t.Error("Expected vsync to be disabled")
	}
}

func TestLoadWindowEmptyTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.yaml")
	if err := os.WriteFile(path, []byte("title: \"\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadWindow(path)
	if err != nil {
		t.Fatalf("LoadWindow() failed: %v", err)
	}
	if cfg.Title != DefaultTitle() {
		t.Errorf("Expected empty title to resolve to %q, got %q", DefaultTitle(), cfg.Title)
	}
}

func TestLoadWindowErrors(t *testing.T) {
	if _, err := LoadWindow(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [not, a, number]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadWindow(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}
