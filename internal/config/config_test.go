package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Format != "yaml" || cfg.Revision != "canonical" || cfg.Suffix != ".norm.yaml" {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestDiscover_FindsNearestConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "format = \"json\"\nrevision = \"metadata\"\njobs = 4\n"
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "json" || cfg.Revision != "metadata" || cfg.Jobs != 4 {
		t.Fatalf("expected the file to override defaults, got %#v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Suffix != ".norm.yaml" {
		t.Fatalf("expected default suffix, got %q", cfg.Suffix)
	}
}

func TestDiscover_NoConfigFallsBackToDefaults(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("format = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for malformed TOML")
	}
}
