package model

import (
	"testing"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if len(cfg.Defaults.Tags) != 9 {
		t.Errorf("expected 9 default tags, got %d", len(cfg.Defaults.Tags))
	}
	if cfg.Defaults.Layout != "tile" {
		t.Errorf("expected default layout 'tile', got '%s'", cfg.Defaults.Layout)
	}
}

func TestConfig_ResolveDefaults(t *testing.T) {
	registry := DefaultRegistry()
	cfg := NewConfig()
	cfg.Defaults.Tags = []string{"a", "b"}
	cfg.Defaults.Layout = "max"

	defaults := cfg.ResolveDefaults(registry)

	if len(defaults.Names) != 2 || len(defaults.Layouts) != 2 {
		t.Fatalf("expected aligned pairs of length 2, got %d/%d", len(defaults.Names), len(defaults.Layouts))
	}
	if defaults.Layouts[0] != registry.Lookup("max") {
		t.Error("expected configured layout to resolve through the registry")
	}
}

func TestConfig_ResolveDefaults_UnknownLayout(t *testing.T) {
	registry := DefaultRegistry()
	cfg := NewConfig()
	cfg.Defaults.Layout = "nonexistent"

	defaults := cfg.ResolveDefaults(registry)

	if defaults.Layouts[0] != registry.First() {
		t.Error("unknown default layout should fall back to the first registered layout")
	}
}

func TestConfig_SavePath_Override(t *testing.T) {
	cfg := NewConfig()
	cfg.SaveFile = "/tmp/custom.retained"

	path, err := cfg.SavePath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/tmp/custom.retained" {
		t.Errorf("expected override path, got '%s'", path)
	}
}
