package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("animation:\n  slide_step: 0.5\ninput:\n  swipe_min_distance: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Animation.SlideStep != 0.5 {
		t.Errorf("SlideStep = %v, want 0.5", cfg.Animation.SlideStep)
	}
	if cfg.Input.SwipeMinDistance != 12 {
		t.Errorf("SwipeMinDistance = %v, want 12", cfg.Input.SwipeMinDistance)
	}
	// Unset keys keep defaults
	if cfg.Animation.SpawnScaleStep != 0.15 {
		t.Errorf("SpawnScaleStep = %v, want default 0.15", cfg.Animation.SpawnScaleStep)
	}
	if cfg.Display.TickRate != 60 {
		t.Errorf("TickRate = %d, want default 60", cfg.Display.TickRate)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("animation: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load() of malformed YAML should fail")
	}
	if cfg != Default() {
		t.Error("failed Load() should return defaults")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neg.yaml")
	data := []byte("animation:\n  slide_step: -1\ndisplay:\n  tick_rate: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject non-positive values")
	}
	if !strings.Contains(err.Error(), "slide_step") || !strings.Contains(err.Error(), "tick_rate") {
		t.Errorf("error should name every bad key, got %v", err)
	}
}

func TestValidateClampsSteps(t *testing.T) {
	cfg := Default()
	cfg.Animation.SlideStep = 3
	cfg.Animation.SpawnScaleStep = 1.5

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if cfg.Animation.SlideStep != 1 || cfg.Animation.SpawnScaleStep != 1 {
		t.Errorf("steps should clamp to 1, got %+v", cfg.Animation)
	}
}
