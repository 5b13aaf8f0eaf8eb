package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "juggler", "config.yaml")

	want := Default()
	want.DistX = Range{Min: 50, Max: 150}
	want.Pause = FloatRange{Min: 0.5, Max: 2.5}
	want.Noise = 0.8
	want.Hotkey = false

	if err := Save(want, path); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "dist_x:\n  min: 10\n  max: 20\nnoise: 0.5\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.DistX != (Range{Min: 10, Max: 20}) {
		t.Errorf("DistX = %+v, want {10 20}", cfg.DistX)
	}
	if cfg.Noise != 0.5 {
		t.Errorf("Noise = %v, want 0.5", cfg.Noise)
	}
	if cfg.Speed != Default().Speed {
		t.Errorf("Speed = %+v, want default %+v", cfg.Speed, Default().Speed)
	}
	if !cfg.Hotkey {
		t.Error("Hotkey = false, want default true")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("dist_x: [not a range"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for malformed YAML")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	bad := "speed:\n  min: -5\n  max: 100\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for invalid config values")
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Steps = Range{Min: 50, Max: 20}
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(cfg, path); err == nil {
		t.Error("Save() = nil error for invalid config")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save() wrote a file despite invalid config")
	}
}
