package config

import (
	"math/rand"
	"strings"
	"testing"
)

func TestRangeSample(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	r := Range{Min: 5, Max: 10}
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Sample(rnd)
		if v < r.Min || v > r.Max {
			t.Fatalf("Sample() = %d, want within [%d, %d]", v, r.Min, r.Max)
		}
		seen[v] = true
	}
	for v := r.Min; v <= r.Max; v++ {
		if !seen[v] {
			t.Errorf("Sample() never produced %d in 1000 draws", v)
		}
	}

	degenerate := Range{Min: 7, Max: 7}
	if v := degenerate.Sample(rnd); v != 7 {
		t.Errorf("degenerate Sample() = %d, want 7", v)
	}
}

func TestFloatRangeSample(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	r := FloatRange{Min: 1.5, Max: 7.0}
	for i := 0; i < 1000; i++ {
		v := r.Sample(rnd)
		if v < r.Min || v >= r.Max {
			t.Fatalf("Sample() = %v, want within [%v, %v)", v, r.Min, r.Max)
		}
	}

	degenerate := FloatRange{Min: 0.5, Max: 0.5}
	if v := degenerate.Sample(rnd); v != 0.5 {
		t.Errorf("degenerate Sample() = %v, want 0.5", v)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "defaults pass",
			mutate: func(c *Config) {},
		},
		{
			name:      "inverted dist_x",
			mutate:    func(c *Config) { c.DistX = Range{Min: 300, Max: 80} },
			wantField: "dist_x",
		},
		{
			name:      "zero dist_y lower bound",
			mutate:    func(c *Config) { c.DistY.Min = 0 },
			wantField: "dist_y",
		},
		{
			name:      "negative pause",
			mutate:    func(c *Config) { c.Pause.Min = -1 },
			wantField: "pause_seconds",
		},
		{
			name:      "inverted pause",
			mutate:    func(c *Config) { c.Pause = FloatRange{Min: 7, Max: 1.5} },
			wantField: "pause_seconds",
		},
		{
			name:      "steps below two",
			mutate:    func(c *Config) { c.Steps.Min = 1 },
			wantField: "steps",
		},
		{
			name:      "inverted steps",
			mutate:    func(c *Config) { c.Steps = Range{Min: 50, Max: 20} },
			wantField: "steps",
		},
		{
			name:      "zero speed",
			mutate:    func(c *Config) { c.Speed.Min = 0 },
			wantField: "speed",
		},
		{
			name:      "inverted speed",
			mutate:    func(c *Config) { c.Speed = FloatRange{Min: 800, Max: 200} },
			wantField: "speed",
		},
		{
			name:      "negative noise",
			mutate:    func(c *Config) { c.Noise = -0.1 },
			wantField: "noise",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantField)
			}
		})
	}
}
