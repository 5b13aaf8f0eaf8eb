// Package config holds the tunable sampling ranges that shape generated
// movement, their validation, YAML persistence, and flag parsing.
package config

import (
	"fmt"
	"math/rand"
)

// Range is an inclusive integer interval sampled uniformly.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Sample returns a uniform draw from [r.Min, r.Max].
func (r Range) Sample(rnd *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rnd.Intn(r.Max-r.Min+1)
}

func (r Range) validate(name string, min int) error {
	if r.Min < min {
		return fmt.Errorf("config: %s lower bound %d is below minimum %d", name, r.Min, min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("config: %s range is inverted (%d > %d)", name, r.Min, r.Max)
	}
	return nil
}

// FloatRange is an inclusive float interval sampled uniformly.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample returns a uniform draw from [r.Min, r.Max).
func (r FloatRange) Sample(rnd *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rnd.Float64()*(r.Max-r.Min)
}

// Config is the full set of knobs for a juggling session. A session
// copies the value at start, so edits never affect a running session.
type Config struct {
	// DistX and DistY bound the magnitude of a single travel's
	// displacement per axis, in pixels.
	DistX Range `yaml:"dist_x"`
	DistY Range `yaml:"dist_y"`

	// Pause bounds the idle time between travels, in seconds.
	Pause FloatRange `yaml:"pause_seconds"`

	// Steps bounds the number of points in a generated trajectory.
	Steps Range `yaml:"steps"`

	// Speed bounds the cursor speed, in pixels per second.
	Speed FloatRange `yaml:"speed"`

	// Noise is the sigma of the Gaussian jitter applied to interior
	// trajectory points, in pixels. Zero disables it.
	Noise float64 `yaml:"noise"`

	// Hotkey enables the global stop-on-any-key listener.
	Hotkey bool `yaml:"hotkey"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		DistX:  Range{Min: 80, Max: 300},
		DistY:  Range{Min: 80, Max: 300},
		Pause:  FloatRange{Min: 1.5, Max: 7.0},
		Steps:  Range{Min: 20, Max: 50},
		Speed:  FloatRange{Min: 200, Max: 800},
		Noise:  1.5,
		Hotkey: true,
	}
}

// Validate reports the first violated constraint, naming the offending
// field the way it appears in the config file.
func (c Config) Validate() error {
	if err := c.DistX.validate("dist_x", 1); err != nil {
		return err
	}
	if err := c.DistY.validate("dist_y", 1); err != nil {
		return err
	}
	if c.Pause.Min < 0 {
		return fmt.Errorf("config: pause_seconds lower bound %g is negative", c.Pause.Min)
	}
	if c.Pause.Max < c.Pause.Min {
		return fmt.Errorf("config: pause_seconds range is inverted (%g > %g)", c.Pause.Min, c.Pause.Max)
	}
	if err := c.Steps.validate("steps", 2); err != nil {
		return err
	}
	if c.Speed.Min <= 0 {
		return fmt.Errorf("config: speed lower bound %g must be positive", c.Speed.Min)
	}
	if c.Speed.Max < c.Speed.Min {
		return fmt.Errorf("config: speed range is inverted (%g > %g)", c.Speed.Min, c.Speed.Max)
	}
	if c.Noise < 0 {
		return fmt.Errorf("config: noise %g is negative", c.Noise)
	}
	return nil
}
