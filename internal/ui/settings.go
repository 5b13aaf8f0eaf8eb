package ui

import (
	"fmt"
	"strconv"

	"github.com/kjetilmb/mouse-juggler/internal/config"
)

// settingsModel is the inline editor over the config's range bounds.
// Edits land in draft; a successful save promotes draft to the live
// config and the config file.
type settingsModel struct {
	cursor  int
	editing bool
	buf     string
	draft   config.Config
	status  string
}

func newSettings(cfg config.Config) settingsModel {
	return settingsModel{draft: cfg}
}

// settingRow binds one editable bound to its place in the config.
type settingRow struct {
	label string
	value func(c config.Config) string
	apply func(c *config.Config, input string) error
}

func intBound(field func(c *config.Config) *int) func(*config.Config, string) error {
	return func(c *config.Config, input string) error {
		v, err := strconv.Atoi(input)
		if err != nil {
			return fmt.Errorf("%q is not a whole number", input)
		}
		*field(c) = v
		return nil
	}
}

func floatBound(field func(c *config.Config) *float64) func(*config.Config, string) error {
	return func(c *config.Config, input string) error {
		v, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", input)
		}
		*field(c) = v
		return nil
	}
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// settingRows orders the editable bounds as they appear on screen.
var settingRows = []settingRow{
	{
		label: "Travel X min (px)",
		value: func(c config.Config) string { return itoa(c.DistX.Min) },
		apply: intBound(func(c *config.Config) *int { return &c.DistX.Min }),
	},
	{
		label: "Travel X max (px)",
		value: func(c config.Config) string { return itoa(c.DistX.Max) },
		apply: intBound(func(c *config.Config) *int { return &c.DistX.Max }),
	},
	{
		label: "Travel Y min (px)",
		value: func(c config.Config) string { return itoa(c.DistY.Min) },
		apply: intBound(func(c *config.Config) *int { return &c.DistY.Min }),
	},
	{
		label: "Travel Y max (px)",
		value: func(c config.Config) string { return itoa(c.DistY.Max) },
		apply: intBound(func(c *config.Config) *int { return &c.DistY.Max }),
	},
	{
		label: "Pause min (s)",
		value: func(c config.Config) string { return ftoa(c.Pause.Min) },
		apply: floatBound(func(c *config.Config) *float64 { return &c.Pause.Min }),
	},
	{
		label: "Pause max (s)",
		value: func(c config.Config) string { return ftoa(c.Pause.Max) },
		apply: floatBound(func(c *config.Config) *float64 { return &c.Pause.Max }),
	},
	{
		label: "Steps min",
		value: func(c config.Config) string { return itoa(c.Steps.Min) },
		apply: intBound(func(c *config.Config) *int { return &c.Steps.Min }),
	},
	{
		label: "Steps max",
		value: func(c config.Config) string { return itoa(c.Steps.Max) },
		apply: intBound(func(c *config.Config) *int { return &c.Steps.Max }),
	},
	{
		label: "Speed min (px/s)",
		value: func(c config.Config) string { return ftoa(c.Speed.Min) },
		apply: floatBound(func(c *config.Config) *float64 { return &c.Speed.Min }),
	},
	{
		label: "Speed max (px/s)",
		value: func(c config.Config) string { return ftoa(c.Speed.Max) },
		apply: floatBound(func(c *config.Config) *float64 { return &c.Speed.Max }),
	},
}
