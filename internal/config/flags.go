package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/kjetilmb/mouse-juggler/internal/util"
)

// Flags is the parsed command line.
type Flags struct {
	Duration    time.Duration // run length; 0 means run until stopped
	ConfigPath  string        // explicit config file; empty means the default path
	Headless    bool
	NoHotkey    bool
	ShowVersion bool
}

const usageText = `juggler keeps your workstation awake by moving the mouse cursor along
humanlike paths. Stop it with s or esc in the UI, any key press when the
global hotkey listener is enabled, or Ctrl+C.

Usage:
  juggler [flags]

Flags:
  -d, --duration <dur>   how long to run: minutes ("90") or a Go duration ("2h30m")
  -c, --clock <time>     run until a wall-clock time ("22:00", "10:30PM")
  -f, --config <path>    config file to use instead of the default
      --headless         run without the terminal UI
      --no-hotkey        disable the global stop-on-any-key listener
  -v, --version          print version and exit
  -h, --help             show this help
`

// ParseFlags parses the juggler command line. args excludes the
// program name, as in os.Args[1:].
func ParseFlags(args []string) (*Flags, error) {
	return ParseFlagsWithNow(args, time.Now())
}

// ParseFlagsWithNow is ParseFlags with an injected current time, so
// tests of the until-clock flag are deterministic.
func ParseFlagsWithNow(args []string, now time.Time) (*Flags, error) {
	flags := flag.NewFlagSet("juggler", flag.ContinueOnError)
	flags.Usage = func() { fmt.Fprint(flags.Output(), usageText) }

	duration := flags.String("duration", "", "run length, minutes or Go duration")
	flags.StringVar(duration, "d", "", "short for --duration")
	clock := flags.String("clock", "", "run until wall-clock time")
	flags.StringVar(clock, "c", "", "short for --clock")
	configPath := flags.String("config", "", "config file path")
	flags.StringVar(configPath, "f", "", "short for --config")
	headless := flags.Bool("headless", false, "run without the terminal UI")
	noHotkey := flags.Bool("no-hotkey", false, "disable the global key listener")
	showVersion := flags.Bool("version", false, "print version and exit")
	flags.BoolVar(showVersion, "v", false, "short for --version")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if *duration != "" && *clock != "" {
		return nil, fmt.Errorf("--duration and --clock are mutually exclusive")
	}

	parsed := &Flags{
		ConfigPath:  *configPath,
		Headless:    *headless,
		NoHotkey:    *noHotkey,
		ShowVersion: *showVersion,
	}

	switch {
	case *duration != "":
		d, err := util.ParseDuration(*duration)
		if err != nil {
			return nil, err
		}
		parsed.Duration = d
	case *clock != "":
		d, err := util.ParseClockWithNow(*clock, now)
		if err != nil {
			return nil, err
		}
		parsed.Duration = d
	}

	return parsed, nil
}
