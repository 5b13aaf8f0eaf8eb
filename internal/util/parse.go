// Package util holds small parsing helpers for the command line.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses a run length given either as whole minutes
// ("90") or as a Go duration string ("2h30m").
func ParseDuration(input string) (time.Duration, error) {
	var d time.Duration
	if minutes, err := strconv.Atoi(input); err == nil {
		d = time.Duration(minutes) * time.Minute
	} else if d, err = time.ParseDuration(input); err != nil {
		return 0, fmt.Errorf("invalid duration %q: use minutes (\"90\") or a Go duration (\"2h30m\")", input)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration %q: must not be negative", input)
	}
	return d, nil
}

// clockFormats accepts 24-hour ("22:30") and 12-hour ("10:30PM",
// "9:45 AM") wall-clock times. time.Parse is lenient about a leading
// zero on the hour, so three formats cover all of them.
var clockFormats = []string{"15:04", "3:04PM", "3:04 PM"}

// ParseClock parses a wall-clock time and returns the duration from
// now until its next occurrence, rolling over to tomorrow when the
// time has already passed today.
func ParseClock(input string) (time.Duration, error) {
	return ParseClockWithNow(input, time.Now())
}

// ParseClockWithNow is ParseClock with an injected current time.
func ParseClockWithNow(input string, now time.Time) (time.Duration, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	for _, format := range clockFormats {
		t, err := time.Parse(format, s)
		if err != nil {
			continue
		}
		target := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
		if !target.After(now) {
			target = target.Add(24 * time.Hour)
		}
		return target.Sub(now), nil
	}
	return 0, fmt.Errorf("invalid time %q: use 24-hour (\"22:30\") or 12-hour (\"10:30PM\") format", input)
}
