package ui

// State identifies which screen the TUI is showing.
type State int

const (
	StateMenu State = iota
	StateTimedInput
	StateSettings
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateTimedInput:
		return "TimedInput"
	case StateSettings:
		return "Settings"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}
