package ui

import (
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kjetilmb/mouse-juggler/internal/config"
	"github.com/kjetilmb/mouse-juggler/internal/util"
)

// tickMsg drives the running screen's stat refresh.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Help.Width = msg.Width
		width := msg.Width - 8
		if width > 50 {
			width = 50
		}
		if width < 10 {
			width = 10
		}
		m.Progress.Width = width
		return m, nil

	case spinner.TickMsg:
		if m.State != StateRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tickMsg:
		return updateTick(m)

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.ForceQuit) {
			return quit(m)
		}
		if m.ShowHelp {
			switch {
			case key.Matches(msg, m.Keys.ToggleHelp),
				key.Matches(msg, m.Keys.Back),
				key.Matches(msg, m.Keys.Quit):
				m.ShowHelp = false
			}
			return m, nil
		}
		switch m.State {
		case StateMenu:
			return updateMenu(msg, m)
		case StateTimedInput:
			return updateTimedInput(msg, m)
		case StateSettings:
			return updateSettings(msg, m)
		case StateRunning:
			return updateRunning(msg, m)
		}
	}

	return m, nil
}

func updateTick(m Model) (Model, tea.Cmd) {
	if m.State != StateRunning {
		return m, nil
	}
	// The run can end on its own: the timer fired or a global key
	// press stopped it.
	if !m.Juggler.IsRunning() {
		m.State = StateMenu
		m.Duration = 0
		return m, nil
	}
	return m, tick()
}

func updateMenu(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Selected < len(menuItems)-1 {
			m.Selected++
		}
	case key.Matches(msg, m.Keys.Select):
		return selectMenuItem(m)
	case key.Matches(msg, m.Keys.ToggleHelp):
		m.ShowHelp = true
	case key.Matches(msg, m.Keys.Back), key.Matches(msg, m.Keys.Quit):
		return quit(m)
	}
	return m, nil
}

func selectMenuItem(m Model) (Model, tea.Cmd) {
	switch m.Selected {
	case 0:
		if err := m.Juggler.Start(m.Config); err != nil {
			m.ErrorMessage = err.Error()
			return m, nil
		}
		m.State = StateRunning
		m.Duration = 0
		m.ErrorMessage = ""
		return m, tea.Batch(tick(), m.Spinner.Tick)
	case 1:
		m.State = StateTimedInput
		m.Input = ""
		m.ErrorMessage = ""
	case 2:
		m.State = StateSettings
		m.Settings = newSettings(m.Config)
		m.ErrorMessage = ""
	case 3:
		return quit(m)
	}
	return m, nil
}

// quit stops any active session before leaving the program.
func quit(m Model) (Model, tea.Cmd) {
	if m.Juggler.IsRunning() {
		if err := m.Juggler.Stop(); err != nil {
			m.ErrorMessage = err.Error()
			return m, nil
		}
	}
	return m, tea.Quit
}

func updateTimedInput(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Submit):
		d, err := util.ParseDuration(strings.TrimSpace(m.Input))
		if err != nil {
			m.ErrorMessage = err.Error()
			return m, nil
		}
		if d <= 0 {
			m.ErrorMessage = "duration must be positive"
			return m, nil
		}
		if err := m.Juggler.StartTimed(m.Config, d); err != nil {
			m.ErrorMessage = err.Error()
			return m, nil
		}
		m.State = StateRunning
		m.Duration = d
		m.ErrorMessage = ""
		return m, tea.Batch(tick(), m.Spinner.Tick)
	case key.Matches(msg, m.Keys.Back):
		m.State = StateMenu
		m.ErrorMessage = ""
	case key.Matches(msg, m.Keys.Backspace):
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
			m.ErrorMessage = ""
		}
	default:
		if s := msg.String(); len(s) == 1 && isDurationChar(rune(s[0])) && len(m.Input) < 8 {
			m.Input += s
			m.ErrorMessage = ""
		}
	}
	return m, nil
}

// isDurationChar admits the characters of "90" and "2h30m" style
// input.
func isDurationChar(r rune) bool {
	return unicode.IsDigit(r) || r == 'h' || r == 'm' || r == 's'
}

func updateSettings(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	if m.Settings.editing {
		return updateSettingsEdit(msg, m)
	}
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Settings.cursor > 0 {
			m.Settings.cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Settings.cursor < len(settingRows)-1 {
			m.Settings.cursor++
		}
	case key.Matches(msg, m.Keys.Edit):
		m.Settings.editing = true
		m.Settings.buf = settingRows[m.Settings.cursor].value(m.Settings.draft)
		m.Settings.status = ""
		m.ErrorMessage = ""
	case key.Matches(msg, m.Keys.Back):
		m.State = StateMenu
		m.ErrorMessage = ""
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)
	case key.Matches(msg, m.Keys.ToggleHelp):
		m.ShowHelp = true
	}
	return m, nil
}

func updateSettingsEdit(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Edit):
		return commitSetting(m)
	case key.Matches(msg, m.Keys.Back):
		m.Settings.editing = false
		m.Settings.buf = ""
		m.ErrorMessage = ""
	case key.Matches(msg, m.Keys.Backspace):
		if len(m.Settings.buf) > 0 {
			m.Settings.buf = m.Settings.buf[:len(m.Settings.buf)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 && isNumberChar(rune(s[0])) && len(m.Settings.buf) < 8 {
			m.Settings.buf += s
		}
	}
	return m, nil
}

func isNumberChar(r rune) bool {
	return unicode.IsDigit(r) || r == '.'
}

// commitSetting applies the edit buffer to a copy of the draft,
// validates the whole config, and persists it. Invalid input leaves
// the editor open with the error shown.
func commitSetting(m Model) (Model, tea.Cmd) {
	row := settingRows[m.Settings.cursor]

	draft := m.Settings.draft
	if err := row.apply(&draft, strings.TrimSpace(m.Settings.buf)); err != nil {
		m.ErrorMessage = err.Error()
		return m, nil
	}
	if err := draft.Validate(); err != nil {
		m.ErrorMessage = err.Error()
		return m, nil
	}
	if err := config.Save(draft, m.ConfigPath); err != nil {
		m.ErrorMessage = err.Error()
		return m, nil
	}

	m.Settings.draft = draft
	m.Settings.editing = false
	m.Settings.buf = ""
	m.Settings.status = "saved to " + m.ConfigPath
	m.Config = draft
	m.ErrorMessage = ""
	return m, nil
}

func updateRunning(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Stop):
		if err := m.Juggler.Stop(); err != nil {
			m.ErrorMessage = err.Error()
			return m, nil
		}
		m.State = StateMenu
		m.Duration = 0
		m.ErrorMessage = ""
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)
	case key.Matches(msg, m.Keys.ToggleHelp):
		m.ShowHelp = true
	}
	return m, nil
}
