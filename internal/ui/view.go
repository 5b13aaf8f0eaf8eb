package ui

import (
	"fmt"
	"strings"
	"time"
)

var menuItems = []string{
	"Start juggling",
	"Start for a set time",
	"Settings",
	"Quit",
}

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.ShowHelp {
		return helpView(m)
	}

	switch m.State {
	case StateMenu:
		return menuView(m)
	case StateTimedInput:
		return timedInputView(m)
	case StateSettings:
		return settingsView(m)
	case StateRunning:
		return runningView(m)
	}

	return ""
}

func menuView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Mouse Juggler"))
	b.WriteString("\n\n")

	for i, opt := range menuItems {
		if i == m.Selected {
			b.WriteString(Current.Selected.Render("> " + opt))
		} else {
			b.WriteString(Current.Unselected.Render("  " + opt))
		}
		b.WriteString("\n")
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + m.Help.View(m.Keys.ForState(StateMenu)))
	return b.String()
}

func timedInputView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Run for how long?"))
	b.WriteString("\n\n")

	input := m.Input
	if input == "" {
		input = " "
	}
	b.WriteString(Current.InputBox.Render(input))
	b.WriteString("\n\n")
	b.WriteString(Current.Help.Render(`minutes ("90") or a duration ("2h30m")`))

	if m.ErrorMessage != "" {
		b.WriteString("\n\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + m.Help.View(m.Keys.ForState(StateTimedInput)))
	return b.String()
}

func settingsView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Settings"))
	b.WriteString("\n\n")

	for i, row := range settingRows {
		cursor := "  "
		style := Current.Unselected
		if i == m.Settings.cursor {
			cursor = "> "
			style = Current.Selected
		}

		value := row.value(m.Settings.draft)
		if i == m.Settings.cursor && m.Settings.editing {
			value = Current.InputBox.Render(m.Settings.buf + "▌")
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-18s %s", cursor, row.label, value)))
		b.WriteString("\n")
	}

	if m.Settings.status != "" {
		b.WriteString("\n" + Current.Status.Render(m.Settings.status))
	}
	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + m.Help.View(m.Keys.ForState(StateSettings)))
	return b.String()
}

func runningView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Juggling"))
	b.WriteString("\n\n")

	b.WriteString(Current.Active.Render(m.Spinner.View() + " The cursor is wandering"))
	b.WriteString("\n")

	stats := m.Juggler.Stats()
	if !stats.Started.IsZero() {
		line := fmt.Sprintf("%d travels · %d px · %s elapsed",
			stats.Travels, stats.Pixels, formatClock(time.Since(stats.Started)))
		b.WriteString(Current.Stat.Render(line))
		b.WriteString("\n")
	}

	if m.Duration > 0 {
		remaining := m.Juggler.TimeRemaining()
		b.WriteString(Current.Stat.Render(formatClock(remaining) + " remaining"))
		b.WriteString("\n\n")

		frac := 1.0 - float64(remaining)/float64(m.Duration)
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		b.WriteString("  " + m.Progress.ViewAs(frac))
		b.WriteString("\n")
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n" + m.Help.View(m.Keys.ForState(StateRunning)))
	return b.String()
}

func helpView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(Current.Unselected.Render("juggler moves the mouse cursor along humanlike paths so the"))
	b.WriteString("\n")
	b.WriteString(Current.Unselected.Render("workstation never looks idle. Any global key press stops an"))
	b.WriteString("\n")
	b.WriteString(Current.Unselected.Render("active run when the hotkey listener is enabled."))
	b.WriteString("\n\n")

	m.Help.ShowAll = true
	b.WriteString(m.Help.View(m.Keys.ForState(m.State)))
	b.WriteString("\n\n")
	b.WriteString(Current.Help.Render("press h, q or esc to close"))
	return b.String()
}

// formatClock renders a duration as m:ss, or h:mm:ss once hours are
// involved.
func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
