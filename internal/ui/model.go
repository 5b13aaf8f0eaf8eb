package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kjetilmb/mouse-juggler/internal/config"
	"github.com/kjetilmb/mouse-juggler/internal/juggler"
)

// Model holds the current state of the UI: the screen being shown,
// menu and editor cursors, text being entered, and the juggler under
// control.
type Model struct {
	State    State
	Selected int
	Input    string

	Juggler    *juggler.Juggler
	Config     config.Config
	ConfigPath string

	Settings settingsModel

	Duration     time.Duration // requested run length; 0 means until stopped
	ErrorMessage string
	ShowHelp     bool

	Keys     KeyMap
	Help     help.Model
	Spinner  spinner.Model
	Progress progress.Model
}

// InitialModel returns the model showing the menu.
func InitialModel(j *juggler.Juggler, cfg config.Config, configPath string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Current.Active

	return Model{
		State:      StateMenu,
		Juggler:    j,
		Config:     cfg,
		ConfigPath: configPath,
		Settings:   newSettings(cfg),
		Keys:       DefaultKeys(),
		Help:       NewHelpModel(),
		Spinner:    sp,
		Progress:   progress.New(progress.WithDefaultGradient()),
	}
}

// InitialModelWithDuration returns a model already running a session,
// used when a run length came from the command line. d of zero starts
// an until-stopped session.
func InitialModelWithDuration(j *juggler.Juggler, cfg config.Config, configPath string, d time.Duration) Model {
	m := InitialModel(j, cfg, configPath)

	var err error
	if d > 0 {
		err = j.StartTimed(cfg, d)
	} else {
		err = j.Start(cfg)
	}
	if err != nil {
		m.ErrorMessage = err.Error()
		return m
	}

	m.State = StateRunning
	m.Duration = d
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.State == StateRunning {
		return tea.Batch(tick(), m.Spinner.Tick)
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return View(m)
}
