package ui

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kjetilmb/mouse-juggler/internal/config"
	"github.com/kjetilmb/mouse-juggler/internal/juggler"
)

// fakePointer is an in-memory pointer device for driving the juggler
// under the UI in tests.
type fakePointer struct {
	mu   sync.Mutex
	x, y int
}

func (f *fakePointer) MoveTo(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.x, f.y = x, y
	return nil
}

func (f *fakePointer) Position() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.x, f.y
}

func (f *fakePointer) Size() (int, int) { return 1920, 1080 }

func testModel(t *testing.T) Model {
	t.Helper()

	cfg := config.Default()
	cfg.Pause = config.FloatRange{Min: 0.05, Max: 0.1}
	cfg.Speed = config.FloatRange{Min: 5000, Max: 10000}
	cfg.Hotkey = false

	j := juggler.New(&fakePointer{x: 960, y: 540}, nil)
	t.Cleanup(func() { _ = j.Stop() })

	return InitialModel(j, cfg, filepath.Join(t.TempDir(), "config.yaml"))
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitialModel(t *testing.T) {
	m := testModel(t)
	if m.State != StateMenu {
		t.Error("expected initial state to be StateMenu")
	}
	if m.Selected != 0 {
		t.Error("expected initial selected to be 0")
	}
	if m.Input != "" {
		t.Error("expected initial input to be empty")
	}
	if m.ErrorMessage != "" {
		t.Error("expected initial error message to be empty")
	}
}

func TestMenuView(t *testing.T) {
	m := testModel(t)
	view := View(m)

	for _, opt := range menuItems {
		if !strings.Contains(view, opt) {
			t.Errorf("expected view to contain option %q", opt)
		}
	}

	foundCursor := false
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, ">") && strings.Contains(line, "Start juggling") {
			foundCursor = true
			break
		}
	}
	if !foundCursor {
		t.Error("expected cursor to be at the first option")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := testModel(t)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyUp}, m)
	if m.Selected != 0 {
		t.Errorf("up at top moved selection to %d, want 0", m.Selected)
	}

	m, _ = Update(tea.KeyMsg{Type: tea.KeyDown}, m)
	if m.Selected != 1 {
		t.Errorf("down moved selection to %d, want 1", m.Selected)
	}

	for i := 0; i < 10; i++ {
		m, _ = Update(tea.KeyMsg{Type: tea.KeyDown}, m)
	}
	if m.Selected != len(menuItems)-1 {
		t.Errorf("down past bottom moved selection to %d, want %d", m.Selected, len(menuItems)-1)
	}
}

func TestMenuOpensTimedInput(t *testing.T) {
	m := testModel(t)
	m.Selected = 1

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != StateTimedInput {
		t.Errorf("state = %v, want StateTimedInput", m.State)
	}
}

func TestMenuOpensSettings(t *testing.T) {
	m := testModel(t)
	m.Selected = 2

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != StateSettings {
		t.Errorf("state = %v, want StateSettings", m.State)
	}
}

func TestMenuStartsAndStopsRun(t *testing.T) {
	m := testModel(t)

	m, cmd := Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != StateRunning {
		t.Fatalf("state = %v, want StateRunning (error: %s)", m.State, m.ErrorMessage)
	}
	if cmd == nil {
		t.Error("expected a tick command when entering the running state")
	}
	if !m.Juggler.IsRunning() {
		t.Fatal("juggler not running after menu start")
	}

	m, _ = Update(keyRune('s'), m)
	if m.State != StateMenu {
		t.Errorf("state after stop = %v, want StateMenu", m.State)
	}
	if m.Juggler.IsRunning() {
		t.Error("juggler still running after stop")
	}
}

func TestQuitFromMenu(t *testing.T) {
	m := testModel(t)

	_, cmd := Update(keyRune('q'), m)
	if cmd == nil {
		t.Fatal("expected a command from quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit produced %T, want tea.QuitMsg", cmd())
	}
}

func TestTimedInputFlow(t *testing.T) {
	m := testModel(t)
	m.State = StateTimedInput

	for _, r := range "15" {
		m, _ = Update(keyRune(r), m)
	}
	if m.Input != "15" {
		t.Fatalf("input = %q, want \"15\"", m.Input)
	}

	view := View(m)
	if !strings.Contains(view, "15") {
		t.Error("expected view to show the typed input")
	}

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != StateRunning {
		t.Fatalf("state = %v, want StateRunning (error: %s)", m.State, m.ErrorMessage)
	}
	if m.Duration != 15*time.Minute {
		t.Errorf("duration = %v, want 15m", m.Duration)
	}
	if remaining := m.Juggler.TimeRemaining(); remaining <= 0 {
		t.Errorf("TimeRemaining() = %v, want positive for a timed run", remaining)
	}
}

func TestTimedInputValidation(t *testing.T) {
	m := testModel(t)
	m.State = StateTimedInput

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != StateTimedInput || m.ErrorMessage == "" {
		t.Error("empty input accepted, want inline error")
	}

	m, _ = Update(keyRune('h'), m)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != StateTimedInput || m.ErrorMessage == "" {
		t.Error("input \"h\" accepted, want inline error")
	}

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEsc}, m)
	if m.State != StateMenu {
		t.Errorf("state after esc = %v, want StateMenu", m.State)
	}
}

func TestTimedInputIgnoresLetters(t *testing.T) {
	m := testModel(t)
	m.State = StateTimedInput

	for _, r := range "q9x0z" {
		m, _ = Update(keyRune(r), m)
	}
	if m.Input != "90" {
		t.Errorf("input = %q, want \"90\" with non-duration characters dropped", m.Input)
	}
}

func TestSettingsEditSaves(t *testing.T) {
	m := testModel(t)
	m.State = StateSettings
	m.Settings = newSettings(m.Config)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if !m.Settings.editing {
		t.Fatal("enter did not open the editor")
	}
	if m.Settings.buf != "80" {
		t.Fatalf("edit buffer = %q, want the current value \"80\"", m.Settings.buf)
	}

	m, _ = Update(tea.KeyMsg{Type: tea.KeyBackspace}, m)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyBackspace}, m)
	for _, r := range "90" {
		m, _ = Update(keyRune(r), m)
	}
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

	if m.Settings.editing {
		t.Fatalf("editor still open after save (error: %s)", m.ErrorMessage)
	}
	if m.Config.DistX.Min != 90 {
		t.Errorf("DistX.Min = %d, want 90", m.Config.DistX.Min)
	}
	if !strings.Contains(m.Settings.status, "saved") {
		t.Errorf("status = %q, want a saved confirmation", m.Settings.status)
	}

	loaded, err := config.Load(m.ConfigPath)
	if err != nil {
		t.Fatalf("Load() after save: %v", err)
	}
	if loaded.DistX.Min != 90 {
		t.Errorf("persisted DistX.Min = %d, want 90", loaded.DistX.Min)
	}
}

func TestSettingsRejectsInvalidEdit(t *testing.T) {
	m := testModel(t)
	m.State = StateSettings
	m.Settings = newSettings(m.Config)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	for i := 0; i < 4; i++ {
		m, _ = Update(tea.KeyMsg{Type: tea.KeyBackspace}, m)
	}
	for _, r := range "1000" {
		m, _ = Update(keyRune(r), m)
	}
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

	if !m.Settings.editing {
		t.Error("editor closed despite invalid value")
	}
	if !strings.Contains(m.ErrorMessage, "dist_x") {
		t.Errorf("error = %q, want mention of dist_x", m.ErrorMessage)
	}
	if m.Settings.draft.DistX.Min != 80 {
		t.Errorf("draft DistX.Min = %d, want unchanged 80", m.Settings.draft.DistX.Min)
	}

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEsc}, m)
	if m.Settings.editing {
		t.Error("esc did not cancel the edit")
	}
}

func TestRunningView(t *testing.T) {
	m := testModel(t)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != StateRunning {
		t.Fatalf("state = %v, want StateRunning (error: %s)", m.State, m.ErrorMessage)
	}
	time.Sleep(200 * time.Millisecond)

	view := View(m)
	if !strings.Contains(view, "wandering") {
		t.Error("expected the running banner")
	}
	if !strings.Contains(view, "travels") {
		t.Error("expected the stats line")
	}
	if strings.Contains(view, "remaining") {
		t.Error("untimed run shows a countdown")
	}
}

func TestRunningViewTimed(t *testing.T) {
	m := testModel(t)
	m.State = StateTimedInput
	for _, r := range "5" {
		m, _ = Update(keyRune(r), m)
	}
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != StateRunning {
		t.Fatalf("state = %v, want StateRunning (error: %s)", m.State, m.ErrorMessage)
	}

	view := View(m)
	if !strings.Contains(view, "remaining") {
		t.Error("expected a countdown for the timed run")
	}
}

func TestTickReturnsToMenuWhenRunEnds(t *testing.T) {
	m := testModel(t)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if m.State != StateRunning {
		t.Fatalf("state = %v, want StateRunning (error: %s)", m.State, m.ErrorMessage)
	}

	if err := m.Juggler.Stop(); err != nil { // as the hotkey or timer would
		t.Fatalf("Stop failed: %v", err)
	}
	m, cmd := Update(tickMsg(time.Now()), m)
	if m.State != StateMenu {
		t.Errorf("state after tick = %v, want StateMenu", m.State)
	}
	if cmd != nil {
		t.Error("tick kept scheduling after the run ended")
	}
}

func TestErrorDisplay(t *testing.T) {
	m := testModel(t)
	m.ErrorMessage = "test error"

	if view := View(m); !strings.Contains(view, "test error") {
		t.Error("expected view to show the error message")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := testModel(t)

	m, _ = Update(keyRune('h'), m)
	if !m.ShowHelp {
		t.Fatal("h did not open the help overlay")
	}
	if view := View(m); !strings.Contains(view, "Help") {
		t.Error("expected the help view")
	}

	m, _ = Update(keyRune('h'), m)
	if m.ShowHelp {
		t.Error("h did not close the help overlay")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61 * time.Second, "1:01"},
		{150 * time.Minute, "2:30:00"},
		{2*time.Hour + 5*time.Second, "2:00:05"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
