package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Options configures a play session.
type Options struct {
	Arena         core.Vec2
	Settings      breakout.Settings
	Seed          int64 // 0 picks a time-based seed
	FPS           int
	Difficulty    *config.DifficultyManager // nil keeps the rate at FPS
	Store         *storage.Store            // nil disables recording
	Logger        *log.Logger
	ScreenshotDir string
}

// Model is the Bubble Tea model driving one breakout session at a time.
type Model struct {
	opts     Options
	session  *breakout.Session
	recorder *breakout.Recorder
	seed     int64
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	held     core.InputFrame // Directions pressed since the last tick
	paused   bool
	quitting bool
	saved    bool
	runID    int64
}

// NewModel creates the model and its first session.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		return Model{}, errors.New("tui: logger is required")
	}
	if opts.FPS <= 0 {
		opts.FPS = core.DefaultConfig().TickRate
	}

	m := Model{
		opts:   opts,
		screen: core.NewScreen(opts.Arena.X, opts.Arena.Y),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   core.NewInputFrame(),
	}
	if err := m.startSession(opts.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startSession replaces the current session with a fresh one.
func (m *Model) startSession(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := breakout.NewSeeded(m.opts.Arena, m.opts.Settings, seed)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	m.session = s
	m.seed = seed
	m.recorder = breakout.NewRecorder(seed, m.opts.Arena, m.opts.Settings)
	m.paused = false
	m.saved = false
	m.runID = 0
	m.keys.Restart.SetEnabled(false)
	m.held.Clear()

	m.opts.Logger.Info("session started",
		"arena", fmt.Sprintf("%dx%d", m.opts.Arena.X, m.opts.Arena.Y),
		"seed", seed,
		"max_misses", m.opts.Settings.MaxMisses)
	return nil
}

// Session returns the session being played.
func (m Model) Session() *breakout.Session {
	return m.session
}

// Paused reports whether ticks are suspended.
func (m Model) Paused() bool {
	return m.paused
}

// RunID returns the storage ID of the last saved recording, 0 if none.
func (m Model) RunID() int64 {
	return m.runID
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena is fixed for the session; only the viewport follows.
		m.screen.Resize(max(msg.Width, m.opts.Arena.X), max(msg.Height-1, m.opts.Arena.Y))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !m.session.Phase().Terminal() {
			m.paused = !m.paused
			m.opts.Logger.Debug("pause toggled", "paused", m.paused)
		}

	case core.ActionRestart:
		if err := m.startSession(0); err != nil {
			m.opts.Logger.Error("restart failed", "error", err)
			m.quitting = true
			return m, tea.Quit
		}

	case core.ActionLeft, core.ActionRight:
		m.held.Set(action)
	}

	return m, nil
}

// handleTick advances the session by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.session.Phase().Terminal() {
		m.held.Clear()
		return m, tickCmd(m.tickRate())
	}

	intent := breakout.IntentFromInput(m.held, m.session.Speed())
	m.held.Clear()

	m.recorder.Record(intent)
	res := m.session.Tick(intent)

	if res.BrickHit {
		m.opts.Logger.Debug("brick cleared", "row", res.Brick.Row, "col", res.Brick.Col, "score", m.session.Score())
	}
	if res.Missed {
		m.opts.Logger.Info("ball missed", "misses", m.session.Misses(), "max", m.session.MaxMisses())
	}
	if res.PhaseChanged {
		m.opts.Logger.Info("phase changed", "phase", res.Phase, "score", m.session.Score(), "ticks", res.Tick)
		m.keys.Restart.SetEnabled(true)
		m.saveRun()
	}

	return m, tickCmd(m.tickRate())
}

// tickRate returns the current frame rate, raised by difficulty progression.
func (m Model) tickRate() int {
	if m.opts.Difficulty == nil {
		return m.opts.FPS
	}
	return m.opts.Difficulty.TickRate(m.opts.FPS, m.session.Score(), m.session.TickCount())
}

// saveRun stores the recording once per session. Ticks before any input
// are not worth keeping.
func (m *Model) saveRun() {
	if m.saved || m.opts.Store == nil || m.recorder.Len() == 0 {
		return
	}
	m.saved = true

	id, err := m.opts.Store.SaveRun(m.recorder.Finish(m.session))
	if err != nil {
		m.opts.Logger.Warn("recording not saved", "error", err)
		return
	}
	m.runID = id
	m.opts.Logger.Info("recording saved", "run", id, "ticks", m.recorder.Len(), "score", m.session.Score())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	breakout.Render(m.session.Snapshot(), m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".breakout", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("breakout_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot not written", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	breakout.Render(m.session.Snapshot(), m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.opts.Arena.Y/2, " PAUSED ")
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
