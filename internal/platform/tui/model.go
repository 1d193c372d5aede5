package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// PlayOptions configures a live match.
type PlayOptions struct {
	Settings pong.Settings
	Display  config.DisplayConfig
	Record   bool        // Keep every frame for a replay
	Logger   *log.Logger // Match events; nil discards
	Width    int         // Initial terminal size, updated on resize
	Height   int
}

// PlayResult describes a finished match.
type PlayResult struct {
	Frames     []pong.RecordedFrame // nil unless recording
	Banner     string
	Hash       uint64
	FrameCount uint64
}

// PlayModel is the Bubble Tea model for a live match.
type PlayModel struct {
	match    *pong.Match
	recorder *pong.Recorder
	screen   *core.Screen
	clock    *Clock
	holds    *HoldTracker
	keys     KeyMap
	help     help.Model
	display  config.DisplayConfig
	logger   *log.Logger
	paused   bool
	quitting bool
}

// NewPlayModel creates a model for a fresh match.
func NewPlayModel(opts PlayOptions) PlayModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := PlayModel{
		match:   pong.NewMatch(opts.Settings),
		screen:  core.NewScreen(opts.Width, max(opts.Height-1, 0)),
		clock:   NewClock(opts.Display.TickRate, opts.Display.MaxStep()),
		holds:   NewHoldTracker(opts.Display.Hold()),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		display: opts.Display,
		logger:  logger,
	}
	if opts.Record {
		m.recorder = pong.NewRecorder()
	}
	m.help.Width = opts.Width
	return m
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	m.logger.Info("match started",
		"width", m.match.Settings().ScreenW,
		"height", m.match.Settings().ScreenH,
		"bounds", m.match.Settings().Bounds,
		"recording", m.recorder != nil)
	return tickCmd(m.display.TickRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.logger.Info("match ended",
			"frames", m.match.Frames(),
			"banner", m.match.Banner())
		return m, tea.Quit

	case action == core.ActionPause:
		m.paused = !m.paused
		m.holds.Reset()
		m.clock.Reset()
		m.logger.Debug("pause toggled", "paused", m.paused)
		return m, nil

	case action != core.ActionNone && !m.paused:
		m.holds.Press(action, now)
	}
	return m, nil
}

// handleTick advances the match by one frame.
func (m PlayModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.display.TickRate)
	}

	dt := m.clock.Tick(now)
	in := m.holds.Frame(now)
	res := m.match.Update(in, dt)
	if m.recorder != nil {
		m.recorder.Record(dt, in)
	}
	m.logEvents(res.Events)

	return m, tickCmd(m.display.TickRate)
}

func (m PlayModel) logEvents(events []pong.Event) {
	for _, e := range events {
		switch e.Type {
		case pong.EventPaddleHit:
			m.logger.Debug("paddle hit",
				"side", e.Side,
				"vx", e.VX,
				"vy", e.VY,
				"rally", m.match.Rally())
		case pong.EventWallBounce:
			m.logger.Debug("wall bounce", "x", e.Ball.X, "y", e.Ball.Y)
		case pong.EventRoundOver:
			m.logger.Info("round over",
				"winner", e.Side,
				"frame", m.match.Frames(),
				"rally", m.match.Rally())
		case pong.EventServe:
			m.logger.Info("serve", "frame", m.match.Frames())
		}
	}
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.match.Frame(m.clock.FPS()), m.display.ShowFPS)
	if m.paused {
		m.screen.DrawTextCentered(1, "PAUSED", core.ColorYellow)
	}

	if m.help.ShowAll {
		return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(centerText(m.help.View(m.keys), m.help.Width))
}

// Result returns the outcome of the match so far.
func (m PlayModel) Result() PlayResult {
	res := PlayResult{
		Banner:     m.match.Banner(),
		Hash:       m.match.Snapshot().Hash(),
		FrameCount: m.match.Frames(),
	}
	if m.recorder != nil {
		res.Frames = m.recorder.Frames()
	}
	return res
}

// RunPlay runs a live match until the players quit.
func RunPlay(opts PlayOptions) (PlayResult, error) {
	p := tea.NewProgram(NewPlayModel(opts), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PlayResult{}, err
	}

	m, ok := finalModel.(PlayModel)
	if !ok {
		return PlayResult{}, nil
	}
	return m.Result(), nil
}
