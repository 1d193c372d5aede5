package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// ReplayKeyMap defines the key bindings while watching a replay.
type ReplayKeyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayModel plays recorded frames back through a fresh match, one
// recorded frame per tick.
type ReplayModel struct {
	match    *pong.Match
	frames   []pong.RecordedFrame
	next     int
	screen   *core.Screen
	clock    *Clock
	keys     ReplayKeyMap
	help     help.Model
	display  config.DisplayConfig
	paused   bool
	quitting bool
}

// NewReplayModel creates a model that replays frames with the given settings.
func NewReplayModel(s pong.Settings, frames []pong.RecordedFrame, display config.DisplayConfig, width, height int) ReplayModel {
	m := ReplayModel{
		match:   pong.NewMatch(s),
		frames:  frames,
		screen:  core.NewScreen(width, max(height-1, 0)),
		clock:   NewClock(display.TickRate, display.MaxStep()),
		keys:    DefaultReplayKeyMap(),
		help:    help.New(),
		display: display,
	}
	m.help.Width = width
	return m
}

// Init starts playback.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.display.TickRate)
}

// Update handles messages for the replay viewer.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.clock.Reset()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.paused || m.Done() {
			return m, tickCmd(m.display.TickRate)
		}
		// Only the FPS display uses wall time; the simulation uses the
		// recorded delta.
		m.clock.Tick(time.Time(msg))
		f := m.frames[m.next]
		m.match.Update(f.Input, f.DT)
		m.next++
		return m, tickCmd(m.display.TickRate)
	}

	return m, nil
}

// Done reports whether every frame has been played.
func (m ReplayModel) Done() bool {
	return m.next >= len(m.frames)
}

// View renders the replay.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.match.Frame(m.clock.FPS()), m.display.ShowFPS)

	status := fmt.Sprintf("REPLAY %d/%d", m.next, len(m.frames))
	switch {
	case m.Done():
		status += " (finished)"
	case m.paused:
		status += " (paused)"
	}
	m.screen.DrawTextColored(m.screen.Width()-len(status), 0, status, core.ColorGray)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(centerText(m.help.View(m.keys), m.help.Width))
}

// RunReplay plays frames back until the viewer quits.
func RunReplay(s pong.Settings, frames []pong.RecordedFrame, display config.DisplayConfig, width, height int) error {
	p := tea.NewProgram(NewReplayModel(s, frames, display, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
