package pong

import (
	"github.com/vovakirdan/pingpong/internal/core"
)

// Banner texts shown while a round is over.
const (
	BannerLeftWins  = "Left Player Wins!"
	BannerRightWins = "Right Player Wins!"
)

// State is the match phase.
type State int

const (
	StatePlaying State = iota
	StateRoundOver
)

// String returns a lowercase state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// EventType classifies something that happened during a frame.
type EventType int

const (
	EventWallBounce EventType = iota
	EventPaddleHit
	EventRoundOver
	EventServe
)

// String returns a lowercase event name.
func (e EventType) String() string {
	switch e {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventRoundOver:
		return "round_over"
	case EventServe:
		return "serve"
	default:
		return "unknown"
	}
}

// Event is reported to the caller for logging and display.
// Events never feed back into the simulation.
type Event struct {
	Type   EventType
	Side   Side // Paddle hit, or round winner
	Ball   core.Vec2
	VX, VY float64 // Ball velocity after the event
}

// FrameResult is returned by Match.Update after each frame.
type FrameResult struct {
	State  State
	Banner string
	Events []Event
}

// Match owns the ball and both paddles and advances them once per frame.
type Match struct {
	settings Settings
	ball     *Ball
	left     *Paddle
	right    *Paddle

	state  State
	winner Side
	frame  uint64
	rally  int // Paddle hits since the last serve
}

// NewMatch creates a match with the ball centered and both paddles at
// mid-height.
func NewMatch(s Settings) *Match {
	midY := s.ScreenH / 2

	left := NewPaddle(SideLeft, s.PaddleInset, midY, s.PaddleSpeed, s.PaddleWidth, s.PaddleHeight, s.LeftColor)
	right := NewPaddle(SideRight, s.ScreenW-s.PaddleInset, midY, s.PaddleSpeed, s.PaddleWidth, s.PaddleHeight, s.RightColor)
	if s.Bounds == BoundsEntity {
		left.Bounds = BoundsEntity
		right.Bounds = BoundsEntity
	}

	return &Match{
		settings: s,
		ball:     NewBall(s.ScreenW/2, midY, s.BallSpeed, s.BallSpeed, s.BallRadius),
		left:     left,
		right:    right,
		state:    StatePlaying,
	}
}

// Update advances the match by dt seconds using the given input.
// The order is fixed: ball motion, wall reflection, paddle motion, paddle
// collisions, win check, serve.
func (m *Match) Update(in core.Input, dt float64) FrameResult {
	var events []Event
	m.frame++

	m.ball.Advance(dt)
	if m.ball.ReflectOffWalls(m.settings.ScreenH) {
		events = append(events, m.event(EventWallBounce, SideNone))
	}

	m.left.ApplyInput(dt, in.IsHeld(core.ActionLeftUp), in.IsHeld(core.ActionLeftDown))
	m.left.Clamp(m.settings.ScreenH)
	m.right.ApplyInput(dt, in.IsHeld(core.ActionRightUp), in.IsHeld(core.ActionRightDown))
	m.right.Clamp(m.settings.ScreenH)

	// Only a ball travelling towards a paddle can bounce off it. After a
	// bounce the direction flips, so an overlapping ball cannot re-trigger.
	if m.deflect(m.left, m.ball.VX < 0) {
		events = append(events, m.event(EventPaddleHit, SideLeft))
	}
	if m.deflect(m.right, m.ball.VX > 0) {
		events = append(events, m.event(EventPaddleHit, SideRight))
	}

	winner := m.checkWinner()
	if winner != SideNone && m.state == StatePlaying {
		events = append(events, m.event(EventRoundOver, winner))
	}
	m.setWinner(winner)

	if m.state == StateRoundOver && in.IsPressed(core.ActionServe) {
		m.serve()
		events = append(events, m.event(EventServe, SideNone))
	}

	return FrameResult{
		State:  m.state,
		Banner: m.Banner(),
		Events: events,
	}
}

// deflect bounces the ball off p when it overlaps p and approaching is true.
// The outgoing vertical speed depends on how far from the paddle center the
// ball struck, scaled by the new horizontal speed.
func (m *Match) deflect(p *Paddle, approaching bool) bool {
	if !approaching {
		return false
	}
	if !core.CircleIntersectsRect(m.ball.Center(), m.ball.Radius(), p.BoundingRect()) {
		return false
	}

	m.ball.VX *= -m.settings.BounceFactor
	m.ball.VY = (m.ball.Y - p.Y) / (p.Height / 2) * m.ball.VX
	m.rally++
	return true
}

// checkWinner reports which side scored, if the ball has left the field.
func (m *Match) checkWinner() Side {
	switch {
	case m.ball.X < 0:
		return SideRight
	case m.ball.X > m.settings.ScreenW:
		return SideLeft
	default:
		return SideNone
	}
}

func (m *Match) setWinner(s Side) {
	m.winner = s
	if s == SideNone {
		m.state = StatePlaying
	} else {
		m.state = StateRoundOver
	}
}

// serve restarts the round with the initial ball state.
func (m *Match) serve() {
	m.ball.Reset(m.settings.ScreenW/2, m.settings.ScreenH/2, m.settings.BallSpeed)
	m.rally = 0
	m.setWinner(SideNone)
}

func (m *Match) event(t EventType, side Side) Event {
	return Event{
		Type: t,
		Side: side,
		Ball: m.ball.Center(),
		VX:   m.ball.VX,
		VY:   m.ball.VY,
	}
}

// Banner returns the win announcement, or an empty string while playing.
func (m *Match) Banner() string {
	switch m.winner {
	case SideLeft:
		return BannerLeftWins
	case SideRight:
		return BannerRightWins
	default:
		return ""
	}
}

// State returns the current match phase.
func (m *Match) State() State {
	return m.state
}

// Winner returns the side that won the current round, or SideNone.
func (m *Match) Winner() Side {
	return m.winner
}

// Settings returns the settings the match was created with.
func (m *Match) Settings() Settings {
	return m.settings
}

// Ball returns a copy of the ball state.
func (m *Match) Ball() Ball {
	return *m.ball
}

// Left returns a copy of the left paddle.
func (m *Match) Left() Paddle {
	return *m.left
}

// Right returns a copy of the right paddle.
func (m *Match) Right() Paddle {
	return *m.right
}

// Frames returns the number of frames simulated so far.
func (m *Match) Frames() uint64 {
	return m.frame
}

// Rally returns the number of paddle hits since the last serve.
func (m *Match) Rally() int {
	return m.rally
}
