// Package pong implements a two-player paddle-and-ball match.
// Both paddles are driven by local input; the simulation advances by a
// caller-supplied frame time and has no hidden randomness.
package pong

import "github.com/vovakirdan/pingpong/internal/core"

// BoundsMode selects how a paddle derives its collision rectangle.
type BoundsMode string

const (
	// BoundsFixed uses a 10x100 rectangle centered on the paddle,
	// ignoring the paddle's own width and height.
	BoundsFixed BoundsMode = "fixed"
	// BoundsEntity uses the paddle's own width and height.
	BoundsEntity BoundsMode = "entity"
)

// Collision rectangle size used by BoundsFixed.
const (
	FixedBoundsWidth  = 10.0
	FixedBoundsHeight = 100.0
)

// Default match settings, in world units (pixels) and seconds.
const (
	DefaultScreenW      = 800.0
	DefaultScreenH      = 600.0
	DefaultBallSpeed    = 300.0
	DefaultBallRadius   = 5.0
	DefaultPaddleSpeed  = 500.0
	DefaultPaddleWidth  = 10.0
	DefaultPaddleHeight = 100.0
	DefaultPaddleInset  = 50.0 // Distance of paddle centers from the side edges
	DefaultBounceFactor = 1.1
)

// Settings holds construction-time parameters of a match.
// Sizes and speeds must be positive; the config package validates them.
type Settings struct {
	ScreenW float64
	ScreenH float64

	BallSpeed  float64 // Initial speed on each axis
	BallRadius float64

	PaddleSpeed  float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64
	LeftColor    core.Color
	RightColor   core.Color

	BounceFactor float64 // Horizontal speed multiplier applied on every paddle hit
	Bounds       BoundsMode
}

// DefaultSettings returns the classic 800x600 setup.
func DefaultSettings() Settings {
	return Settings{
		ScreenW:      DefaultScreenW,
		ScreenH:      DefaultScreenH,
		BallSpeed:    DefaultBallSpeed,
		BallRadius:   DefaultBallRadius,
		PaddleSpeed:  DefaultPaddleSpeed,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		PaddleInset:  DefaultPaddleInset,
		LeftColor:    core.ColorRed,
		RightColor:   core.ColorBlue,
		BounceFactor: DefaultBounceFactor,
		Bounds:       BoundsFixed,
	}
}
