package pong

import "github.com/vovakirdan/pingpong/internal/core"

// Side identifies a paddle, and the winner of a round.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns "Left", "Right" or an empty string.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return ""
	}
}

// Paddle is a vertically moving bar. X never changes after construction.
type Paddle struct {
	X, Y   float64
	Speed  float64 // Vertical travel per second
	Width  float64
	Height float64
	Color  core.Color
	Side   Side
	Bounds BoundsMode
}

// NewPaddle creates a paddle centered at (x, y) using fixed collision bounds.
func NewPaddle(side Side, x, y, speed, width, height float64, color core.Color) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Speed:  speed,
		Width:  width,
		Height: height,
		Color:  color,
		Side:   side,
		Bounds: BoundsFixed,
	}
}

// ApplyInput moves the paddle for dt seconds. Up and down together cancel out.
func (p *Paddle) ApplyInput(dt float64, up, down bool) {
	if up {
		p.Y -= p.Speed * dt
	}
	if down {
		p.Y += p.Speed * dt
	}
}

// Clamp keeps the paddle body inside the playfield vertically.
func (p *Paddle) Clamp(screenH float64) {
	half := p.Height / 2
	p.Y = core.ClampF(p.Y, half, screenH-half)
}

// BoundingRect returns the collision rectangle.
// The origin is always offset by the paddle's own half extents; the size
// depends on Bounds.
func (p *Paddle) BoundingRect() core.Rect {
	w, h := FixedBoundsWidth, FixedBoundsHeight
	if p.Bounds == BoundsEntity {
		w, h = p.Width, p.Height
	}
	return core.NewRect(p.X-p.Width/2, p.Y-p.Height/2, w, h)
}

// Body returns the drawn rectangle, centered on the paddle.
func (p *Paddle) Body() core.Rect {
	return core.NewRect(p.X-p.Width/2, p.Y-p.Height/2, p.Width, p.Height)
}
