package pong

import "github.com/vovakirdan/pingpong/internal/core"

// PaddleView is what the renderer needs to draw one paddle.
type PaddleView struct {
	Side   Side
	Rect   core.Rect // Drawn body
	Bounds core.Rect // Collision rectangle
	Color  core.Color
}

// BallView is what the renderer needs to draw the ball.
type BallView struct {
	Center core.Vec2
	Radius float64
}

// Frame is the per-frame render contract: plain data, no drawing.
type Frame struct {
	Width  float64 // World size
	Height float64
	Left   PaddleView
	Right  PaddleView
	Ball   BallView
	Banner string  // Empty while playing
	FPS    float64 // Measured by the platform, passed through for display
}

// Frame returns the data needed to draw the current state.
func (m *Match) Frame(fps float64) Frame {
	return Frame{
		Width:  m.settings.ScreenW,
		Height: m.settings.ScreenH,
		Left:   paddleView(m.left),
		Right:  paddleView(m.right),
		Ball: BallView{
			Center: m.ball.Center(),
			Radius: m.ball.Radius(),
		},
		Banner: m.Banner(),
		FPS:    fps,
	}
}

func paddleView(p *Paddle) PaddleView {
	return PaddleView{
		Side:   p.Side,
		Rect:   p.Body(),
		Bounds: p.BoundingRect(),
		Color:  p.Color,
	}
}
