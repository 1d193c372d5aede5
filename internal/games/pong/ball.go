package pong

import "github.com/vovakirdan/pingpong/internal/core"

// Ball is the moving circle. Velocity is in world units per second.
type Ball struct {
	X, Y   float64
	VX, VY float64
	radius float64
}

// NewBall creates a ball. The radius is fixed for the ball's lifetime.
func NewBall(x, y, vx, vy, radius float64) *Ball {
	return &Ball{X: x, Y: y, VX: vx, VY: vy, radius: radius}
}

// Radius returns the ball radius.
func (b *Ball) Radius() float64 {
	return b.radius
}

// Center returns the ball position.
func (b *Ball) Center() core.Vec2 {
	return core.Vec2{X: b.X, Y: b.Y}
}

// Advance moves the ball by its velocity over dt seconds.
func (b *Ball) Advance(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// ReflectOffWalls clamps the ball to the top and bottom walls and flips its
// vertical velocity on contact. Horizontal bounds are not walls.
// Returns true if either wall was hit.
func (b *Ball) ReflectOffWalls(screenH float64) bool {
	bounced := false
	if b.Y < 0 {
		b.Y = 0
		b.VY = -b.VY
		bounced = true
	}
	if b.Y > screenH {
		b.Y = screenH
		b.VY = -b.VY
		bounced = true
	}
	return bounced
}

// Reset centers the ball and serves it down and to the right.
func (b *Ball) Reset(centerX, centerY, initialSpeed float64) {
	b.X = centerX
	b.Y = centerY
	b.VX = initialSpeed
	b.VY = initialSpeed
}
