package pong

import (
	"testing"

	"pgregory.net/rapid"
)

func TestBallAdvance(t *testing.T) {
	b := NewBall(100, 100, 300, -150, 5)
	b.Advance(0.5)

	if b.X != 250 || b.Y != 25 {
		t.Errorf("Advance(0.5) position = (%v, %v), expected (250, 25)", b.X, b.Y)
	}
	if b.VX != 300 || b.VY != -150 {
		t.Errorf("Advance should not change velocity, got (%v, %v)", b.VX, b.VY)
	}
}

func TestBallReflectOffWalls(t *testing.T) {
	tests := []struct {
		name        string
		y, vy       float64
		expectedY   float64
		expectedVY  float64
		expectedHit bool
	}{
		{"above top wall", -3, -50, 0, 50, true},
		{"below bottom wall", 612, 40, 600, -40, true},
		{"inside field", 300, 40, 300, 40, false},
		{"exactly on top wall", 0, -10, 0, -10, false},
		{"exactly on bottom wall", 600, 10, 600, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(400, tc.y, 0, tc.vy, 5)
			hit := b.ReflectOffWalls(600)

			if b.Y != tc.expectedY {
				t.Errorf("Y = %v, expected %v", b.Y, tc.expectedY)
			}
			if b.VY != tc.expectedVY {
				t.Errorf("VY = %v, expected %v", b.VY, tc.expectedVY)
			}
			if hit != tc.expectedHit {
				t.Errorf("ReflectOffWalls() = %v, expected %v", hit, tc.expectedHit)
			}
		})
	}
}

func TestBallReflectIgnoresHorizontalBounds(t *testing.T) {
	b := NewBall(-40, 300, -300, 0, 5)
	b.ReflectOffWalls(600)

	if b.X != -40 || b.VX != -300 {
		t.Errorf("horizontal state should be untouched, got X=%v VX=%v", b.X, b.VX)
	}
}

func TestBallReset(t *testing.T) {
	b := NewBall(-120, 17, -512, 90, 5)
	b.Reset(400, 300, 300)

	if b.X != 400 || b.Y != 300 {
		t.Errorf("Reset position = (%v, %v), expected (400, 300)", b.X, b.Y)
	}
	if b.VX != 300 || b.VY != 300 {
		t.Errorf("Reset velocity = (%v, %v), expected (300, 300)", b.VX, b.VY)
	}
	if b.Radius() != 5 {
		t.Errorf("Reset should keep radius, got %v", b.Radius())
	}
}

func TestBallStaysInsideAfterReflect(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		const screenH = 600.0
		b := NewBall(
			400,
			rapid.Float64Range(0, screenH).Draw(t, "y"),
			rapid.Float64Range(-2000, 2000).Draw(t, "vx"),
			rapid.Float64Range(-2000, 2000).Draw(t, "vy"),
			5,
		)
		dt := rapid.Float64Range(0, 1).Draw(t, "dt")

		b.Advance(dt)
		b.ReflectOffWalls(screenH)

		if b.Y < 0 || b.Y > screenH {
			t.Fatalf("ball y = %v outside [0, %v]", b.Y, screenH)
		}
	})
}
