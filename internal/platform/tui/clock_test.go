package tui

import (
	"math"
	"testing"
	"time"
)

func TestClockFirstTickIsNominal(t *testing.T) {
	c := NewClock(50, 100*time.Millisecond)

	dt := c.Tick(time.Unix(100, 0))
	if dt != 0.02 {
		t.Errorf("first Tick() = %v, expected 0.02", dt)
	}
}

func TestClockMeasuresElapsed(t *testing.T) {
	c := NewClock(60, 100*time.Millisecond)
	start := time.Unix(100, 0)

	c.Tick(start)
	dt := c.Tick(start.Add(25 * time.Millisecond))

	if math.Abs(dt-0.025) > 1e-12 {
		t.Errorf("Tick() = %v, expected 0.025", dt)
	}
}

func TestClockClampsLongSteps(t *testing.T) {
	tests := []struct {
		name     string
		gap      time.Duration
		maxStep  time.Duration
		expected float64
	}{
		{"clamped", 2 * time.Second, 100 * time.Millisecond, 0.1},
		{"no clamp", 2 * time.Second, 0, 2},
		{"backwards", -time.Second, 100 * time.Millisecond, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClock(60, tc.maxStep)
			start := time.Unix(100, 0)
			c.Tick(start)

			dt := c.Tick(start.Add(tc.gap))
			if math.Abs(dt-tc.expected) > 1e-12 {
				t.Errorf("Tick() = %v, expected %v", dt, tc.expected)
			}
		})
	}
}

func TestClockFPSConverges(t *testing.T) {
	c := NewClock(60, 0)
	now := time.Unix(100, 0)

	for range 200 {
		now = now.Add(20 * time.Millisecond)
		c.Tick(now)
	}

	if math.Abs(c.FPS()-50) > 0.5 {
		t.Errorf("FPS() = %v, expected about 50", c.FPS())
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(60, 0)
	start := time.Unix(100, 0)
	c.Tick(start)
	c.Reset()

	dt := c.Tick(start.Add(10 * time.Second))
	if math.Abs(dt-1.0/60.0) > 1e-9 {
		t.Errorf("Tick() after Reset = %v, expected nominal %v", dt, 1.0/60.0)
	}
}
