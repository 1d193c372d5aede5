package tui

import "time"

// fpsSmoothing is the weight of the newest sample in the FPS average.
const fpsSmoothing = 0.1

// Clock turns tick timestamps into frame deltas and tracks a smoothed
// frame rate for display.
type Clock struct {
	nominal time.Duration // Delta reported for the first tick
	maxStep time.Duration
	last    time.Time
	fps     float64
}

// NewClock creates a clock for the given tick rate. Deltas longer than
// maxStep are clamped; zero disables clamping.
func NewClock(tickRate int, maxStep time.Duration) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{
		nominal: time.Second / time.Duration(tickRate),
		maxStep: maxStep,
	}
}

// Tick records a frame at now and returns the elapsed time in seconds.
func (c *Clock) Tick(now time.Time) float64 {
	step := c.nominal
	if !c.last.IsZero() {
		step = now.Sub(c.last)
	}
	c.last = now

	if step < 0 {
		step = 0
	}
	if c.maxStep > 0 && step > c.maxStep {
		step = c.maxStep
	}

	if step > 0 {
		sample := float64(time.Second) / float64(step)
		if c.fps == 0 {
			c.fps = sample
		} else {
			c.fps += (sample - c.fps) * fpsSmoothing
		}
	}
	return step.Seconds()
}

// FPS returns the smoothed frame rate.
func (c *Clock) FPS() float64 {
	return c.fps
}

// Reset forgets the last tick, so the next delta is nominal again.
// Used after a pause.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
