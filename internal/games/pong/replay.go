package pong

import "github.com/vovakirdan/pingpong/internal/core"

// RecordedFrame is one simulated frame: its duration and the input seen.
type RecordedFrame struct {
	DT    float64
	Input core.InputFrame
}

// Recorder collects the frames fed to a match so the run can be replayed.
type Recorder struct {
	frames []RecordedFrame
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a frame.
func (r *Recorder) Record(dt float64, in core.InputFrame) {
	r.frames = append(r.frames, RecordedFrame{DT: dt, Input: in})
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Frames returns a copy of the recorded frames.
func (r *Recorder) Frames() []RecordedFrame {
	out := make([]RecordedFrame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Simulate replays frames against a fresh match and returns it.
func Simulate(s Settings, frames []RecordedFrame) *Match {
	m := NewMatch(s)
	for _, f := range frames {
		m.Update(f.Input, f.DT)
	}
	return m
}
