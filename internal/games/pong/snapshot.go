package pong

import "math"

// Snapshot contains the complete mutable state of a match.
// Used to compare a live run against its replay.
type Snapshot struct {
	Frame  uint64
	BallX  float64
	BallY  float64
	BallVX float64
	BallVY float64
	LeftY  float64
	RightY float64
	State  State
	Winner Side
	Rally  int
}

// Snapshot returns the current match state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Frame:  m.frame,
		BallX:  m.ball.X,
		BallY:  m.ball.Y,
		BallVX: m.ball.VX,
		BallVY: m.ball.VY,
		LeftY:  m.left.Y,
		RightY: m.right.Y,
		State:  m.state,
		Winner: m.winner,
		Rally:  m.rally,
	}
}

// Hash returns a digest of the snapshot. Floats are hashed by their exact
// bit patterns, so any divergence in trajectory changes the hash.
func (snap Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.LeftY, snap.RightY} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.State)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rally)  //#nosec G115 -- hash computation
	return h
}
