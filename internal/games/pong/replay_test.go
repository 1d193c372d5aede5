package pong

import (
	"testing"

	"github.com/vovakirdan/pingpong/internal/core"
)

func TestRecorderFramesIsCopy(t *testing.T) {
	r := NewRecorder()
	r.Record(frameDT, held(core.ActionLeftUp))
	r.Record(frameDT, core.NewInputFrame())

	frames := r.Frames()
	if len(frames) != 2 || r.Len() != 2 {
		t.Fatalf("Len() = %d, len(Frames()) = %d, expected 2", r.Len(), len(frames))
	}

	frames[0].DT = 99
	if r.Frames()[0].DT != frameDT {
		t.Error("Frames() should return a copy")
	}
}

func TestSimulateMatchesLiveRun(t *testing.T) {
	live := NewMatch(DefaultSettings())
	rec := NewRecorder()

	for i := range 1500 {
		in := core.NewInputFrame()
		if i%50 < 20 {
			in.SetHeld(core.ActionRightUp)
		}
		if i%70 > 40 {
			in.SetHeld(core.ActionLeftDown)
		}
		if i%300 == 0 {
			in.SetPressed(core.ActionServe)
		}
		dt := frameDT
		if i%7 == 0 {
			dt = 1.0 / 45.0
		}

		rec.Record(dt, in)
		live.Update(in, dt)
	}

	replayed := Simulate(DefaultSettings(), rec.Frames())

	if replayed.Snapshot() != live.Snapshot() {
		t.Errorf("replay diverged:\nlive   %+v\nreplay %+v", live.Snapshot(), replayed.Snapshot())
	}
	if replayed.Snapshot().Hash() != live.Snapshot().Hash() {
		t.Errorf("Hash() = %d, expected %d", replayed.Snapshot().Hash(), live.Snapshot().Hash())
	}
	if replayed.Banner() != live.Banner() {
		t.Errorf("Banner() = %q, expected %q", replayed.Banner(), live.Banner())
	}
}

func TestSimulateRoundTripsThroughBits(t *testing.T) {
	rec := NewRecorder()
	for i := range 400 {
		in := core.NewInputFrame()
		if i%3 == 0 {
			in.SetHeld(core.ActionLeftUp)
		}
		if i == 250 {
			in.SetPressed(core.ActionServe)
		}
		rec.Record(frameDT, in)
	}

	// Frames as they come back from storage.
	restored := make([]RecordedFrame, 0, rec.Len())
	for _, f := range rec.Frames() {
		h, p := f.Input.Bits()
		restored = append(restored, RecordedFrame{DT: f.DT, Input: core.FrameFromBits(h, p)})
	}

	a := Simulate(DefaultSettings(), rec.Frames()).Snapshot().Hash()
	b := Simulate(DefaultSettings(), restored).Snapshot().Hash()
	if a != b {
		t.Errorf("hash after bits round trip = %d, expected %d", b, a)
	}
}

func TestSimulateEmpty(t *testing.T) {
	m := Simulate(DefaultSettings(), nil)
	if m.Frames() != 0 {
		t.Errorf("Frames() = %d, expected 0", m.Frames())
	}
	if m.Snapshot() != NewMatch(DefaultSettings()).Snapshot() {
		t.Error("empty replay should equal a fresh match")
	}
}
