package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

func testFrame() pong.Frame {
	return pong.NewMatch(pong.DefaultSettings()).Frame(60)
}

func TestDrawFrameProjectsEntities(t *testing.T) {
	s := core.NewScreen(80, 24)
	DrawFrame(s, testFrame(), false)

	// Left paddle spans x 45..55, y 250..350 in an 800x600 world.
	for y := 10; y < 14; y++ {
		for x := 4; x < 6; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != paddleRune || cell.Color != core.ColorRed {
				t.Errorf("cell (%d, %d) = %q/%v, expected red paddle", x, y, cell.Rune, cell.Color)
			}
		}
	}
	if s.Get(4, 9) == paddleRune || s.Get(4, 14) == paddleRune {
		t.Error("left paddle drawn outside its rows")
	}

	if cell := s.GetCell(74, 12); cell.Rune != paddleRune || cell.Color != core.ColorBlue {
		t.Errorf("right paddle cell = %q/%v, expected blue paddle", cell.Rune, cell.Color)
	}

	if cell := s.GetCell(40, 12); cell.Rune != ballRune || cell.Color != core.ColorWhite {
		t.Errorf("ball cell = %q/%v, expected white ball", cell.Rune, cell.Color)
	}
}

func TestDrawFrameNet(t *testing.T) {
	s := core.NewScreen(80, 24)
	f := testFrame()
	f.Ball.Center = core.Vec2{X: 100, Y: 100}
	DrawFrame(s, f, false)

	if s.GetCell(40, 0).Rune != netRune || s.GetCell(40, 0).Color != core.ColorGray {
		t.Error("expected gray net at the top of the center column")
	}
	if s.Get(40, 1) != ' ' {
		t.Error("net should be dashed")
	}
}

func TestDrawFrameFPS(t *testing.T) {
	s := core.NewScreen(80, 24)
	f := testFrame()
	f.FPS = 59.6

	DrawFrame(s, f, true)
	if !strings.HasPrefix(s.Row(0), "FPS: 60") {
		t.Errorf("row 0 = %q, expected FPS in the top-left corner", s.Row(0))
	}

	DrawFrame(s, f, false)
	if strings.Contains(s.Row(0), "FPS") {
		t.Error("FPS drawn while disabled")
	}
}

func TestDrawFrameBanner(t *testing.T) {
	s := core.NewScreen(80, 24)
	f := testFrame()
	f.Banner = pong.BannerRightWins
	f.Ball.Center = core.Vec2{X: -20, Y: 300}

	DrawFrame(s, f, false)

	found := false
	for y := range s.Height() {
		if strings.Contains(s.Row(y), pong.BannerRightWins) {
			found = true
			row := s.Row(y)
			x := utf8.RuneCountInString(row[:strings.Index(row, "R")])
			if s.GetCell(x, y).Color != core.ColorYellow {
				t.Error("banner should be yellow")
			}
		}
	}
	if !found {
		t.Errorf("banner %q not drawn", pong.BannerRightWins)
	}
}

func TestDrawFrameBallOffScreen(t *testing.T) {
	s := core.NewScreen(80, 24)
	f := testFrame()
	f.Ball.Center = core.Vec2{X: -5000, Y: 300}

	DrawFrame(s, f, false)

	for y := range s.Height() {
		if strings.ContainsRune(s.Row(y), ballRune) {
			t.Fatal("off-screen ball should not be drawn")
		}
	}
}

func TestDrawFrameEmptyScreen(t *testing.T) {
	s := core.NewScreen(0, 0)
	DrawFrame(s, testFrame(), true)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should join rows with one newline, got %q", out)
	}
}
