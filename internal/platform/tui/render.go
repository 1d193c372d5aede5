package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// Glyphs used when drawing a frame.
const (
	paddleRune = '█'
	ballRune   = '●'
	netRune    = '│'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// viewport scales world coordinates onto the cell grid.
type viewport struct {
	sx, sy float64
}

func newViewport(s *core.Screen, worldW, worldH float64) viewport {
	if worldW <= 0 || worldH <= 0 {
		return viewport{}
	}
	return viewport{
		sx: float64(s.Width()) / worldW,
		sy: float64(s.Height()) / worldH,
	}
}

// cell returns the cell containing the world point p.
func (v viewport) cell(p core.Vec2) (x, y int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y * v.sy))
}

// cells returns the cell span covered by r, at least one cell in each
// direction.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return x0, y0, max(x1-x0, 1), max(y1-y0, 1)
}

// DrawFrame draws a match frame onto s, scaled to fill it.
func DrawFrame(s *core.Screen, f pong.Frame, showFPS bool) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 {
		return
	}
	v := newViewport(s, f.Width, f.Height)

	// Dashed center line
	for y := 0; y < s.Height(); y += 2 {
		s.SetColored(s.Width()/2, y, netRune, core.ColorGray)
	}

	for _, p := range []pong.PaddleView{f.Left, f.Right} {
		x, y, w, h := v.cells(p.Rect)
		s.FillRect(x, y, w, h, paddleRune, p.Color)
	}

	bx, by := v.cell(f.Ball.Center)
	s.SetColored(bx, by, ballRune, core.ColorWhite)

	if showFPS {
		s.DrawTextColored(0, 0, fmt.Sprintf("FPS: %d", int(math.Round(f.FPS))), core.ColorWhite)
	}

	if f.Banner != "" {
		drawBanner(s, f.Banner)
	}
}

// drawBanner draws text in a box centered on the screen.
func drawBanner(s *core.Screen, text string) {
	w := len([]rune(text)) + 4
	h := 3
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, core.ColorYellow)
	s.DrawTextColored(x+2, y+1, text, core.ColorYellow)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
