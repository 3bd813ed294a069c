package brickout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickout/internal/core"
)

// Border characters
const (
	BorderHoriz = '─'
	BorderVert  = '│'
	BorderTL    = '┌'
	BorderTR    = '┐'
)

// Full-size win banner in cells.
const (
	bannerW = 26
	bannerH = 7
)

// Render draws the current game state to the screen.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()

	if s.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", s.minScreenW, s.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	s.renderHUD(dst)
	s.renderWalls(dst)

	for _, brick := range s.bricks {
		s.renderBrick(dst, brick)
	}
	renderBox(dst, s.paddle)
	s.renderBall(dst)

	s.renderOverlay(dst)
}

// renderHUD draws the score above the playfield, and lives plus the
// control hint below it.
func (s *Scene) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.round.Score))
	dst.DrawTextCentered(0, s.Title())

	bottom := dst.Height() - 1
	dst.DrawText(1, bottom, fmt.Sprintf("Lives: %d", s.round.Lives))

	var hint string
	switch {
	case s.round.Phase == PhaseWon:
		hint = "r: play again"
	case s.round.Phase == PhaseLost:
		hint = "click or space to continue"
	case s.ball.Resting():
		hint = "click or space to launch"
	}
	if hint != "" {
		dst.DrawTextColored((dst.Width()-len(hint))/2, bottom, hint, core.ColorGray)
	}
}

// renderWalls draws the ceiling and side walls. The floor stays open.
func (s *Scene) renderWalls(dst *core.Screen) {
	top := int(s.field.Y) - 1
	left := int(s.field.X) - 1
	right := int(s.field.Right())

	dst.SetColored(left, top, BorderTL, core.ColorGray)
	dst.SetColored(right, top, BorderTR, core.ColorGray)
	dst.DrawHLine(left+1, top, right-left-1, BorderHoriz, core.ColorGray)

	for y := int(s.field.Y); y < int(s.field.Bottom()); y++ {
		dst.SetColored(left, y, BorderVert, core.ColorGray)
		dst.SetColored(right, y, BorderVert, core.ColorGray)
	}
}

// renderBrick leaves a one-cell gap on the right so neighbours stay
// distinguishable.
func (s *Scene) renderBrick(dst *core.Screen, b *Brick) {
	hint := b.RenderHint()
	if !hint.Visible {
		return
	}
	box := b.Bounds()
	w := int(box.W)
	if w >= 3 {
		w--
	}
	dst.DrawHLine(int(box.X), int(box.Y), w, hint.Glyph, hint.Color)
}

func (s *Scene) renderBall(dst *core.Screen) {
	hint := s.ball.RenderHint()
	if !hint.Visible {
		return
	}
	box := s.ball.Bounds()
	x := int(math.Floor(box.CenterX()))
	y := int(math.Floor(box.CenterY()))
	if y >= int(s.field.Bottom()) {
		return
	}
	dst.SetColored(x, y, hint.Glyph, hint.Color)
}

// renderBox fills every cell an entity's bounds cover.
func renderBox(dst *core.Screen, e Entity) {
	hint := e.RenderHint()
	if !hint.Visible {
		return
	}
	box := e.Bounds()
	r := core.NewRect(
		int(math.Floor(box.X)),
		int(math.Floor(box.Y)),
		int(math.Round(box.W)),
		int(math.Round(box.H)),
	)
	dst.DrawRect(r, hint.Glyph, hint.Color)
}

func (s *Scene) renderOverlay(dst *core.Screen) {
	switch {
	case s.round.Phase == PhaseWon:
		s.renderWinBanner(dst)
	case s.round.Phase == PhaseLost:
		lines := []string{
			"YOU LOSE",
			fmt.Sprintf("Score: %d", s.round.Score),
		}
		drawPanel(dst, bannerW, len(lines)+4, lines, core.ColorRed)
	case s.paused:
		drawPanel(dst, bannerW, 5, []string{"PAUSED"}, core.ColorYellow)
	}
}

// renderWinBanner draws the win box at its current spring scale. The text
// appears once the box is big enough to hold it.
func (s *Scene) renderWinBanner(dst *core.Screen) {
	scale := s.banner.Scale()
	w := int(math.Round(bannerW * scale))
	h := int(math.Round(bannerH * scale))
	if w < 2 || h < 2 {
		return
	}

	lines := []string{
		"YOU WIN!",
		fmt.Sprintf("Score: %d", s.round.Score),
		fmt.Sprintf("Lives left: %d", s.round.Lives),
	}
	if h < len(lines)+2 || w < longest(lines)+2 {
		lines = nil
	}
	drawPanel(dst, w, h, lines, core.ColorGreen)
}

// drawPanel draws a cleared, centered box with lines centered inside it.
func drawPanel(dst *core.Screen, w, h int, lines []string, c core.Color) {
	w = min(w, dst.Width())
	h = min(h, dst.Height())
	r := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, h)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)

	top := r.Y + (r.H-len(lines))/2
	for i, line := range lines {
		x := r.X + (r.W-len([]rune(line)))/2
		dst.DrawTextColored(x, top+i, line, c)
	}
}

func longest(lines []string) int {
	n := 0
	for _, l := range lines {
		n = max(n, len([]rune(l)))
	}
	return n
}
