package brickout

import (
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/physics"
)

// Paddle is the player's horizontal bat. It only moves sideways and stays
// between minX and maxX.
type Paddle struct {
	box          physics.Box
	spawn        physics.Box
	minX, maxX   float64
	inputEnabled bool
	bodyEnabled  bool
}

// NewPaddle creates a paddle at spawn, constrained to [minX, maxX].
func NewPaddle(spawn physics.Box, minX, maxX float64) *Paddle {
	return &Paddle{
		box:          spawn,
		spawn:        spawn,
		minX:         minX,
		maxX:         maxX,
		inputEnabled: true,
		bodyEnabled:  true,
	}
}

// InputCallback centers the paddle under a drag pointer. A ball resting on
// the paddle is carried along. Ignored while input is disabled.
func (p *Paddle) InputCallback(ev core.PointerEvent, ball *Ball) {
	if !p.inputEnabled || !p.bodyEnabled {
		return
	}
	// Center on the middle of the pointer's cell.
	p.moveCenterTo(float64(ev.X)+0.5, ball)
}

// Nudge moves the paddle by dx cells, carrying a resting ball.
func (p *Paddle) Nudge(dx float64, ball *Ball) {
	if !p.inputEnabled || !p.bodyEnabled {
		return
	}
	p.moveCenterTo(p.box.CenterX()+dx, ball)
}

func (p *Paddle) moveCenterTo(cx float64, ball *Ball) {
	p.box.X = core.ClampF(cx-p.box.W/2, p.minX, p.maxX-p.box.W)
	if ball != nil && ball.Resting() {
		ball.follow(p.box)
	}
}

// Reset returns the paddle to its spawn position and size.
func (p *Paddle) Reset() {
	p.box = p.spawn
}

// DisableInput stops the paddle from reacting to input.
func (p *Paddle) DisableInput() {
	p.inputEnabled = false
}

// EnableInput lets the paddle react to input again.
func (p *Paddle) EnableInput() {
	p.inputEnabled = true
}

// InputEnabled reports whether input moves the paddle.
func (p *Paddle) InputEnabled() bool {
	return p.inputEnabled
}

// DisableBody hides the paddle and takes it out of collisions.
func (p *Paddle) DisableBody() {
	p.bodyEnabled = false
}

// X returns the paddle's left edge.
func (p *Paddle) X() float64 {
	return p.box.X
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.box.CenterX()
}

// Bounds implements physics.Body.
func (p *Paddle) Bounds() physics.Box {
	return p.box
}

// Solid implements physics.Body.
func (p *Paddle) Solid() bool {
	return p.bodyEnabled
}

// RenderHint implements Entity.
func (p *Paddle) RenderHint() RenderHint {
	return RenderHint{
		Glyph:   PaddleChar,
		Color:   core.ColorCyan,
		Visible: p.bodyEnabled,
	}
}
