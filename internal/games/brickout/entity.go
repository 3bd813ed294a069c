package brickout

import (
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/physics"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// RenderHint tells the renderer how to draw an entity.
type RenderHint struct {
	Glyph   rune
	Color   core.Color
	Visible bool
}

// Entity is the capability set shared by everything on the playfield:
// it has bounds the physics world can collide, and it knows how it looks.
// Movement comes from physics.Dynamic for the entities that move on their own.
type Entity interface {
	physics.Body
	RenderHint() RenderHint
}

var (
	_ Entity          = (*Brick)(nil)
	_ Entity          = (*Paddle)(nil)
	_ Entity          = (*Ball)(nil)
	_ physics.Dynamic = (*Ball)(nil)
)
