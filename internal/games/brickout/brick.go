package brickout

import "github.com/vovakirdan/brickout/internal/physics"

// Brick is a destructible scoring unit. Bricks are never removed from the
// scene; a dead brick is hidden and stops colliding until Reset.
type Brick struct {
	box           physics.Box
	colour        Colour // Tier currently shown
	initialColour Colour
	hits          int // Hits left
	points        int // Awarded per hit
}

// NewBrick creates a brick at full durability for its colour.
func NewBrick(box physics.Box, colour Colour, points int) *Brick {
	return &Brick{
		box:           box,
		colour:        colour,
		initialColour: colour,
		hits:          colour.Durability(),
		points:        points,
	}
}

// Hit takes one point of durability and returns the points awarded.
// The brick drops to the tier matching its remaining hits.
// Hitting a dead brick awards nothing.
func (b *Brick) Hit() int {
	if b.hits == 0 {
		return 0
	}
	b.hits--
	if b.hits > 0 {
		b.colour = colourForHits(b.hits)
	}
	return b.points
}

// IsDead reports whether the brick has no durability left.
func (b *Brick) IsDead() bool {
	return b.hits == 0
}

// Reset restores the brick's durability, tier and visibility.
func (b *Brick) Reset() {
	b.colour = b.initialColour
	b.hits = b.initialColour.Durability()
}

// Colour returns the tier the brick currently shows.
func (b *Brick) Colour() Colour {
	return b.colour
}

// InitialColour returns the tier the brick was created with.
func (b *Brick) InitialColour() Colour {
	return b.initialColour
}

// Hits returns the remaining durability.
func (b *Brick) Hits() int {
	return b.hits
}

// Bounds implements physics.Body.
func (b *Brick) Bounds() physics.Box {
	return b.box
}

// Solid implements physics.Body; dead bricks let the ball through.
func (b *Brick) Solid() bool {
	return !b.IsDead()
}

// RenderHint implements Entity.
func (b *Brick) RenderHint() RenderHint {
	return RenderHint{
		Glyph:   b.colour.glyph(),
		Color:   b.colour.screenColor(),
		Visible: !b.IsDead(),
	}
}
