package brickout

import (
	"math"

	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/physics"
)

// cellAspect scales vertical speed: terminal cells are about twice as tall
// as they are wide, so equal cell speeds look twice as fast vertically.
const cellAspect = 0.5

// Ball is the projectile. While resting it sits on the paddle and is not
// simulated; once launched the physics world moves it.
type Ball struct {
	box         physics.Box
	vel         physics.Vec
	speed       float64 // Cells per tick
	maxAngle    float64 // Radians from vertical at the paddle edge
	launchAngle float64 // Radians from vertical when served
	resting     bool
	disabled    bool
}

// NewBall creates a resting ball of the given size. Angles are in degrees.
func NewBall(size, speed, maxBounceDeg, launchDeg float64) *Ball {
	return &Ball{
		box:         physics.Box{W: size, H: size},
		speed:       speed,
		maxAngle:    maxBounceDeg * math.Pi / 180,
		launchAngle: launchDeg * math.Pi / 180,
		resting:     true,
	}
}

// OutOfBounds reports whether the ball has fallen completely below the
// playfield. The bottom is the only edge without a wall.
func (b *Ball) OutOfBounds(field physics.Box) bool {
	return b.box.Y >= field.Bottom()
}

// Hit redirects the ball off the paddle. The contact offset from the
// paddle center, normalized to [-1, 1], sets the angle from vertical up to
// maxAngle; the ball always leaves upward at its configured speed.
func (b *Ball) Hit(paddle physics.Box) {
	offset := 0.0
	if paddle.W > 0 {
		offset = (b.box.CenterX() - paddle.CenterX()) / (paddle.W / 2)
	}
	offset = core.ClampF(offset, -1, 1)

	b.setHeading(offset * b.maxAngle)

	if b.box.Bottom() > paddle.Y {
		b.box.Y = paddle.Y - b.box.H
	}
}

// Launch sends a resting ball upward. Returns false if the ball was not resting.
func (b *Ball) Launch() bool {
	if !b.resting || b.disabled {
		return false
	}
	b.resting = false
	b.setHeading(b.launchAngle)
	return true
}

func (b *Ball) setHeading(angle float64) {
	b.vel = physics.Vec{
		X: b.speed * math.Sin(angle),
		Y: -b.speed * math.Cos(angle) * cellAspect,
	}
}

// Reset puts the ball back on top of the paddle, at rest, awaiting launch.
func (b *Ball) Reset(paddle physics.Box) {
	b.resting = true
	b.disabled = false
	b.vel = physics.Vec{}
	b.follow(paddle)
}

func (b *Ball) follow(paddle physics.Box) {
	b.box.X = paddle.CenterX() - b.box.W/2
	b.box.Y = paddle.Y - b.box.H
}

// Disable halts the ball for good.
func (b *Ball) Disable() {
	b.disabled = true
	b.vel = physics.Vec{}
}

// Resting reports whether the ball is sitting on the paddle.
func (b *Ball) Resting() bool {
	return b.resting
}

// Disabled reports whether the ball has been halted.
func (b *Ball) Disabled() bool {
	return b.disabled
}

// Bounds implements physics.Body.
func (b *Ball) Bounds() physics.Box {
	return b.box
}

// Solid implements physics.Body.
func (b *Ball) Solid() bool {
	return !b.disabled
}

// Velocity implements physics.Dynamic.
func (b *Ball) Velocity() physics.Vec {
	return b.vel
}

// SetVelocity implements physics.Dynamic.
func (b *Ball) SetVelocity(v physics.Vec) {
	b.vel = v
}

// UpdatePosition implements physics.Dynamic.
func (b *Ball) UpdatePosition(dx, dy float64) {
	b.box.X += dx
	b.box.Y += dy
}

// Simulated implements physics.Dynamic.
func (b *Ball) Simulated() bool {
	return !b.resting && !b.disabled
}

// RenderHint implements Entity.
func (b *Ball) RenderHint() RenderHint {
	return RenderHint{
		Glyph:   BallChar,
		Color:   core.ColorWhite,
		Visible: !b.disabled,
	}
}
