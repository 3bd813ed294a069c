// Package physics is the small collision world the game runs on: walled
// bounds with an open edge, axis-aligned bodies, and collider callbacks
// invoked after the world has already bounced the moving body.
package physics

// Vec is a 2D vector in world units (screen cells).
type Vec struct {
	X, Y float64
}

// Box is an axis-aligned bounding box; X, Y is the top-left corner.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Overlaps reports whether two boxes share any area. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Body is anything that takes part in collisions.
type Body interface {
	Bounds() Box
	// Solid reports whether the body currently collides at all.
	Solid() bool
}

// Dynamic is a body the world moves by its velocity each step.
type Dynamic interface {
	Body
	Velocity() Vec
	SetVelocity(v Vec)
	// UpdatePosition translates the body by (dx, dy).
	UpdatePosition(dx, dy float64)
	// Simulated reports whether the world should integrate this body.
	Simulated() bool
}

// Side identifies which face of the target a moving body hit.
type Side int

const (
	SideNone   Side = iota
	SideTop         // Mover came from above
	SideBottom      // Mover came from below
	SideLeft        // Mover came from the left
	SideRight       // Mover came from the right
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// ContactSide determines which face of target the mover hit, using the
// smaller overlap axis. Ties resolve vertically.
func ContactSide(mover, target Box) Side {
	if !mover.Overlaps(target) {
		return SideNone
	}

	overlapX := min(mover.Right(), target.Right()) - max(mover.X, target.X)
	overlapY := min(mover.Bottom(), target.Bottom()) - max(mover.Y, target.Y)

	if overlapY <= overlapX {
		if mover.CenterY() < target.CenterY() {
			return SideTop
		}
		return SideBottom
	}
	if mover.CenterX() < target.CenterX() {
		return SideLeft
	}
	return SideRight
}
