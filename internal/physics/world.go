package physics

import "math"

// maxSubstep bounds how far a body may travel in one integration substep,
// so a fast ball cannot tunnel through a one-cell brick.
const maxSubstep = 0.5

// Walls selects which edges of the world bounds reflect bodies.
type Walls struct {
	Left, Right, Top, Bottom bool
}

// CollideFunc is invoked after the world has separated and bounced a.
type CollideFunc func(a Dynamic, b Body)

type collider struct {
	a  Dynamic
	b  Body
	fn CollideFunc
}

// World integrates dynamic bodies and dispatches collider callbacks.
type World struct {
	bounds    Box
	walls     Walls
	bodies    []Dynamic
	colliders []collider
}

// NewWorld creates a world with the given bounds and walled edges.
func NewWorld(bounds Box, walls Walls) *World {
	return &World{bounds: bounds, walls: walls}
}

// Bounds returns the world bounds.
func (w *World) Bounds() Box {
	return w.bounds
}

// Add registers a dynamic body for integration.
func (w *World) Add(d Dynamic) {
	for _, existing := range w.bodies {
		if existing == d {
			return
		}
	}
	w.bodies = append(w.bodies, d)
}

// AddCollider registers a collision pair. The dynamic body is added to the
// world if it is not already. fn may be nil.
func (w *World) AddCollider(a Dynamic, b Body, fn CollideFunc) {
	w.Add(a)
	w.colliders = append(w.colliders, collider{a: a, b: b, fn: fn})
}

// Step advances every simulated body by one tick.
func (w *World) Step() {
	for _, d := range w.bodies {
		if d.Simulated() {
			w.integrate(d)
		}
	}
}

func (w *World) integrate(d Dynamic) {
	v := d.Velocity()
	dist := math.Max(math.Abs(v.X), math.Abs(v.Y))
	if dist == 0 {
		return
	}

	steps := int(math.Ceil(dist / maxSubstep))
	for range steps {
		v = d.Velocity()
		d.UpdatePosition(v.X/float64(steps), v.Y/float64(steps))
		w.collideWalls(d)
		if w.collideBodies(d) {
			// Velocity changed; finish the tick on the new heading next frame.
			return
		}
		if !d.Simulated() {
			return
		}
	}
}

func (w *World) collideWalls(d Dynamic) {
	b := d.Bounds()
	v := d.Velocity()

	if w.walls.Left && b.X < w.bounds.X {
		d.UpdatePosition(w.bounds.X-b.X, 0)
		v.X = math.Abs(v.X)
	}
	if w.walls.Right && b.Right() > w.bounds.Right() {
		d.UpdatePosition(w.bounds.Right()-b.Right(), 0)
		v.X = -math.Abs(v.X)
	}
	if w.walls.Top && b.Y < w.bounds.Y {
		d.UpdatePosition(0, w.bounds.Y-b.Y)
		v.Y = math.Abs(v.Y)
	}
	if w.walls.Bottom && b.Bottom() > w.bounds.Bottom() {
		d.UpdatePosition(0, w.bounds.Bottom()-b.Bottom())
		v.Y = -math.Abs(v.Y)
	}

	d.SetVelocity(v)
}

// collideBodies resolves the first overlapping collider of d.
func (w *World) collideBodies(d Dynamic) bool {
	for _, c := range w.colliders {
		if c.a != d || !d.Solid() || !c.b.Solid() {
			continue
		}

		side := ContactSide(d.Bounds(), c.b.Bounds())
		if side == SideNone {
			continue
		}

		Separate(d, c.b.Bounds(), side)
		if c.fn != nil {
			c.fn(d, c.b)
		}
		return true
	}
	return false
}

// Separate pushes d out of target along side and reflects its velocity.
func Separate(d Dynamic, target Box, side Side) {
	b := d.Bounds()
	v := d.Velocity()

	switch side {
	case SideTop:
		d.UpdatePosition(0, target.Y-b.Bottom())
		v.Y = -math.Abs(v.Y)
	case SideBottom:
		d.UpdatePosition(0, target.Bottom()-b.Y)
		v.Y = math.Abs(v.Y)
	case SideLeft:
		d.UpdatePosition(target.X-b.Right(), 0)
		v.X = -math.Abs(v.X)
	case SideRight:
		d.UpdatePosition(target.Right()-b.X, 0)
		v.X = math.Abs(v.X)
	}

	d.SetVelocity(v)
}
