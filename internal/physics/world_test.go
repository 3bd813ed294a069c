package physics

import "testing"

type testBall struct {
	box       Box
	vel       Vec
	solid     bool
	simulated bool
}

func newTestBall(x, y, vx, vy float64) *testBall {
	return &testBall{
		box:       Box{X: x, Y: y, W: 1, H: 1},
		vel:       Vec{X: vx, Y: vy},
		solid:     true,
		simulated: true,
	}
}

func (b *testBall) Bounds() Box { return b.box }
func (b *testBall) Solid() bool { return b.solid }
func (b *testBall) Velocity() Vec { return b.vel }
func (b *testBall) SetVelocity(v Vec) { b.vel = v }
func (b *testBall) UpdatePosition(dx, dy float64) { b.box.X += dx; b.box.Y += dy }
func (b *testBall) Simulated() bool { return b.simulated }

type testBlock struct {
	box   Box
	solid bool
}

func (b *testBlock) Bounds() Box { return b.box }
func (b *testBlock) Solid() bool { return b.solid }

var openBottom = Walls{Left: true, Right: true, Top: true}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 2, 2}, Box{1, 1, 2, 2}, true},
		{"touching horizontally", Box{0, 0, 2, 2}, Box{2, 0, 2, 2}, false},
		{"touching vertically", Box{0, 0, 2, 2}, Box{0, 2, 2, 2}, false},
		{"contained", Box{0, 0, 10, 10}, Box{4, 4, 1, 1}, true},
		{"apart", Box{0, 0, 1, 1}, Box{5, 5, 1, 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestContactSide(t *testing.T) {
	target := Box{X: 10, Y: 10, W: 6, H: 1}

	tests := []struct {
		name  string
		mover Box
		want  Side
	}{
		{"from above", Box{X: 12, Y: 9.6, W: 1, H: 1}, SideTop},
		{"from below", Box{X: 12, Y: 10.6, W: 1, H: 1}, SideBottom},
		{"from left", Box{X: 9.2, Y: 10, W: 1, H: 1}, SideLeft},
		{"from right", Box{X: 15.8, Y: 10, W: 1, H: 1}, SideRight},
		{"no contact", Box{X: 0, Y: 0, W: 1, H: 1}, SideNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContactSide(tc.mover, target); got != tc.want {
				t.Errorf("ContactSide() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestWorldBouncesOffWalls(t *testing.T) {
	w := NewWorld(Box{X: 0, Y: 0, W: 20, H: 20}, openBottom)

	left := newTestBall(0.2, 10, -0.5, 0)
	right := newTestBall(18.9, 10, 0.5, 0)
	top := newTestBall(10, 0.2, 0, -0.5)
	w.Add(left)
	w.Add(right)
	w.Add(top)

	w.Step()

	if left.vel.X <= 0 || left.box.X < 0 {
		t.Errorf("left wall should reflect: pos=%v vel=%v", left.box, left.vel)
	}
	if right.vel.X >= 0 || right.box.Right() > 20 {
		t.Errorf("right wall should reflect: pos=%v vel=%v", right.box, right.vel)
	}
	if top.vel.Y <= 0 || top.box.Y < 0 {
		t.Errorf("top wall should reflect: pos=%v vel=%v", top.box, top.vel)
	}
}

func TestWorldBottomIsOpen(t *testing.T) {
	w := NewWorld(Box{X: 0, Y: 0, W: 20, H: 20}, openBottom)
	ball := newTestBall(10, 19.5, 0, 0.5)
	w.Add(ball)

	w.Step()
	w.Step()

	if ball.vel.Y <= 0 {
		t.Error("ball should keep falling through the open bottom edge")
	}
	if ball.box.Y <= 20 {
		t.Errorf("ball should be below the world, y=%f", ball.box.Y)
	}
}

func TestWorldColliderCallback(t *testing.T) {
	w := NewWorld(Box{X: 0, Y: 0, W: 40, H: 40}, openBottom)
	ball := newTestBall(12, 8.8, 0, 0.5)
	block := &testBlock{box: Box{X: 10, Y: 10, W: 6, H: 1}, solid: true}

	calls := 0
	w.AddCollider(ball, block, func(a Dynamic, b Body) {
		calls++
		if a != ball || b != block {
			t.Error("callback received the wrong bodies")
		}
	})

	for range 4 {
		w.Step()
	}

	if calls != 1 {
		t.Fatalf("expected exactly one collision callback, got %d", calls)
	}
	if ball.vel.Y >= 0 {
		t.Errorf("ball should bounce up off the block, vy=%f", ball.vel.Y)
	}
	if ball.box.Overlaps(block.box) {
		t.Error("ball should be separated from the block")
	}
}

func TestWorldIgnoresNonSolidBodies(t *testing.T) {
	w := NewWorld(Box{X: 0, Y: 0, W: 40, H: 40}, openBottom)
	ball := newTestBall(12, 8.8, 0, 0.5)
	block := &testBlock{box: Box{X: 10, Y: 10, W: 6, H: 1}, solid: false}

	w.AddCollider(ball, block, func(Dynamic, Body) {
		t.Error("non-solid body should not collide")
	})

	for range 6 {
		w.Step()
	}

	if ball.vel.Y <= 0 {
		t.Error("ball should pass through a non-solid body")
	}
}

func TestWorldSkipsUnsimulatedBodies(t *testing.T) {
	w := NewWorld(Box{X: 0, Y: 0, W: 40, H: 40}, openBottom)
	ball := newTestBall(12, 12, 1, 1)
	ball.simulated = false
	w.Add(ball)

	w.Step()

	if ball.box.X != 12 || ball.box.Y != 12 {
		t.Errorf("unsimulated body should not move, got %v", ball.box)
	}
}

func TestWorldFastBallDoesNotTunnel(t *testing.T) {
	w := NewWorld(Box{X: 0, Y: 0, W: 40, H: 40}, openBottom)
	ball := newTestBall(12, 12, 0, -3)
	block := &testBlock{box: Box{X: 10, Y: 9, W: 6, H: 1}, solid: true}

	hit := false
	w.AddCollider(ball, block, func(Dynamic, Body) { hit = true })
	w.Step()

	if !hit {
		t.Fatal("a ball moving three cells per tick should still hit a one-cell block")
	}
	if ball.vel.Y <= 0 {
		t.Errorf("ball should bounce down off the block's underside, vy=%f", ball.vel.Y)
	}
}

func TestWorldAddIsIdempotent(t *testing.T) {
	w := NewWorld(Box{W: 10, H: 10}, openBottom)
	ball := newTestBall(1, 1, 0.25, 0)

	w.Add(ball)
	w.AddCollider(ball, &testBlock{}, nil)
	w.Step()

	if ball.box.X != 1.25 {
		t.Errorf("body should be integrated once per step, x=%f", ball.box.X)
	}
}
