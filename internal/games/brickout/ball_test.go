package brickout

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickout/internal/physics"
)

func testPaddleBox() physics.Box {
	return physics.Box{X: 20, Y: 20, W: 10, H: 1}
}

// speedOf undoes the vertical cell-aspect scaling.
func speedOf(v physics.Vec) float64 {
	return math.Hypot(v.X, v.Y/cellAspect)
}

func TestBallHitAlwaysGoesUp(t *testing.T) {
	paddle := testPaddleBox()

	// From far left of the paddle to far right of it, including outside.
	for x := paddle.X - 3; x <= paddle.Right()+3; x += 0.25 {
		ball := NewBall(1, 0.3, 60, 20)
		ball.Launch()
		ball.box = physics.Box{X: x, Y: paddle.Y - 0.5, W: 1, H: 1}
		ball.vel = physics.Vec{X: 0.1, Y: 0.2}

		ball.Hit(paddle)

		if ball.vel.Y >= 0 {
			t.Errorf("x=%v: ball moving down after paddle hit (vy=%v)", x, ball.vel.Y)
		}
		if math.Abs(speedOf(ball.vel)-0.3) > 1e-9 {
			t.Errorf("x=%v: speed = %v, want 0.3", x, speedOf(ball.vel))
		}
		if ball.box.Bottom() > paddle.Y {
			t.Errorf("x=%v: ball left overlapping the paddle", x)
		}
	}
}

func TestBallHitAngleFollowsOffset(t *testing.T) {
	paddle := testPaddleBox()
	hitAt := func(centerX float64) physics.Vec {
		ball := NewBall(1, 0.3, 60, 20)
		ball.box = physics.Box{X: centerX - 0.5, Y: paddle.Y - 1, W: 1, H: 1}
		ball.Hit(paddle)
		return ball.vel
	}

	if v := hitAt(paddle.CenterX()); math.Abs(v.X) > 1e-9 {
		t.Errorf("center hit vx = %v, want 0", v.X)
	}
	if v := hitAt(paddle.X + 1); v.X >= 0 {
		t.Errorf("left-side hit vx = %v, want negative", v.X)
	}
	if v := hitAt(paddle.Right() - 1); v.X <= 0 {
		t.Errorf("right-side hit vx = %v, want positive", v.X)
	}

	near := hitAt(paddle.CenterX() + 1)
	far := hitAt(paddle.CenterX() + 4)
	if far.X <= near.X {
		t.Errorf("further offset should angle more: near vx=%v far vx=%v", near.X, far.X)
	}

	// Offsets past the edge clamp to the maximum angle.
	edge := hitAt(paddle.Right())
	beyond := hitAt(paddle.Right() + 5)
	if math.Abs(edge.X-beyond.X) > 1e-9 || math.Abs(edge.Y-beyond.Y) > 1e-9 {
		t.Errorf("offset not clamped: edge=%v beyond=%v", edge, beyond)
	}
	wantVX := 0.3 * math.Sin(60*math.Pi/180)
	if math.Abs(edge.X-wantVX) > 1e-9 {
		t.Errorf("edge vx = %v, want %v", edge.X, wantVX)
	}
}

func TestBallOutOfBounds(t *testing.T) {
	field := physics.Box{X: 1, Y: 2, W: 78, H: 21}
	ball := NewBall(1, 0.3, 60, 20)

	ball.box.Y = field.Bottom() - 0.5
	if ball.OutOfBounds(field) {
		t.Error("ball straddling the floor should still be in bounds")
	}
	ball.box.Y = field.Bottom()
	if !ball.OutOfBounds(field) {
		t.Error("ball below the floor should be out of bounds")
	}
}

func TestBallLaunchAndReset(t *testing.T) {
	paddle := testPaddleBox()
	ball := NewBall(1, 0.3, 60, 20)
	ball.Reset(paddle)

	if !ball.Resting() || ball.Simulated() {
		t.Fatal("reset ball should rest on the paddle")
	}
	if ball.Bounds().Bottom() != paddle.Y {
		t.Errorf("ball bottom = %v, want paddle top %v", ball.Bounds().Bottom(), paddle.Y)
	}
	if ball.Bounds().CenterX() != paddle.CenterX() {
		t.Errorf("ball center = %v, want %v", ball.Bounds().CenterX(), paddle.CenterX())
	}

	if !ball.Launch() {
		t.Fatal("launch from rest failed")
	}
	if ball.Launch() {
		t.Error("second launch should be refused")
	}
	if ball.Velocity().Y >= 0 {
		t.Errorf("launched ball vy = %v, want negative", ball.Velocity().Y)
	}
	if !ball.Simulated() {
		t.Error("launched ball should be simulated")
	}

	ball.Reset(paddle)
	if ball.Velocity() != (physics.Vec{}) {
		t.Errorf("reset velocity = %v, want zero", ball.Velocity())
	}
}

func TestBallDisable(t *testing.T) {
	ball := NewBall(1, 0.3, 60, 20)
	ball.Reset(testPaddleBox())
	ball.Launch()

	ball.Disable()

	if ball.Simulated() || ball.Solid() || ball.RenderHint().Visible {
		t.Error("disabled ball should not simulate, collide or draw")
	}
	if ball.Velocity() != (physics.Vec{}) {
		t.Errorf("disabled velocity = %v, want zero", ball.Velocity())
	}
	if ball.Launch() {
		t.Error("disabled ball should not launch")
	}
}
