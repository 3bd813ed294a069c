// Package brickout implements the brick-breaking game: bricks, paddle and
// ball entities on a small physics world, and the round state machine that
// turns collisions into score, lives and win/lose transitions.
package brickout

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/physics"
)

const ballSize = 1

// Scene owns every entity, wires collisions, and drives the round.
type Scene struct {
	cfg    config.BrickoutConfig
	logger *log.Logger

	runtime core.RuntimeConfig
	rng     *rand.Rand

	field  physics.Box // Walled playfield; the bottom edge is open
	world  *physics.World
	bricks []*Brick
	paddle *Paddle
	ball   *Ball

	round  Round
	paused bool
	tick   int
	banner banner

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// Option configures a Scene.
type Option func(*Scene)

// WithConfig sets the game configuration.
func WithConfig(cfg config.BrickoutConfig) Option {
	return func(s *Scene) {
		s.cfg = cfg
	}
}

// WithLogger sets the logger round transitions are reported to.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a scene. Call Reset before stepping it.
func New(opts ...Option) *Scene {
	s := &Scene{
		cfg:    config.DefaultBrickoutConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the unique identifier for this game.
func (s *Scene) ID() string {
	return "brickout"
}

// Title returns the display name for this game.
func (s *Scene) Title() string {
	return "Brickout"
}

// Reset builds a fresh round for the given screen.
func (s *Scene) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime
	s.rng = rand.New(rand.NewPCG(uint64(runtime.Seed), uint64(runtime.Seed)>>1|1)) //#nosec G115 -- seed bits are reinterpreted, not range-checked
	s.round = NewRound(s.cfg.Gameplay.Lives)
	s.paused = false
	s.tick = 0
	s.banner = newBanner(runtime.TickRate, s.cfg.WinAnimation)

	// HUD row, top wall row, lives row.
	s.minScreenW = s.cfg.Bricks.Columns*2 + 2
	s.minScreenH = 3 + s.cfg.Bricks.TopOffset + s.cfg.Bricks.Rows + 4 + s.cfg.Paddle.BottomOffset + 1
	s.screenTooSmall = runtime.ScreenW < s.minScreenW || runtime.ScreenH < s.minScreenH
	if s.screenTooSmall {
		return
	}

	s.field = physics.Box{
		X: 1,
		Y: 2,
		W: float64(runtime.ScreenW - 2),
		H: float64(runtime.ScreenH - 3),
	}
	s.world = physics.NewWorld(s.field, physics.Walls{Left: true, Right: true, Top: true})

	s.initPaddle()
	s.initBricks()
	s.initBall()
	s.initColliders()

	s.logger.Info("round started",
		"screen", [2]int{runtime.ScreenW, runtime.ScreenH},
		"bricks", len(s.bricks),
		"lives", s.round.Lives,
		"seed", runtime.Seed,
	)
}

func (s *Scene) initPaddle() {
	width := float64(min(s.cfg.Paddle.Width, int(s.field.W)/2))
	spawn := physics.Box{
		X: s.field.X + float64(int(s.field.W-width)/2),
		Y: s.field.Bottom() - 1 - float64(s.cfg.Paddle.BottomOffset),
		W: width,
		H: 1,
	}
	s.paddle = NewPaddle(spawn, s.field.X, s.field.Right())
}

// initBricks lays out the grid centered under the ceiling, one random
// colour per brick.
func (s *Scene) initBricks() {
	cols := s.cfg.Bricks.Columns
	brickW := min(s.cfg.Bricks.MaxWidth, int(s.field.W)/cols)
	startX := s.field.X + float64((int(s.field.W)-brickW*cols)/2)
	startY := s.field.Y + float64(s.cfg.Bricks.TopOffset)

	s.bricks = make([]*Brick, 0, s.cfg.Bricks.Rows*cols)
	for row := range s.cfg.Bricks.Rows {
		for col := range cols {
			box := physics.Box{
				X: startX + float64(col*brickW),
				Y: startY + float64(row),
				W: float64(brickW),
				H: 1,
			}
			colour := GetColour(s.rng.Float64())
			s.bricks = append(s.bricks, NewBrick(box, colour, s.cfg.Bricks.PointsPerHit))
		}
	}
}

func (s *Scene) initBall() {
	s.ball = NewBall(ballSize, s.cfg.Ball.Speed, s.cfg.Ball.MaxBounceAngle, s.cfg.Ball.LaunchAngle)
	s.ball.Reset(s.paddle.Bounds())
}

func (s *Scene) initColliders() {
	for _, brick := range s.bricks {
		s.world.AddCollider(s.ball, brick, s.hitBrick)
	}
	s.world.AddCollider(s.ball, s.paddle, s.hitPaddle)
}

// Step advances the game by one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if s.screenTooSmall {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionRestart) && s.round.Phase == PhaseWon {
		s.Reset(s.runtime)
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionPause) && s.round.Phase != PhaseWon {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	s.tick++

	s.handleInput(in)
	s.world.Step()

	if s.round.Phase != PhaseWon && s.ball.OutOfBounds(s.field) {
		s.apply(s.round.BallLost())
	}

	s.banner.update()

	return core.StepResult{State: s.State()}
}

// handleInput applies keyboard nudges and pointer events in arrival order.
func (s *Scene) handleInput(in core.InputFrame) {
	drag := core.PointerEvent{Kind: core.PointerDrag}
	if PointerIntent(s.round, s.paddle.InputEnabled(), drag) == IntentMovePaddle {
		if in.Has(core.ActionLeft) {
			s.paddle.Nudge(-s.cfg.Paddle.KeyStep, s.ball)
		}
		if in.Has(core.ActionRight) {
			s.paddle.Nudge(s.cfg.Paddle.KeyStep, s.ball)
		}
	}

	for _, ev := range in.Pointers {
		s.handlePointer(ev)
	}
	if in.Has(core.ActionRelease) {
		s.handlePointer(core.PointerEvent{Kind: core.PointerUp})
	}
}

func (s *Scene) handlePointer(ev core.PointerEvent) {
	switch PointerIntent(s.round, s.paddle.InputEnabled(), ev) {
	case IntentMovePaddle:
		s.paddle.InputCallback(ev, s.ball)
	case IntentLaunch:
		if s.ball.Launch() {
			s.logger.Debug("ball launched", "x", s.ball.Bounds().X)
		}
	case IntentDismiss:
		s.apply(s.round.Dismiss())
	}
}

// hitBrick is the ball/brick collider callback. The world has already
// bounced the ball.
func (s *Scene) hitBrick(_ physics.Dynamic, b physics.Body) {
	brick, ok := b.(*Brick)
	if !ok {
		return
	}
	points := brick.Hit()
	s.logger.Debug("brick hit", "colour", brick.InitialColour(), "hits_left", brick.Hits(), "points", points)
	s.apply(s.round.BrickHit(points, s.checkWin()))
}

// hitPaddle is the ball/paddle collider callback.
func (s *Scene) hitPaddle(_ physics.Dynamic, _ physics.Body) {
	s.ball.Hit(s.paddle.Bounds())
}

// checkWin reports whether every brick is dead.
func (s *Scene) checkWin() bool {
	for _, brick := range s.bricks {
		if !brick.IsDead() {
			return false
		}
	}
	return true
}

// apply performs the entity side effects of a round transition.
func (s *Scene) apply(t Transition) {
	switch t {
	case TransitionNone:
		return

	case TransitionSoftReset:
		s.paddle.Reset()
		s.ball.Reset(s.paddle.Bounds())
		s.logger.Info("life lost", "lives", s.round.Lives, "score", s.round.Score)

	case TransitionLost:
		s.paddle.DisableInput()
		s.logger.Info("round lost", "score", s.round.Score)

	case TransitionFullReset:
		for _, brick := range s.bricks {
			brick.Reset()
		}
		s.paddle.Reset()
		s.ball.Reset(s.paddle.Bounds())
		s.logger.Info("round reset", "lives", s.round.Lives)

	case TransitionResumed:
		s.paddle.EnableInput()
		s.logger.Info("lose prompt dismissed")

	case TransitionWon:
		s.ball.Disable()
		s.paddle.DisableBody()
		s.banner.start()
		s.logger.Info("round won", "score", s.round.Score, "lives", s.round.Lives, "ticks", s.tick)
	}
}

// Round returns a copy of the round state.
func (s *Scene) Round() Round {
	return s.round
}

// State returns the current game state.
func (s *Scene) State() core.GameState {
	return core.GameState{
		Score:    s.round.Score,
		Lives:    s.round.Lives,
		GameOver: s.round.Phase == PhaseWon,
		Paused:   s.paused,
	}
}
