package brickout

import "math"

// Snapshot is a flat copy of the simulation state, used to check that two
// runs with the same seed and inputs stay identical.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lives     int
	Phase     Phase
	FullReset bool
	Paused    bool

	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64
	Resting bool

	// Each brick is 2 ints: initial durability, hits left
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      uint64(s.tick), //#nosec G115 -- tick count is always positive
		Score:     s.round.Score,
		Lives:     s.round.Lives,
		Phase:     s.round.Phase,
		FullReset: s.round.FullReset,
		Paused:    s.paused,
	}
	if s.screenTooSmall {
		return snap
	}

	snap.PaddleX = s.paddle.X()
	box := s.ball.Bounds()
	vel := s.ball.Velocity()
	snap.BallX, snap.BallY = box.X, box.Y
	snap.BallVX, snap.BallVY = vel.X, vel.Y
	snap.Resting = s.ball.Resting()

	snap.BrickData = make([]int, 0, len(s.bricks)*2)
	for _, b := range s.bricks {
		snap.BrickData = append(snap.BrickData, b.InitialColour().Durability(), b.Hits())
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.FullReset)
	h = h*31 + boolBits(snap.Paused)
	h = h*31 + boolBits(snap.Resting)

	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
