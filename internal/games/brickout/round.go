package brickout

// Phase is the progression state of a round.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLost          // Out of lives, waiting for the player to dismiss
	PhaseWon           // Every brick is dead; terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Transition names the side effect the scene must apply after a round event.
type Transition int

const (
	TransitionNone      Transition = iota
	TransitionSoftReset            // Reposition paddle and ball only
	TransitionLost                 // Disable input, show the lose prompt
	TransitionFullReset            // Restore bricks, paddle and ball
	TransitionResumed              // Lose prompt dismissed, input back on
	TransitionWon                  // Stop the ball, hide the paddle, show the banner
)

// String returns the transition name.
func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionSoftReset:
		return "soft-reset"
	case TransitionLost:
		return "lost"
	case TransitionFullReset:
		return "full-reset"
	case TransitionResumed:
		return "resumed"
	case TransitionWon:
		return "won"
	default:
		return "unknown"
	}
}

// Round holds score, lives and progression. It is only changed through
// its event methods; each returns the transition the scene must apply.
type Round struct {
	Score     int
	Lives     int
	FullReset bool // Armed when the last life is lost
	Phase     Phase

	initialLives int
}

// NewRound starts a round with the given number of lives.
func NewRound(lives int) Round {
	return Round{
		Lives:        lives,
		Phase:        PhasePlaying,
		initialLives: lives,
	}
}

// InitialLives returns the lives a full reset restores.
func (r *Round) InitialLives() int {
	return r.initialLives
}

// BrickHit adds points for a brick hit. allDead reports whether that hit
// destroyed the last brick.
func (r *Round) BrickHit(points int, allDead bool) Transition {
	if r.Phase == PhaseWon {
		return TransitionNone
	}
	r.Score += points
	if allDead {
		r.Phase = PhaseWon
		return TransitionWon
	}
	return TransitionNone
}

// BallLost handles the ball leaving the playfield. With a full reset armed
// it restores the round; otherwise it costs a life.
func (r *Round) BallLost() Transition {
	if r.Phase == PhaseWon {
		return TransitionNone
	}

	if r.FullReset {
		r.Score = 0
		r.Lives = r.initialLives
		r.FullReset = false
		return TransitionFullReset
	}

	r.Lives--
	if r.Lives <= 0 {
		r.Lives = 0
		r.FullReset = true
		r.Phase = PhaseLost
		return TransitionLost
	}
	return TransitionSoftReset
}

// Dismiss closes the lose prompt.
func (r *Round) Dismiss() Transition {
	if r.Phase != PhaseLost {
		return TransitionNone
	}
	r.Phase = PhasePlaying
	return TransitionResumed
}
