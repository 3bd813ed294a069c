package brickout

import "testing"

func TestRoundLastLifeLoses(t *testing.T) {
	r := NewRound(1)

	tr := r.BallLost()

	if tr != TransitionLost {
		t.Errorf("transition = %s, want lost", tr)
	}
	if r.Lives != 0 {
		t.Errorf("lives = %d, want 0", r.Lives)
	}
	if r.Phase != PhaseLost {
		t.Errorf("phase = %s, want lost", r.Phase)
	}
	if !r.FullReset {
		t.Error("full reset should be armed")
	}
}

func TestRoundSoftReset(t *testing.T) {
	r := NewRound(3)
	r.Score = 120

	tr := r.BallLost()

	if tr != TransitionSoftReset {
		t.Errorf("transition = %s, want soft-reset", tr)
	}
	if r.Lives != 2 {
		t.Errorf("lives = %d, want 2", r.Lives)
	}
	if r.Score != 120 {
		t.Errorf("score = %d, want unchanged 120", r.Score)
	}
	if r.Phase != PhasePlaying || r.FullReset {
		t.Error("soft reset should keep playing without arming a full reset")
	}
}

func TestRoundFullReset(t *testing.T) {
	r := NewRound(3)
	r.BrickHit(40, false)
	for r.Phase != PhaseLost {
		r.BallLost()
	}

	tr := r.BallLost()

	if tr != TransitionFullReset {
		t.Fatalf("transition = %s, want full-reset", tr)
	}
	if r.Lives != 3 || r.Score != 0 {
		t.Errorf("after full reset lives=%d score=%d, want 3 and 0", r.Lives, r.Score)
	}
	if r.FullReset {
		t.Error("full reset should disarm once applied")
	}
	if r.Phase != PhaseLost {
		t.Errorf("phase = %s, want lost until dismissed", r.Phase)
	}

	if tr := r.Dismiss(); tr != TransitionResumed {
		t.Errorf("dismiss = %s, want resumed", tr)
	}
	if r.Phase != PhasePlaying {
		t.Errorf("phase = %s after dismiss, want playing", r.Phase)
	}
}

func TestRoundBrickHitScores(t *testing.T) {
	r := NewRound(3)

	if tr := r.BrickHit(10, false); tr != TransitionNone {
		t.Errorf("transition = %s, want none", tr)
	}
	if tr := r.BrickHit(10, true); tr != TransitionWon {
		t.Errorf("transition = %s, want won", tr)
	}
	if r.Score != 20 {
		t.Errorf("score = %d, want 20", r.Score)
	}
}

func TestRoundWonIsTerminal(t *testing.T) {
	r := NewRound(3)
	r.BrickHit(10, true)

	if tr := r.BallLost(); tr != TransitionNone {
		t.Errorf("ball lost after win = %s, want none", tr)
	}
	if tr := r.BrickHit(10, true); tr != TransitionNone {
		t.Errorf("brick hit after win = %s, want none", tr)
	}
	if tr := r.Dismiss(); tr != TransitionNone {
		t.Errorf("dismiss after win = %s, want none", tr)
	}
	if r.Lives != 3 || r.Score != 10 || r.Phase != PhaseWon {
		t.Errorf("won round changed: %+v", r)
	}
}

func TestRoundDismissOnlyWhenLost(t *testing.T) {
	r := NewRound(3)
	if tr := r.Dismiss(); tr != TransitionNone {
		t.Errorf("dismiss while playing = %s, want none", tr)
	}
}
