package brickout

import (
	"testing"

	"github.com/vovakirdan/brickout/internal/core"
)

func TestPointerIntent(t *testing.T) {
	playing := NewRound(3)
	lost := NewRound(1)
	lost.BallLost()
	won := NewRound(3)
	won.BrickHit(10, true)

	drag := core.PointerEvent{Kind: core.PointerDrag, X: 10}
	up := core.PointerEvent{Kind: core.PointerUp, X: 10}

	tests := []struct {
		name  string
		round Round
		input bool
		ev    core.PointerEvent
		want  Intent
	}{
		{"drag while playing", playing, true, drag, IntentMovePaddle},
		{"release while playing", playing, true, up, IntentLaunch},
		{"drag with input off", playing, false, drag, IntentNone},
		{"release with input off", playing, false, up, IntentNone},
		{"release while lost", lost, false, up, IntentDismiss},
		{"drag while lost", lost, false, drag, IntentNone},
		{"drag after win", won, true, drag, IntentNone},
		{"release after win", won, true, up, IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointerIntent(tt.round, tt.input, tt.ev); got != tt.want {
				t.Errorf("PointerIntent = %d, want %d", got, tt.want)
			}
		})
	}
}
