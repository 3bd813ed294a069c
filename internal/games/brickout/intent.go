package brickout

import "github.com/vovakirdan/brickout/internal/core"

// Intent is what a pointer event asks the scene to do.
type Intent int

const (
	IntentNone       Intent = iota
	IntentMovePaddle        // Drag the paddle (and a resting ball)
	IntentLaunch            // Serve a resting ball
	IntentDismiss           // Close the lose prompt
)

// PointerIntent decides what a pointer event means for the current round.
// It has no side effects; the scene applies the returned intent.
func PointerIntent(r Round, paddleInput bool, ev core.PointerEvent) Intent {
	switch r.Phase {
	case PhaseLost:
		if ev.Kind == core.PointerUp {
			return IntentDismiss
		}
		return IntentNone
	case PhasePlaying:
		if !paddleInput {
			return IntentNone
		}
		switch ev.Kind {
		case core.PointerDrag:
			return IntentMovePaddle
		case core.PointerUp:
			return IntentLaunch
		}
	}
	return IntentNone
}
