package brickout

import (
	"github.com/charmbracelet/harmonica"

	"github.com/vovakirdan/brickout/internal/config"
)

// banner is the "you win" box. It scales from nothing to full size on a
// spring, one update per simulation tick.
type banner struct {
	spring   harmonica.Spring
	scale    float64
	velocity float64
	active   bool
}

func newBanner(tickRate int, cfg config.BrickoutAnimation) banner {
	if tickRate <= 0 {
		tickRate = 60
	}
	return banner{
		spring: harmonica.NewSpring(harmonica.FPS(tickRate), cfg.AngularFrequency, cfg.Damping),
	}
}

func (b *banner) start() {
	b.active = true
	b.scale = 0
	b.velocity = 0
}

func (b *banner) update() {
	if !b.active {
		return
	}
	b.scale, b.velocity = b.spring.Update(b.scale, b.velocity, 1.0)
}

// Scale returns the current size factor; it may overshoot 1 while settling.
func (b *banner) Scale() float64 {
	return max(b.scale, 0)
}
