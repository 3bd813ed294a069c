package brickout

import "github.com/vovakirdan/brickout/internal/core"

// Colour is a brick tier. Each tier has a fixed durability.
type Colour string

const (
	ColourGreen  Colour = "green"
	ColourYellow Colour = "yellow"
	ColourBlue   Colour = "blue"
	ColourRed    Colour = "red"
	ColourPurple Colour = "purple"
)

// Bucket is the half-open interval [Lower, Upper) of random values that
// produce Colour.
type Bucket struct {
	Lower, Upper float64
	Colour       Colour
}

// buckets partition [0, 1). Tougher tiers are rarer.
var buckets = []Bucket{
	{Lower: 0.00, Upper: 0.30, Colour: ColourGreen},
	{Lower: 0.30, Upper: 0.55, Colour: ColourYellow},
	{Lower: 0.55, Upper: 0.75, Colour: ColourBlue},
	{Lower: 0.75, Upper: 0.90, Colour: ColourRed},
	{Lower: 0.90, Upper: 1.00, Colour: ColourPurple},
}

// tiers is indexed by durability-1.
var tiers = []Colour{ColourGreen, ColourYellow, ColourBlue, ColourRed, ColourPurple}

// GetColour maps a random value in [0, 1) to a brick colour.
// Values below 0 land in the first bucket, values at or above 1 in the last.
func GetColour(r float64) Colour {
	for _, b := range buckets {
		if r < b.Upper {
			return b.Colour
		}
	}
	return buckets[len(buckets)-1].Colour
}

// Buckets returns a copy of the colour distribution.
func Buckets() []Bucket {
	return append([]Bucket(nil), buckets...)
}

// Durability returns how many hits a fresh brick of this colour takes.
func (c Colour) Durability() int {
	for i, t := range tiers {
		if t == c {
			return i + 1
		}
	}
	return 1
}

// SpriteKey returns the asset-style key for the colour, e.g. "red_brick".
func (c Colour) SpriteKey() string {
	return string(c) + "_brick"
}

// colourForHits returns the tier shown by a brick with hits left.
func colourForHits(hits int) Colour {
	return tiers[core.Clamp(hits, 1, len(tiers))-1]
}

func (c Colour) glyph() rune {
	switch c {
	case ColourPurple, ColourRed:
		return '█'
	case ColourBlue:
		return '▓'
	case ColourYellow:
		return '▒'
	default:
		return '░'
	}
}

func (c Colour) screenColor() core.Color {
	switch c {
	case ColourGreen:
		return core.ColorGreen
	case ColourYellow:
		return core.ColorYellow
	case ColourBlue:
		return core.ColorBlue
	case ColourRed:
		return core.ColorRed
	case ColourPurple:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}
