package components

import "gonum.org/v1/gonum/spatial/r3"

// RippleEntry is one slot of the splash pool.
type RippleEntry struct {
	Position r3.Vec // Fixed at spawn
	Scale    float64
	Life     float64 // Counts down from MaxLife
	MaxLife  float64
	Active   bool
}

// RippleView is what the renderer needs to draw one active splash decal.
type RippleView struct {
	Position r3.Vec
	Scale    float64
	Opacity  float64
}
