package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"
)

// FireRenderer draws the summit fire as a cluster of flickering spheres.
type FireRenderer struct {
	at r3.Vec
}

// NewFireRenderer creates a fire at the given surface point.
func NewFireRenderer(at r3.Vec) *FireRenderer {
	return &FireRenderer{at: at}
}

// SetPosition moves the fire.
func (f *FireRenderer) SetPosition(at r3.Vec) {
	f.at = at
}

// Draw renders the fire. Must be called inside BeginMode3D.
func (f *FireRenderer) Draw(elapsed float64) {
	flames := [...]struct {
		offset r3.Vec
		radius float64
		freq   float64
		color  rl.Color
	}{
		{r3.Vec{Y: 1.2}, 1.6, 9.0, rl.Color{R: 255, G: 96, B: 24, A: 220}},
		{r3.Vec{X: 0.6, Y: 2.4, Z: 0.3}, 1.0, 13.0, rl.Color{R: 255, G: 160, B: 40, A: 200}},
		{r3.Vec{X: -0.5, Y: 3.2, Z: -0.2}, 0.7, 17.0, rl.Color{R: 255, G: 220, B: 90, A: 180}},
	}

	for i, fl := range flames {
		flicker := 0.85 + 0.15*math.Sin(elapsed*fl.freq+float64(i)*1.7)
		p := r3.Add(f.at, fl.offset)
		p.Y += 0.3 * math.Sin(elapsed*fl.freq*0.5)
		rl.DrawSphere(toVector3(p), float32(fl.radius*flicker), fl.color)
	}

	// Ember glow on the ground
	rl.DrawCircle3D(toVector3(r3.Add(f.at, r3.Vec{Y: 0.1})), 3.5, rl.NewVector3(1, 0, 0), 90,
		rl.Fade(rl.Orange, float32(0.35+0.1*math.Sin(elapsed*5))))
}
