package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WaterRenderer draws the lake surface as a translucent plane whose tint
// drifts slowly over time.
type WaterRenderer struct {
	level float32
	size  float32
	color rl.Color
}

// NewWaterRenderer creates a water plane at level spanning size world units.
func NewWaterRenderer(level, size float64) *WaterRenderer {
	return &WaterRenderer{
		level: float32(level),
		size:  float32(size),
		color: rl.Color{R: 48, G: 96, B: 128, A: 170},
	}
}

// Draw renders the water plane. Must be called inside BeginMode3D, after
// opaque geometry.
func (w *WaterRenderer) Draw(elapsed float64) {
	shimmer := float32(0.5 + 0.5*math.Sin(elapsed*0.7))
	c := w.color
	c.G = uint8(float32(c.G) + shimmer*12)
	c.B = uint8(float32(c.B) + shimmer*16)

	rl.DrawPlane(rl.NewVector3(0, w.level, 0), rl.NewVector2(w.size, w.size), c)
}
