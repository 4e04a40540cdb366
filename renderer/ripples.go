package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vale/components"
)

// Ring radius at scale 1, world units.
const rippleRadius = 2.0

// RippleRenderer draws splash decals as concentric rings on the water.
type RippleRenderer struct{}

// NewRippleRenderer creates a ripple renderer.
func NewRippleRenderer() *RippleRenderer {
	return &RippleRenderer{}
}

// Draw renders the given ripples. Must be called inside BeginMode3D.
func (r *RippleRenderer) Draw(ripples []components.RippleView) {
	for i := range ripples {
		v := &ripples[i]
		if v.Opacity <= 0 {
			continue
		}
		center := toVector3(v.Position)
		radius := float32(v.Scale * rippleRadius)
		alpha := float32(v.Opacity)

		// Circles are drawn in the XY plane; tip them onto the water
		rl.DrawCircle3D(center, radius, rl.NewVector3(1, 0, 0), 90, rl.Fade(rl.RayWhite, alpha))
		rl.DrawCircle3D(center, radius*0.6, rl.NewVector3(1, 0, 0), 90, rl.Fade(rl.SkyBlue, alpha*0.7))
	}
}
