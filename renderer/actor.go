package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
	"github.com/pthm-cable/vale/systems"
)

// Flyer proportions in model space (nose toward -Z).
const (
	bodyLength = 2.4
	bodyRadius = 0.35
	wingSpan   = 3.2
	wingChord  = 1.1
	flapSwing  = 0.45 // Radians of wing travel either side of level
)

// ActorRenderer draws the flyer. It keeps the wingbeat phase so the flap
// animation stays continuous while the flap rate eases between states.
type ActorRenderer struct {
	phase float64
	body  rl.Color
	wing  rl.Color
}

// NewActorRenderer creates an actor renderer.
func NewActorRenderer() *ActorRenderer {
	return &ActorRenderer{
		body: rl.Color{R: 40, G: 36, B: 44, A: 255},
		wing: rl.Color{R: 70, G: 62, B: 78, A: 255},
	}
}

// Advance moves the wingbeat phase forward by dt at the transform's flap rate.
func (r *ActorRenderer) Advance(tr components.Transform, dt float64) {
	r.phase = math.Mod(r.phase+tr.FlapRate*dt*2*math.Pi, 2*math.Pi)
}

// Draw renders the flyer at tr. Must be called inside BeginMode3D.
func (r *ActorRenderer) Draw(tr components.Transform) {
	world := func(local r3.Vec) rl.Vector3 {
		return toVector3(r3.Add(tr.Position, systems.Rotate(tr.Orientation, local)))
	}

	nose := world(r3.Vec{Z: -bodyLength / 2})
	tail := world(r3.Vec{Z: bodyLength / 2})
	rl.DrawCylinderEx(tail, nose, bodyRadius*0.5, bodyRadius, 6, r.body)

	swing := flapSwing * math.Sin(r.phase)
	for _, side := range [2]float64{-1, 1} {
		tip := r3.Vec{
			X: side * wingSpan / 2 * math.Cos(swing),
			Y: wingSpan / 2 * math.Sin(swing),
		}
		root := world(r3.Vec{Z: -wingChord / 2})
		trail := world(r3.Vec{Z: wingChord / 2})
		tipW := world(tip)

		// Both windings so the wing shows from above and below
		rl.DrawTriangle3D(root, trail, tipW, r.wing)
		rl.DrawTriangle3D(root, tipW, trail, r.wing)
	}
}
