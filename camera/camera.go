// Package camera provides a 3D camera rig that follows the flyer.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
	"github.com/pthm-cable/vale/config"
)

// Mode selects how the camera frames the scene.
type Mode uint8

const (
	ModeChase    Mode = iota // Behind and above the flyer
	ModeOrbit                // Slow circle around the valley, looking at the flyer
	ModeOverview             // High above the valley center

	numModes
)

var modeNames = [numModes]string{"chase", "orbit", "overview"}

// String returns the mode name.
func (m Mode) String() string {
	if m < numModes {
		return modeNames[m]
	}
	return "unknown"
}

// Camera tracks an eye position and look-at target in world space.
// It holds no renderer state; the presentation layer copies Position,
// Target and FOV into its own camera each frame.
type Camera struct {
	Mode Mode

	// Eye and look-at point in world coordinates
	Position r3.Vec
	Target   r3.Vec

	// Vertical field of view, degrees
	FOV float64

	// Zoom scales framing distances (1.0 = configured distances; larger is closer)
	Zoom, MinZoom, MaxZoom float64

	cfg        config.CameraConfig
	center     r3.Vec // Valley center the orbit and overview frame
	orbitAngle float64
	heading    r3.Vec // Last good horizontal heading of the flyer
	placed     bool   // First update snaps instead of easing
}

// New creates a chase camera around center.
func New(cfg config.CameraConfig, center r3.Vec) *Camera {
	return &Camera{
		Mode:    ModeChase,
		FOV:     cfg.FOV,
		Zoom:    1.0,
		MinZoom: 0.4,
		MaxZoom: 3.0,
		cfg:     cfg,
		center:  center,
		heading: r3.Vec{Z: -1},
	}
}

// Update moves the camera toward the framing for the current mode.
func (c *Camera) Update(tr components.Transform, dt float64) {
	c.orbitAngle = math.Mod(c.orbitAngle+c.cfg.OrbitSpeed*dt, 2*math.Pi)

	// Nose direction flattened onto the ground plane
	fwd := r3.Rotation(tr.Orientation).Rotate(r3.Vec{Z: -1})
	fwd.Y = 0
	if n := r3.Norm(fwd); n > 1e-6 {
		c.heading = r3.Scale(1/n, fwd)
	}

	eye, target := c.framing(tr.Position)

	if !c.placed || dt <= 0 {
		c.Position, c.Target = eye, target
		c.placed = true
		return
	}

	// Exponential follow, frame-rate independent
	k := 1 - math.Exp(-c.cfg.Follow*dt)
	c.Position = r3.Add(c.Position, r3.Scale(k, r3.Sub(eye, c.Position)))
	c.Target = r3.Add(c.Target, r3.Scale(k, r3.Sub(target, c.Target)))
}

// framing returns the ideal eye and target for the current mode.
func (c *Camera) framing(subject r3.Vec) (eye, target r3.Vec) {
	switch c.Mode {
	case ModeOrbit:
		r := c.cfg.OrbitRadius / c.Zoom
		eye = r3.Add(c.center, r3.Vec{
			X: math.Cos(c.orbitAngle) * r,
			Y: c.cfg.OrbitHeight / c.Zoom,
			Z: math.Sin(c.orbitAngle) * r,
		})
		return eye, subject

	case ModeOverview:
		// Slightly offset in Z so the view direction is never parallel to up
		eye = r3.Add(c.center, r3.Vec{Y: 2 * c.cfg.OrbitHeight / c.Zoom, Z: 1})
		return eye, c.center
	}

	back := r3.Scale(-c.cfg.ChaseDist/c.Zoom, c.heading)
	eye = r3.Add(subject, r3.Add(back, r3.Vec{Y: c.cfg.ChaseHeight / c.Zoom}))
	return eye, subject
}

// Cycle switches to the next mode and snaps to its framing on the next update.
func (c *Camera) Cycle() {
	c.Mode = (c.Mode + 1) % numModes
	c.placed = false
}

// Forward returns the unit view direction.
func (c *Camera) Forward() r3.Vec {
	d := r3.Sub(c.Target, c.Position)
	n := r3.Norm(d)
	if n == 0 {
		return r3.Vec{Z: -1}
	}
	return r3.Scale(1/n, d)
}

// IsVisible returns true if a sphere at p with the given radius could be
// inside the view cone (conservative check for culling).
// aspect is viewport width over height.
func (c *Camera) IsVisible(p r3.Vec, radius, aspect float64) bool {
	d := r3.Sub(p, c.Position)
	dist := r3.Norm(d)
	if dist <= radius {
		return true
	}

	// Half-angle of the cone enclosing the frustum
	halfV := c.FOV * math.Pi / 360
	halfH := math.Atan(math.Tan(halfV) * aspect)
	half := math.Hypot(halfV, halfH)

	angle := math.Acos(clamp(r3.Dot(d, c.Forward())/dist, -1, 1))
	return angle <= half+math.Asin(radius/dist)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to chase mode with default zoom.
func (c *Camera) Reset() {
	c.Mode = ModeChase
	c.Zoom = 1.0
	c.orbitAngle = 0
	c.heading = r3.Vec{Z: -1}
	c.placed = false
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
