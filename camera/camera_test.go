package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
	"github.com/pthm-cable/vale/config"
)

func testCamera(t *testing.T) *Camera {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return New(cfg.Camera, r3.Vec{})
}

// level returns a transform facing -Z at p.
func level(p r3.Vec) components.Transform {
	return components.Transform{Position: p, Orientation: quat.Number{Real: 1}}
}

func TestChaseSnapsBehindSubject(t *testing.T) {
	cam := testCamera(t)
	p := r3.Vec{X: 10, Y: 50, Z: 20}
	cam.Update(level(p), 1.0/60)

	if cam.Target != p {
		t.Errorf("target = %v, want subject %v", cam.Target, p)
	}
	// Facing -Z, so behind is +Z
	if cam.Position.Z <= p.Z {
		t.Errorf("eye %v not behind subject %v", cam.Position, p)
	}
	if cam.Position.Y <= p.Y {
		t.Errorf("eye %v not above subject %v", cam.Position, p)
	}
}

func TestChaseEasesAfterFirstUpdate(t *testing.T) {
	cam := testCamera(t)
	cam.Update(level(r3.Vec{}), 1.0/60)
	start := cam.Position

	moved := r3.Vec{X: 100}
	cam.Update(level(moved), 1.0/60)

	d0 := r3.Norm(r3.Sub(start, moved))
	d1 := r3.Norm(r3.Sub(cam.Position, moved))
	if d1 >= d0 {
		t.Errorf("camera did not move toward subject: %v -> %v", d0, d1)
	}
	if cam.Target == moved {
		t.Error("target snapped instead of easing")
	}
}

func TestVerticalDiveKeepsHeading(t *testing.T) {
	cam := testCamera(t)
	cam.Update(level(r3.Vec{}), 1.0/60)

	// Nose straight down: pitch -90 degrees about +X
	down := quat.Number(r3.NewRotation(-math.Pi/2, r3.Vec{X: 1}))
	cam.Update(components.Transform{Orientation: down}, 1.0/60)

	if math.IsNaN(cam.Position.X) || math.IsNaN(cam.Position.Z) {
		t.Fatalf("camera position NaN: %v", cam.Position)
	}
	if math.Abs(cam.heading.Z+1) > 1e-9 {
		t.Errorf("heading = %v, want previous -Z", cam.heading)
	}
}

func TestCycleModes(t *testing.T) {
	cam := testCamera(t)
	want := []Mode{ModeOrbit, ModeOverview, ModeChase}
	for _, m := range want {
		cam.Cycle()
		if cam.Mode != m {
			t.Errorf("Mode = %s, want %s", cam.Mode, m)
		}
	}
}

func TestOverviewLooksDown(t *testing.T) {
	cam := testCamera(t)
	cam.Cycle()
	cam.Cycle()
	cam.Update(level(r3.Vec{X: 50, Y: 20}), 1.0/60)

	if f := cam.Forward(); f.Y > -0.99 {
		t.Errorf("overview forward = %v, want nearly straight down", f)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := testCamera(t)

	cam.SetZoom(0.01)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %v, got %v", cam.MinZoom, cam.Zoom)
	}
	cam.ZoomBy(1000)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %v, got %v", cam.MaxZoom, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := testCamera(t)
	cam.Position = r3.Vec{}
	cam.Target = r3.Vec{Z: -10}

	if !cam.IsVisible(r3.Vec{Z: -50}, 1, 1.6) {
		t.Error("point ahead should be visible")
	}
	if cam.IsVisible(r3.Vec{Z: 50}, 1, 1.6) {
		t.Error("point behind should not be visible")
	}
	if !cam.IsVisible(r3.Vec{X: 0.5}, 1, 1.6) {
		t.Error("sphere containing the eye should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := testCamera(t)
	cam.Cycle()
	cam.SetZoom(2.5)

	cam.Reset()
	if cam.Mode != ModeChase || cam.Zoom != 1.0 {
		t.Errorf("after reset mode=%s zoom=%v", cam.Mode, cam.Zoom)
	}
}
