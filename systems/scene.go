package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
	"github.com/pthm-cable/vale/config"
)

// Scene owns one session: the height field, the ripple pool, the flight
// controller and the scene clock. Nothing is shared between scenes.
type Scene struct {
	cfg  *config.Config
	seed int64

	terrain HeightField
	ripples *RipplePool
	flight  *FlightController
	rng     *rand.Rand

	elapsed  float64
	tick     int32
	observer FlightObserver
}

// NewScene builds a scene from cfg. seed drives the skim splash sampler.
func NewScene(cfg *config.Config, seed int64) *Scene {
	s := &Scene{
		cfg:     cfg,
		seed:    seed,
		terrain: NewHeightField(cfg.Terrain),
	}
	s.Reset()
	return s
}

// Reset starts the session over with fresh components.
// The height field is immutable and survives.
func (s *Scene) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
	s.ripples = NewRipplePool(s.cfg.Ripples, s.terrain.WaterLevel())
	s.flight = NewFlightController(s.cfg.Flight, s.cfg.Sim.MaxDelta, s.terrain, s.ripples, s.rng)
	s.flight.SetObserver(s.observer)
	s.elapsed = 0
	s.tick = 0
}

// SetObserver forwards flight events to o, and keeps doing so across resets.
func (s *Scene) SetObserver(o FlightObserver) {
	s.observer = o
	s.flight.SetObserver(o)
}

// Step advances the scene clock and the flyer by dt seconds, clamped to the
// configured maximum. Returns the dt actually applied.
func (s *Scene) Step(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	if dt > s.cfg.Sim.MaxDelta {
		dt = s.cfg.Sim.MaxDelta
	}
	s.elapsed += dt
	s.tick++
	return s.flight.Tick(dt, s.elapsed)
}

// Elapsed returns the scene clock in seconds.
func (s *Scene) Elapsed() float64 {
	return s.elapsed
}

// Tick returns the number of steps taken since the last reset.
func (s *Scene) Tick() int32 {
	return s.tick
}

// Seed returns the session seed.
func (s *Scene) Seed() int64 {
	return s.seed
}

// Terrain returns the scene's height field.
func (s *Scene) Terrain() HeightField {
	return s.terrain
}

// Flight returns the flight controller.
func (s *Scene) Flight() *FlightController {
	return s.flight
}

// Ripples returns the splash pool.
func (s *Scene) Ripples() *RipplePool {
	return s.ripples
}

// Transform returns the flyer's presentation snapshot.
func (s *Scene) Transform() components.Transform {
	return s.flight.Transform()
}

// ActiveRipples appends the live splashes to dst.
func (s *Scene) ActiveRipples(dst []components.RippleView) []components.RippleView {
	return s.ripples.Active(dst)
}

// Actor returns a copy of the flyer's state.
func (s *Scene) Actor() components.Actor {
	return s.flight.Actor()
}

// Fire returns the summit point the loop circles.
func (s *Scene) Fire() r3.Vec {
	return s.flight.Waypoints().Fire
}
