package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
	"github.com/pthm-cable/vale/config"
)

// FlightObserver receives flight events as they happen inside Tick.
type FlightObserver interface {
	OnTransition(from, to components.FlightState, at float64, pos r3.Vec)
	OnSplash(kind components.SplashKind, at float64, spawned bool)
}

// FlightController drives the flyer through its scripted loop: it picks a
// target per state, steers toward it, keeps clear of terrain and water,
// requests splashes and derives the render orientation from velocity.
type FlightController struct {
	cfg      config.FlightConfig
	maxDelta float64

	terrain HeightField
	ripples *RipplePool
	rng     *rand.Rand
	wp      Waypoints

	actor    components.Actor
	observer FlightObserver
}

// NewFlightController creates a controller with the actor at its spawn point
// in the cinematic entry state. rng drives skim splashes and must not be nil.
func NewFlightController(cfg config.FlightConfig, maxDelta float64, terrain HeightField, ripples *RipplePool, rng *rand.Rand) *FlightController {
	c := &FlightController{
		cfg:      cfg,
		maxDelta: maxDelta,
		terrain:  terrain,
		ripples:  ripples,
		rng:      rng,
		wp:       NewWaypoints(terrain, cfg),
	}
	c.reset()
	return c
}

// reset places the actor back at the spawn point.
func (c *FlightController) reset() {
	c.actor = components.Actor{
		Position:    vecFrom(c.cfg.Spawn.X, c.cfg.Spawn.Y, c.cfg.Spawn.Z),
		State:       components.StateCinematicEntry,
		LastSplash:  -c.cfg.SplashCooldown,
		FlapRate:    c.cfg.Cinematic.FlapRate,
		Orientation: identityRotation,
	}
}

// SetObserver registers o to receive transition and splash events. Nil disables.
func (c *FlightController) SetObserver(o FlightObserver) {
	c.observer = o
}

// Tick advances the flyer by dt seconds. elapsed is the scene clock after
// this tick and is used for splash cooldowns and the skim bob.
// Returns the dt actually applied after clamping.
func (c *FlightController) Tick(dt, elapsed float64) float64 {
	if dt <= 0 {
		return 0
	}
	if dt > c.maxDelta {
		dt = c.maxDelta
	}

	// 1. State transition and per-state parameters
	c.updateState(elapsed)
	params := stateParams(&c.cfg, c.actor.State)
	c.actor.FlapRate = easeToward(c.actor.FlapRate, params.FlapRate, c.cfg.FlapEase, dt)

	// 2. Seek steering
	prevVel := c.actor.Velocity
	c.steer(c.target(elapsed), params, dt)

	// 3. Integrate
	c.actor.Position = r3.Add(c.actor.Position, r3.Scale(dt, c.actor.Velocity))

	// 4. Terrain and water avoidance
	c.avoid(dt)

	// 5. Splashes
	c.splash(elapsed)

	// 6. Orientation
	c.orient(prevVel, dt)

	// 7. Age ripples
	c.ripples.Tick(dt)

	return dt
}

// updateState evaluates the current state's exit condition. At most one
// transition happens per tick.
func (c *FlightController) updateState(elapsed float64) {
	next, ok := c.nextState(elapsed)
	if !ok {
		return
	}
	prev := c.actor.State
	c.actor.State = next
	if c.observer != nil {
		c.observer.OnTransition(prev, next, elapsed, c.actor.Position)
	}
}

// steer blends velocity toward the seek velocity and caps it at the state speed.
func (c *FlightController) steer(target r3.Vec, p config.StateConfig, dt float64) {
	a := &c.actor
	if dir, ok := safeUnit(r3.Sub(target, a.Position), 1e-12); ok {
		desired := r3.Scale(p.Speed, dir)
		a.Velocity = r3.Add(a.Velocity, r3.Scale(p.Turn*dt, r3.Sub(desired, a.Velocity)))
	}
	a.Velocity = clampMagnitude(a.Velocity, p.Speed)
}

// SafeAltitude returns the altitude avoidance eases the actor back to at (x, z).
func (c *FlightController) SafeAltitude(x, z float64, skimming bool) float64 {
	ground := c.terrain.Height(x, z)
	water := c.terrain.WaterLevel()

	if ground < water {
		if skimming {
			return water - c.cfg.SkimBelow
		}
		return water + c.cfg.WaterAbove
	}

	safe := ground + c.cfg.LandClearance
	if skimming {
		safe += c.cfg.SkimExtraLand
	}
	return safe
}

// ContactFloor returns the altitude the actor is never allowed below at (x, z).
func (c *FlightController) ContactFloor(x, z float64) float64 {
	ground := c.terrain.Height(x, z)
	water := c.terrain.WaterLevel()
	if ground < water {
		return water - c.cfg.ContactWater
	}
	return ground + c.cfg.ContactLand
}

// avoid pushes the actor up toward the safe altitude and clamps it to the
// contact floor.
func (c *FlightController) avoid(dt float64) {
	a := &c.actor
	x, z := a.Position.X, a.Position.Z

	safe := c.SafeAltitude(x, z, a.State.Skimming())
	if a.Position.Y < safe {
		a.Position.Y = easeToward(a.Position.Y, safe, c.cfg.AvoidEase, dt)
		if a.Velocity.Y < 0 {
			a.Velocity.Y *= c.cfg.VerticalDamping
		}
	}

	if floor := c.ContactFloor(x, z); a.Position.Y < floor {
		a.Position.Y = floor
	}
}

// splash requests ripples while diving into or skimming over the lake.
func (c *FlightController) splash(elapsed float64) {
	a := &c.actor
	water := c.terrain.WaterLevel()

	switch a.State {
	case components.StateDiveLake:
		if horizontalDistance(a.Position, c.wp.LakeEntry) >= c.cfg.SplashReach {
			return
		}
		if a.Position.Y > water+c.cfg.SplashAbove {
			return
		}
		if elapsed-a.LastSplash < c.cfg.SplashCooldown {
			return
		}
		spawned := c.ripples.Spawn(a.Position.X, a.Position.Z, c.cfg.EntrySplashScale)
		a.LastSplash = elapsed
		c.notifySplash(components.SplashDive, elapsed, spawned)

	case components.StateSkim:
		if c.rng.Float64() >= c.cfg.SkimSplashChance {
			return
		}
		spawned := c.ripples.Spawn(a.Position.X, a.Position.Z, c.cfg.SkimSplashScale)
		c.notifySplash(components.SplashSkim, elapsed, spawned)
	}
}

func (c *FlightController) notifySplash(kind components.SplashKind, at float64, spawned bool) {
	if c.observer != nil {
		c.observer.OnSplash(kind, at, spawned)
	}
}

// orient derives the render orientation from velocity. Below the minimum
// speed the previous orientation is kept.
func (c *FlightController) orient(prevVel r3.Vec, dt float64) {
	a := &c.actor
	dir, ok := safeUnit(a.Velocity, c.cfg.MinSpeedSq)
	if !ok {
		return
	}

	a.Bank = 0
	if prevDir, ok := safeUnit(prevVel, c.cfg.MinSpeedSq); ok {
		a.Bank = bankAngle(prevDir, dir, dt, c.cfg.BankGain, c.cfg.MaxBank)
	}
	a.Orientation = lookRotation(dir, a.Bank)
}

// Actor returns a copy of the flyer's state.
func (c *FlightController) Actor() components.Actor {
	return c.actor
}

// Transform returns the snapshot the presentation layer draws from.
func (c *FlightController) Transform() components.Transform {
	a := &c.actor
	return components.Transform{
		Position:    a.Position,
		Orientation: a.Orientation,
		FlapRate:    a.FlapRate,
		State:       a.State,
		Speed:       a.Speed(),
		Bank:        a.Bank,
	}
}

// Waypoints returns the loop's fixed waypoints.
func (c *FlightController) Waypoints() Waypoints {
	return c.wp
}

// Target returns the point the current state is steering toward.
func (c *FlightController) Target(elapsed float64) r3.Vec {
	return c.target(elapsed)
}

// Clearance returns the actor's height above the contact floor.
func (c *FlightController) Clearance() float64 {
	p := c.actor.Position
	return p.Y - c.ContactFloor(p.X, p.Z)
}
