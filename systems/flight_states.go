package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
	"github.com/pthm-cable/vale/config"
)

// Waypoints holds the fixed world-space points the flight loop steers between.
// They are derived once from the height field so every consumer agrees on them.
type Waypoints struct {
	Fire      r3.Vec // Mountain summit surface point
	Cinematic r3.Vec // Opening target above the summit
	Approach  r3.Vec // Above the lake's near shore
	LakeEntry r3.Vec // Near shore at water level
	LakeExit  r3.Vec // Far shore at water level
	Climb     r3.Vec // Beside the summit, offset from the fire
	Bomb      r3.Vec // Fire center, lifted and floored at a minimum altitude
	PullUp    r3.Vec // Above and behind the summit

	PullUpExitY float64 // PullUp hands over to ApproachLake above this altitude
}

// NewWaypoints computes the loop's waypoints from the terrain.
func NewWaypoints(h HeightField, f config.FlightConfig) Waypoints {
	mx, mz := h.MountainCenter()
	fire := r3.Vec{X: mx, Y: h.Height(mx, mz), Z: mz}

	lx, lz := h.LakeCenter()
	rx, _ := h.LakeRadii()
	water := h.WaterLevel()
	inset := h.cfg.Lake.ShoreInset
	entry := r3.Vec{X: lx - inset*rx, Y: water, Z: lz}
	exit := r3.Vec{X: lx + inset*rx, Y: water, Z: lz}

	bomb := r3.Add(fire, r3.Vec{Y: f.BombLift})
	bomb.Y = math.Max(bomb.Y, f.BombMinAltitude)

	return Waypoints{
		Fire:        fire,
		Cinematic:   r3.Add(fire, vecFrom(f.CinematicOffset.X, f.CinematicOffset.Y, f.CinematicOffset.Z)),
		Approach:    r3.Add(entry, vecFrom(f.ApproachOffset.X, f.ApproachOffset.Y, f.ApproachOffset.Z)),
		LakeEntry:   entry,
		LakeExit:    exit,
		Climb:       r3.Add(fire, vecFrom(f.ClimbOffset.X, f.ClimbOffset.Y, f.ClimbOffset.Z)),
		Bomb:        bomb,
		PullUp:      r3.Add(fire, vecFrom(f.PullUpOffset.X, f.PullUpOffset.Y, f.PullUpOffset.Z)),
		PullUpExitY: fire.Y + f.PullUpClear,
	}
}

// stateParams returns the steering parameters for a state.
func stateParams(f *config.FlightConfig, s components.FlightState) config.StateConfig {
	switch s {
	case components.StateCinematicEntry:
		return f.Cinematic
	case components.StateApproachLake:
		return f.ApproachLake
	case components.StateDiveLake:
		return f.DiveLake
	case components.StateSkim:
		return f.Skim
	case components.StateClimbMountain:
		return f.ClimbMountain
	case components.StateDiveBomb:
		return f.DiveBomb
	case components.StatePullUp:
		return f.PullUp
	}
	return f.ApproachLake
}

// target returns the point the active state steers toward.
func (c *FlightController) target(elapsed float64) r3.Vec {
	water := c.terrain.WaterLevel()

	switch c.actor.State {
	case components.StateCinematicEntry:
		return c.wp.Cinematic
	case components.StateApproachLake:
		return c.wp.Approach
	case components.StateDiveLake:
		t := c.wp.LakeEntry
		t.Y = water + c.cfg.DiveTargetAbove
		return t
	case components.StateSkim:
		t := c.wp.LakeExit
		t.Y = water + c.cfg.SkimTargetAbove + c.cfg.SkimBobAmp*math.Sin(c.cfg.SkimBobFreq*elapsed)
		return t
	case components.StateClimbMountain:
		return c.wp.Climb
	case components.StateDiveBomb:
		return c.wp.Bomb
	case components.StatePullUp:
		return c.wp.PullUp
	}
	return c.wp.Approach
}

// nextState returns the state to switch to, or ok=false to stay.
// Every exit is a distance or altitude threshold on the current position.
func (c *FlightController) nextState(elapsed float64) (next components.FlightState, ok bool) {
	a := &c.actor
	pos := a.Position
	f := &c.cfg

	switch a.State {
	case components.StateCinematicEntry:
		if r3.Norm(r3.Sub(c.wp.Cinematic, pos)) < f.CinematicReach {
			return components.StateDiveBomb, true
		}
	case components.StateApproachLake:
		if r3.Norm(r3.Sub(c.wp.Approach, pos)) < f.ApproachReach {
			return components.StateDiveLake, true
		}
	case components.StateDiveLake:
		low := pos.Y <= c.terrain.WaterLevel()+f.DiveExitAbove
		if low || r3.Norm(r3.Sub(c.target(elapsed), pos)) < f.DiveReach {
			return components.StateSkim, true
		}
	case components.StateSkim:
		if horizontalDistance(c.wp.LakeExit, pos) < f.SkimReach {
			return components.StateClimbMountain, true
		}
	case components.StateClimbMountain:
		if r3.Norm(r3.Sub(c.wp.Climb, pos)) < f.ClimbReach {
			return components.StateDiveBomb, true
		}
	case components.StateDiveBomb:
		if r3.Norm(r3.Sub(c.wp.Bomb, pos)) < f.BombReach {
			return components.StatePullUp, true
		}
	case components.StatePullUp:
		if pos.Y > c.wp.PullUpExitY {
			return components.StateApproachLake, true
		}
	}
	return a.State, false
}
