// Package components defines the plain data records shared by the simulation and its consumers.
package components

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// FlightState is the active behavior of the flyer.
type FlightState uint8

const (
	StateCinematicEntry FlightState = iota // Opening fly-in, runs once per session
	StateApproachLake
	StateDiveLake
	StateSkim
	StateClimbMountain
	StateDiveBomb
	StatePullUp

	NumFlightStates
)

var flightStateNames = [NumFlightStates]string{
	StateCinematicEntry: "cinematic_entry",
	StateApproachLake:   "approach_lake",
	StateDiveLake:       "dive_lake",
	StateSkim:           "skim",
	StateClimbMountain:  "climb_mountain",
	StateDiveBomb:       "dive_bomb",
	StatePullUp:         "pull_up",
}

// String returns the snake_case state name used in logs and CSV output.
func (s FlightState) String() string {
	if s < NumFlightStates {
		return flightStateNames[s]
	}
	return "unknown"
}

// Skimming reports whether the state flies at or below the water surface.
func (s FlightState) Skimming() bool {
	return s == StateSkim
}

// Actor holds the flyer's kinematic and behavioral state.
// Orientation is derived from Velocity every tick; it is kept only so a
// degenerate tick can fall back to the last good value.
type Actor struct {
	Position r3.Vec // World space
	Velocity r3.Vec // World units per second

	State      FlightState
	LastSplash float64 // Scene clock time of the last dive splash

	FlapRate    float64     // Wingbeat proxy, eased toward the state's target
	Orientation quat.Number // Unit quaternion; model faces -Z with +Y up
	Bank        float64     // Roll applied on top of the look-at, radians
}

// Speed returns the magnitude of the actor's velocity.
func (a *Actor) Speed() float64 {
	return r3.Norm(a.Velocity)
}

// Transform is the per-frame snapshot the presentation layer reads.
type Transform struct {
	Position    r3.Vec
	Orientation quat.Number
	FlapRate    float64
	State       FlightState
	Speed       float64
	Bank        float64
}

// SplashKind identifies what triggered a splash request.
type SplashKind uint8

const (
	SplashDive SplashKind = iota // Gated dive-entry splash
	SplashSkim                   // Probabilistic skim splash
)

// String returns the splash kind name.
func (k SplashKind) String() string {
	if k == SplashDive {
		return "dive"
	}
	return "skim"
}
