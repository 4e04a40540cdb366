// Package main tunes the flight controller's steering parameters with CMA-ES.
package main

import (
	"github.com/pthm-cable/vale/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Per-state turn responsiveness
			{Name: "approach_turn", Path: "flight.approach_lake.turn", Min: 0.8, Max: 5.0, Default: 2.4},
			{Name: "dive_turn", Path: "flight.dive_lake.turn", Min: 0.8, Max: 5.0, Default: 2.8},
			{Name: "skim_turn", Path: "flight.skim.turn", Min: 0.8, Max: 5.0, Default: 3.0},
			{Name: "climb_turn", Path: "flight.climb_mountain.turn", Min: 0.8, Max: 5.0, Default: 2.2},
			{Name: "bomb_turn", Path: "flight.dive_bomb.turn", Min: 0.8, Max: 5.0, Default: 2.6},
			{Name: "pull_up_turn", Path: "flight.pull_up.turn", Min: 0.8, Max: 5.0, Default: 2.4},
			// Skim pacing and avoidance
			{Name: "skim_speed", Path: "flight.skim.speed", Min: 8.0, Max: 30.0, Default: 18.0},
			{Name: "avoid_ease", Path: "flight.avoid_ease", Min: 2.0, Max: 20.0, Default: 10.0},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// fields returns pointers to the tuned config fields, in Specs order.
func (pv *ParamVector) fields(cfg *config.Config) []*float64 {
	f := &cfg.Flight
	return []*float64{
		&f.ApproachLake.Turn,
		&f.DiveLake.Turn,
		&f.Skim.Turn,
		&f.ClimbMountain.Turn,
		&f.DiveBomb.Turn,
		&f.PullUp.Turn,
		&f.Skim.Speed,
		&f.AvoidEase,
	}
}

// ApplyToConfig applies parameter values to a Config struct.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	for i, p := range pv.fields(cfg) {
		*p = clamped[i]
	}
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	ptrs := pv.fields(cfg)
	out := make([]float64, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}
