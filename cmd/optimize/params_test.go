package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/vale/config"
	"github.com/pthm-cable/vale/telemetry"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: got %v, want %v", pv.Specs[i].Name, back[i], raw[i])
		}
	}
}

func TestParamVectorDefaultsMatchConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	got := pv.ExtractFromConfig(cfg)
	for i, spec := range pv.Specs {
		if got[i] != spec.Default {
			t.Errorf("%s: config has %v, spec default %v", spec.Path, got[i], spec.Default)
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	values := make([]float64, pv.Dim())
	for i := range values {
		values[i] = 1e6
	}
	pv.ApplyToConfig(cfg, values)

	got := pv.ExtractFromConfig(cfg)
	for i, spec := range pv.Specs {
		if got[i] != spec.Max {
			t.Errorf("%s: got %v, want clamped to %v", spec.Name, got[i], spec.Max)
		}
	}
}

func TestComputeFitness(t *testing.T) {
	stuck := &runResult{transitions: 3}
	if got := computeFitness(stuck); got != noLapPenalty-3 {
		t.Errorf("no laps: got %v", got)
	}

	steady := &runResult{laps: []telemetry.LapStats{
		{DurationSec: 30, MinClearance: 1},
		{DurationSec: 30, MinClearance: 1},
	}}
	if got := computeFitness(steady); math.Abs(got-30) > 1e-9 {
		t.Errorf("steady laps: got %v, want 30", got)
	}

	scraping := &runResult{laps: []telemetry.LapStats{
		{DurationSec: 30, MinClearance: 0},
		{DurationSec: 30, MinClearance: 1},
	}}
	if got := computeFitness(scraping); got <= 30 {
		t.Errorf("scraping run should be penalized, got %v", got)
	}
}
