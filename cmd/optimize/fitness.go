package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/vale/config"
	"github.com/pthm-cable/vale/systems"
	"github.com/pthm-cable/vale/telemetry"
)

// Penalty applied when a run never completes a lap. Transitions seen still
// lower it so the search has a gradient out of stuck regions.
const noLapPenalty = 1e6

// Clearance below which a run is penalized for scraping terrain or water.
const scrapeClearance = 0.05

// FitnessEvaluator runs headless scenes and scores lap pace.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	statsWindow float64

	mu          sync.Mutex
	bestFitness float64
	lastLaps    float64 // mean laps per seed from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 10.0,
		bestFitness: math.Inf(1),
	}
}

// LastLaps returns the mean lap count from the most recent evaluation.
func (fe *FitnessEvaluator) LastLaps() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastLaps
}

// runResult holds the results from a single scene run.
type runResult struct {
	laps        []telemetry.LapStats
	transitions int
	windows     []telemetry.WindowStats
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]*runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runScene(x, s)
		}(i, seed)
	}
	wg.Wait()

	var total, laps float64
	for _, r := range results {
		total += computeFitness(r)
		laps += float64(len(r.laps))
	}
	n := float64(len(fe.seeds))
	avg := total / n

	fe.mu.Lock()
	if avg < fe.bestFitness {
		fe.bestFitness = avg
	}
	fe.lastLaps = laps / n
	fe.mu.Unlock()

	return avg
}

// runScene executes a single headless run for maxTicks fixed steps.
func (fe *FitnessEvaluator) runScene(x []float64, seed int64) *runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	scene := systems.NewScene(cfg, seed)
	collector := telemetry.NewCollector(fe.statsWindow, cfg.Sim.DT)
	scene.SetObserver(collector)

	result := &runResult{}
	for scene.Tick() < fe.maxTicks {
		scene.Step(cfg.Sim.DT)
		collector.RecordTick(scene.Transform(), scene.Flight().Clearance())

		if collector.ShouldFlush(scene.Tick()) {
			w := collector.Flush(scene.Tick(), scene.Ripples().ActiveCount())
			result.windows = append(result.windows, w)
			result.transitions += w.Transitions
			result.laps = append(result.laps, collector.DrainLaps()...)
			collector.DrainEvents()
		}
	}
	result.laps = append(result.laps, collector.DrainLaps()...)
	return result
}

// copyConfig returns an independent copy of the base config.
// Config holds only value fields, so a shallow copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness scores a run (lower = better).
// Formula: meanLapSec × (1 + 0.2×cv(lap) + scrape penalty)
func computeFitness(r *runResult) float64 {
	if len(r.laps) == 0 {
		return noLapPenalty - float64(r.transitions)
	}

	durations := make([]float64, len(r.laps))
	minClear := math.Inf(1)
	for i, l := range r.laps {
		durations[i] = l.DurationSec
		minClear = math.Min(minClear, l.MinClearance)
	}
	mean, std := stat.MeanStdDev(durations, nil)
	if math.IsNaN(std) {
		std = 0
	}

	penalty := 0.0
	if mean > 0 {
		penalty += 0.2 * std / mean
	}
	if minClear < scrapeClearance {
		penalty += (scrapeClearance - minClear) / scrapeClearance
	}
	return mean * (1 + penalty)
}
