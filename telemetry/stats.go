package telemetry

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Seconds spent in each state during the window
	CinematicSec float64 `csv:"cinematic_sec"`
	ApproachSec  float64 `csv:"approach_sec"`
	DiveSec      float64 `csv:"dive_sec"`
	SkimSec      float64 `csv:"skim_sec"`
	ClimbSec     float64 `csv:"climb_sec"`
	BombSec      float64 `csv:"bomb_sec"`
	PullUpSec    float64 `csv:"pull_up_sec"`

	// Loop progress
	Transitions   int `csv:"transitions"`
	LapsCompleted int `csv:"laps"` // Cumulative

	// Splashes
	DiveSplashes    int `csv:"dive_splashes"`
	SkimSplashes    int `csv:"skim_splashes"`
	SplashesDropped int `csv:"splashes_dropped"` // Rejected by a full pool
	ActiveRipples   int `csv:"active_ripples"`   // At window end

	// Speed distribution over the window's ticks
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	MinClearance float64 `csv:"min_clearance"` // Above the contact floor
	MaxBank      float64 `csv:"max_bank"`      // Radians, absolute
}

// ComputeSpeedStats calculates mean, std, and empirical percentiles.
// The standard deviation is zero for fewer than two samples.
func ComputeSpeedStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	// Quantile needs sorted input
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LoopShare returns the fraction of the window spent in each lake state
// (approach, dive, skim) versus the mountain states.
func (s WindowStats) LoopShare() (lake, mountain float64) {
	lakeSec := s.ApproachSec + s.DiveSec + s.SkimSec
	mountainSec := s.ClimbSec + s.BombSec + s.PullUpSec
	total := lakeSec + mountainSec + s.CinematicSec
	if total <= 0 {
		return 0, 0
	}
	return lakeSec / total, mountainSec / total
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	lake, mountain := s.LoopShare()
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("transitions", s.Transitions),
		slog.Int("laps", s.LapsCompleted),
		slog.Float64("lake_share", round3(lake)),
		slog.Float64("mountain_share", round3(mountain)),
		slog.Int("dive_splashes", s.DiveSplashes),
		slog.Int("skim_splashes", s.SkimSplashes),
		slog.Int("splashes_dropped", s.SplashesDropped),
		slog.Int("active_ripples", s.ActiveRipples),
		slog.Float64("speed_mean", round3(s.SpeedMean)),
		slog.Float64("speed_std", round3(s.SpeedStd)),
		slog.Float64("speed_p50", round3(s.SpeedP50)),
		slog.Float64("min_clearance", round3(s.MinClearance)),
		slog.Float64("max_bank", round3(s.MaxBank)),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.LogAttrs(context.Background(), slog.LevelInfo, "stats", s.LogValue().Group()...)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
