package telemetry

import (
	"math"

	"github.com/pthm-cable/vale/components"
)

// LapStats summarizes one trip around the loop. A lap starts each time the
// flyer enters ApproachLake.
type LapStats struct {
	Lap          int     `csv:"lap"`
	StartTime    float64 `csv:"start_time"`
	DurationSec  float64 `csv:"duration_sec"`
	Splashes     int     `csv:"splashes"`
	Dropped      int     `csv:"dropped"`
	MinClearance float64 `csv:"min_clearance"`
	PeakSpeed    float64 `csv:"peak_speed"`
}

// LapTracker accumulates per-lap statistics.
type LapTracker struct {
	current LapStats
	started bool
	count   int
	done    []LapStats
}

// NewLapTracker creates a tracker waiting for the first lap to start.
func NewLapTracker() *LapTracker {
	return &LapTracker{}
}

// OnTransition closes the running lap and opens a new one on entering ApproachLake.
func (lt *LapTracker) OnTransition(to components.FlightState, at float64) {
	if to != components.StateApproachLake {
		return
	}
	if lt.started {
		lt.current.DurationSec = at - lt.current.StartTime
		if math.IsInf(lt.current.MinClearance, 1) {
			lt.current.MinClearance = 0
		}
		lt.done = append(lt.done, lt.current)
		lt.count++
	}
	lt.started = true
	lt.current = LapStats{
		Lap:          lt.count + 1,
		StartTime:    at,
		MinClearance: math.Inf(1),
	}
}

// RecordSplash counts a splash request against the running lap.
func (lt *LapTracker) RecordSplash(spawned bool) {
	if !lt.started {
		return
	}
	if spawned {
		lt.current.Splashes++
	} else {
		lt.current.Dropped++
	}
}

// RecordTick samples speed and clearance into the running lap.
func (lt *LapTracker) RecordTick(speed, clearance float64) {
	if !lt.started {
		return
	}
	if speed > lt.current.PeakSpeed {
		lt.current.PeakSpeed = speed
	}
	if clearance < lt.current.MinClearance {
		lt.current.MinClearance = clearance
	}
}

// Drain returns the laps completed since the last call.
func (lt *LapTracker) Drain() []LapStats {
	out := lt.done
	lt.done = nil
	return out
}

// Completed returns the number of laps finished so far.
func (lt *LapTracker) Completed() int {
	return lt.count
}

// Running reports whether a lap is in progress.
func (lt *LapTracker) Running() bool {
	return lt.started
}
