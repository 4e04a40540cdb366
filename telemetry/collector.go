package telemetry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
)

// Collector accumulates flight events within time windows and produces WindowStats.
// It satisfies the flight controller's observer interface.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Counters for current window
	stateTicks      [components.NumFlightStates]int
	transitions     int
	diveSplashes    int
	skimSplashes    int
	splashesDropped int

	// Per-tick samples for current window
	speeds       []float64
	minClearance float64
	maxBank      float64

	events []TransitionEvent
	laps   *LapTracker
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	c := &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		speeds:              make([]float64, 0, ticksPerWindow),
		laps:                NewLapTracker(),
	}
	c.resetWindow(0)
	return c
}

// OnTransition records a state change.
func (c *Collector) OnTransition(from, to components.FlightState, at float64, pos r3.Vec) {
	c.transitions++
	c.events = append(c.events, NewTransitionEvent(from, to, at, pos))
	c.laps.OnTransition(to, at)
}

// OnSplash records a splash request and whether the pool accepted it.
func (c *Collector) OnSplash(kind components.SplashKind, _ float64, spawned bool) {
	if !spawned {
		c.splashesDropped++
	} else if kind == components.SplashDive {
		c.diveSplashes++
	} else {
		c.skimSplashes++
	}
	c.laps.RecordSplash(spawned)
}

// RecordTick samples the flyer after a simulation tick.
// clearance is the height above the contact floor.
func (c *Collector) RecordTick(tr components.Transform, clearance float64) {
	if tr.State < components.NumFlightStates {
		c.stateTicks[tr.State]++
	}
	c.speeds = append(c.speeds, tr.Speed)
	if clearance < c.minClearance {
		c.minClearance = clearance
	}
	if b := math.Abs(tr.Bank); b > c.maxBank {
		c.maxBank = b
	}
	c.laps.RecordTick(tr.Speed, clearance)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// activeRipples is the pool occupancy at window end.
func (c *Collector) Flush(currentTick int32, activeRipples int) WindowStats {
	speedMean, speedStd, speedP10, speedP50, speedP90 := ComputeSpeedStats(c.speeds)

	minClearance := c.minClearance
	if len(c.speeds) == 0 {
		minClearance = 0
	}

	secs := func(s components.FlightState) float64 {
		return float64(c.stateTicks[s]) * c.dt
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		CinematicSec: secs(components.StateCinematicEntry),
		ApproachSec:  secs(components.StateApproachLake),
		DiveSec:      secs(components.StateDiveLake),
		SkimSec:      secs(components.StateSkim),
		ClimbSec:     secs(components.StateClimbMountain),
		BombSec:      secs(components.StateDiveBomb),
		PullUpSec:    secs(components.StatePullUp),

		Transitions:   c.transitions,
		LapsCompleted: c.laps.Completed(),

		DiveSplashes:    c.diveSplashes,
		SkimSplashes:    c.skimSplashes,
		SplashesDropped: c.splashesDropped,
		ActiveRipples:   activeRipples,

		SpeedMean: speedMean,
		SpeedStd:  speedStd,
		SpeedP10:  speedP10,
		SpeedP50:  speedP50,
		SpeedP90:  speedP90,

		MinClearance: minClearance,
		MaxBank:      c.maxBank,
	}

	c.resetWindow(currentTick)
	return stats
}

// resetWindow clears the window counters.
func (c *Collector) resetWindow(startTick int32) {
	c.windowStartTick = startTick
	c.stateTicks = [components.NumFlightStates]int{}
	c.transitions = 0
	c.diveSplashes = 0
	c.skimSplashes = 0
	c.splashesDropped = 0
	c.speeds = c.speeds[:0]
	c.minClearance = math.Inf(1)
	c.maxBank = 0
}

// Reset discards all window, event and lap state, for a scene reset.
func (c *Collector) Reset() {
	c.resetWindow(0)
	c.events = c.events[:0]
	c.laps = NewLapTracker()
}

// DrainEvents returns the transitions recorded since the last call.
func (c *Collector) DrainEvents() []TransitionEvent {
	if len(c.events) == 0 {
		return nil
	}
	out := make([]TransitionEvent, len(c.events))
	copy(out, c.events)
	c.events = c.events[:0]
	return out
}

// DrainLaps returns the laps completed since the last call.
func (c *Collector) DrainLaps() []LapStats {
	return c.laps.Drain()
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

// LapsCompleted returns the number of laps finished since the last reset.
func (c *Collector) LapsCompleted() int {
	return c.laps.Completed()
}

// HasPending reports whether ticks have been recorded since the last flush.
func (c *Collector) HasPending(currentTick int32) bool {
	return currentTick > c.windowStartTick
}
