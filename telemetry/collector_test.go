package telemetry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1, 0.1)
	if got := c.WindowDurationTicks(); got != 10 {
		t.Fatalf("WindowDurationTicks() = %d, want 10", got)
	}

	for i := 0; i < 4; i++ {
		c.RecordTick(components.Transform{State: components.StateSkim, Speed: 18}, 0.5)
	}
	c.OnTransition(components.StateSkim, components.StateClimbMountain, 0.4, r3.Vec{X: 1, Y: 2, Z: 3})
	for i := 0; i < 6; i++ {
		c.RecordTick(components.Transform{State: components.StateClimbMountain, Speed: 26, Bank: -0.3}, 4)
	}
	c.OnSplash(components.SplashSkim, 0.2, true)
	c.OnSplash(components.SplashDive, 0.3, true)
	c.OnSplash(components.SplashSkim, 0.3, false)

	if c.ShouldFlush(9) {
		t.Error("ShouldFlush(9) = true before the window ends")
	}
	if !c.ShouldFlush(10) {
		t.Fatal("ShouldFlush(10) = false at window end")
	}

	s := c.Flush(10, 2)
	if math.Abs(s.SkimSec-0.4) > 1e-9 || math.Abs(s.ClimbSec-0.6) > 1e-9 {
		t.Errorf("state seconds skim=%v climb=%v, want 0.4 and 0.6", s.SkimSec, s.ClimbSec)
	}
	if s.Transitions != 1 {
		t.Errorf("Transitions = %d, want 1", s.Transitions)
	}
	if s.DiveSplashes != 1 || s.SkimSplashes != 1 || s.SplashesDropped != 1 {
		t.Errorf("splashes dive=%d skim=%d dropped=%d, want 1 each", s.DiveSplashes, s.SkimSplashes, s.SplashesDropped)
	}
	if s.ActiveRipples != 2 {
		t.Errorf("ActiveRipples = %d, want 2", s.ActiveRipples)
	}
	if s.MinClearance != 0.5 {
		t.Errorf("MinClearance = %v, want 0.5", s.MinClearance)
	}
	if s.MaxBank != 0.3 {
		t.Errorf("MaxBank = %v, want 0.3", s.MaxBank)
	}
	if math.Abs(s.SpeedMean-(4*18+6*26)/10.0) > 1e-9 {
		t.Errorf("SpeedMean = %v", s.SpeedMean)
	}

	events := c.DrainEvents()
	if len(events) != 1 || events[0].From != "skim" || events[0].To != "climb_mountain" || events[0].Y != 2 {
		t.Errorf("DrainEvents() = %+v", events)
	}
	if c.DrainEvents() != nil {
		t.Error("events not drained")
	}

	// Next window starts clean
	s = c.Flush(20, 0)
	if s.Transitions != 0 || s.SpeedMean != 0 || s.MinClearance != 0 {
		t.Errorf("empty window not reset: %+v", s)
	}
	if s.WindowStartTick != 10 {
		t.Errorf("WindowStartTick = %d, want 10", s.WindowStartTick)
	}
}

func TestCollectorLaps(t *testing.T) {
	c := NewCollector(10, 0.1)

	c.OnTransition(components.StatePullUp, components.StateApproachLake, 5, r3.Vec{})
	c.RecordTick(components.Transform{State: components.StateApproachLake, Speed: 30}, 10)
	c.OnSplash(components.SplashDive, 6, true)
	c.RecordTick(components.Transform{State: components.StateSkim, Speed: 18}, 0.4)
	c.OnTransition(components.StatePullUp, components.StateApproachLake, 33, r3.Vec{})

	laps := c.DrainLaps()
	if len(laps) != 1 {
		t.Fatalf("DrainLaps() returned %d laps, want 1", len(laps))
	}
	lap := laps[0]
	if lap.Lap != 1 || lap.StartTime != 5 || lap.DurationSec != 28 {
		t.Errorf("lap = %+v", lap)
	}
	if lap.Splashes != 1 || lap.PeakSpeed != 30 || lap.MinClearance != 0.4 {
		t.Errorf("lap = %+v", lap)
	}

	if s := c.Flush(100, 0); s.LapsCompleted != 1 {
		t.Errorf("LapsCompleted = %d, want 1", s.LapsCompleted)
	}

	c.Reset()
	if c.DrainLaps() != nil || c.DrainEvents() != nil {
		t.Error("Reset kept laps or events")
	}
}
