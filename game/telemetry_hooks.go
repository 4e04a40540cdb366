package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
	"github.com/pthm-cable/vale/telemetry"
)

// sceneObserver forwards flight events to the collector and the log.
type sceneObserver struct {
	g *Game
}

func (o *sceneObserver) OnTransition(from, to components.FlightState, at float64, pos r3.Vec) {
	o.g.collector.OnTransition(from, to, at, pos)
	slog.Debug("state transition", "event", telemetry.NewTransitionEvent(from, to, at, pos))
}

func (o *sceneObserver) OnSplash(kind components.SplashKind, at float64, spawned bool) {
	o.g.collector.OnSplash(kind, at, spawned)
	if !spawned {
		slog.Debug("splash dropped", "kind", kind.String(), "t", at)
	}
}

// flushTelemetry closes the stats window when it is due, or unconditionally
// when force is set, and writes everything pending.
func (g *Game) flushTelemetry(force bool) {
	tick := g.scene.Tick()
	if !g.collector.ShouldFlush(tick) && !(force && g.collector.HasPending(tick)) {
		return
	}

	stats := g.collector.Flush(tick, g.scene.Ripples().ActiveCount())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		slog.Info("perf", "stats", perfStats)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WriteTransitions(g.collector.DrainEvents()); err != nil {
			slog.Error("failed to write transitions", "error", err)
		}
		if err := g.outputManager.WriteLaps(g.collector.DrainLaps()); err != nil {
			slog.Error("failed to write laps", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	} else {
		// Keep the buffers bounded when nothing consumes them
		g.collector.DrainEvents()
		g.collector.DrainLaps()
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}
