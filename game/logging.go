package game

import (
	"fmt"
	"io"
	"time"

	"github.com/pthm-cable/vale/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted, human-readable log line.
func Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats dumps the rolling phase timings.
func (g *Game) logPerfStats() {
	stats := g.perfCollector.Stats()
	Logf("=== Perf @ Tick %d (speed %dx) | FPS: %.0f ===", g.scene.Tick(), g.stepsPerUpdate, stats.FPS)
	Logf("Avg tick: %s (min %s, max %s)",
		stats.AvgTickDuration.Round(time.Microsecond),
		stats.MinTickDuration.Round(time.Microsecond),
		stats.MaxTickDuration.Round(time.Microsecond))

	for ph := telemetry.Phase(0); ph < telemetry.NumPhases; ph++ {
		Logf("  %-12s %10s  %5.1f%%", ph, stats.PhaseAvg[ph].Round(time.Microsecond), stats.PhasePct[ph])
	}

	tr := g.scene.Transform()
	Logf("Flyer: %s at (%.1f, %.1f, %.1f), speed %.1f, ripples %d/%d",
		tr.State, tr.Position.X, tr.Position.Y, tr.Position.Z, tr.Speed,
		g.scene.Ripples().ActiveCount(), g.scene.Ripples().Capacity())
	Logf("")
}
