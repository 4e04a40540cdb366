// Package telemetry provides flight loop health tracking, bookmarking and experiment output.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
)

// TransitionEvent records one state change of the flight loop.
type TransitionEvent struct {
	Time float64 `csv:"time"`
	From string  `csv:"from"`
	To   string  `csv:"to"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
	Z    float64 `csv:"z"`
}

// NewTransitionEvent creates a transition event at position pos.
func NewTransitionEvent(from, to components.FlightState, at float64, pos r3.Vec) TransitionEvent {
	return TransitionEvent{
		Time: at,
		From: from.String(),
		To:   to.String(),
		X:    pos.X,
		Y:    pos.Y,
		Z:    pos.Z,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (e TransitionEvent) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("time", e.Time),
		slog.String("from", e.From),
		slog.String("to", e.To),
		slog.Float64("y", e.Y),
	)
}
