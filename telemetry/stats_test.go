package telemetry

import (
	"math"
	"testing"
)

func TestComputeSpeedStats(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	mean, std, p10, p50, p90 := ComputeSpeedStats(values)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mean", mean, 5.5},
		{"std", std, 3.0277},
		{"p10", p10, 1},
		{"p50", p50, 5},
		{"p90", p90, 9},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 0.001 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// Input is left untouched
	if values[0] != 10 {
		t.Error("ComputeSpeedStats sorted its input")
	}
}

func TestComputeSpeedStatsSmall(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeSpeedStats(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}

	mean, std, _, p50, _ = ComputeSpeedStats([]float64{12})
	if mean != 12 || std != 0 || p50 != 12 {
		t.Errorf("single sample: mean=%v std=%v p50=%v", mean, std, p50)
	}
}

func TestLoopShare(t *testing.T) {
	s := WindowStats{ApproachSec: 2, DiveSec: 1, SkimSec: 1, ClimbSec: 3, BombSec: 2, PullUpSec: 1}
	lake, mountain := s.LoopShare()
	if math.Abs(lake-0.4) > 1e-9 || math.Abs(mountain-0.6) > 1e-9 {
		t.Errorf("LoopShare() = %v, %v, want 0.4, 0.6", lake, mountain)
	}

	if lake, mountain := (WindowStats{}).LoopShare(); lake != 0 || mountain != 0 {
		t.Error("empty window should have zero shares")
	}
}
