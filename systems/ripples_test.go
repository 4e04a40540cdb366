package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/vale/config"
)

func testRipplePool() *RipplePool {
	cfg := config.Cfg()
	return NewRipplePool(cfg.Ripples, cfg.Terrain.WaterLevel)
}

// TestRipplePoolCapacity verifies a full pool drops extra spawns.
func TestRipplePoolCapacity(t *testing.T) {
	p := testRipplePool()
	n := p.Capacity()
	if n != 5 {
		t.Fatalf("Capacity() = %d, want 5", n)
	}

	for i := 0; i < n; i++ {
		if !p.Spawn(float64(i), 0, 1) {
			t.Fatalf("spawn %d rejected with free slots", i)
		}
	}
	if p.Spawn(99, 99, 1) {
		t.Error("spawn accepted on a full pool")
	}
	if got := p.ActiveCount(); got != n {
		t.Errorf("ActiveCount() = %d, want %d", got, n)
	}
}

// TestRipplePoolAging verifies life falls, scale grows and each entry
// deactivates exactly once.
func TestRipplePoolAging(t *testing.T) {
	p := testRipplePool()
	p.Spawn(1, 2, 1.2)
	p.Spawn(3, 4, 0.5)

	deactivations := make([]int, p.Capacity())
	prev := make([]float64, p.Capacity())
	prevScale := make([]float64, p.Capacity())
	for i := range prev {
		prev[i] = p.Entry(i).Life
		prevScale[i] = p.Entry(i).Scale
	}

	for step := 0; step < 200; step++ {
		before := make([]bool, p.Capacity())
		for i := range before {
			before[i] = p.Entry(i).Active
		}

		p.Tick(0.05)

		for i := range before {
			e := p.Entry(i)
			if before[i] && !e.Active {
				deactivations[i]++
			}
			if !before[i] && e.Active {
				t.Fatalf("slot %d reactivated without a spawn", i)
			}
			if e.Active {
				if e.Life >= prev[i] {
					t.Errorf("slot %d life did not fall: %v -> %v", i, prev[i], e.Life)
				}
				if e.Scale <= prevScale[i] {
					t.Errorf("slot %d scale did not grow: %v -> %v", i, prevScale[i], e.Scale)
				}
			}
			prev[i] = e.Life
			prevScale[i] = e.Scale
		}
	}

	if deactivations[0] != 1 || deactivations[1] != 1 {
		t.Errorf("deactivations = %v, want one each for the two spawned slots", deactivations)
	}
	if got := p.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount() = %d after expiry, want 0", got)
	}
}

// TestRipplePoolReuse verifies expired slots are reused.
func TestRipplePoolReuse(t *testing.T) {
	p := testRipplePool()
	for i := 0; i < p.Capacity(); i++ {
		p.Spawn(0, 0, 1)
	}
	for i := 0; i < 100; i++ {
		p.Tick(0.05)
	}
	if !p.Spawn(5, 6, 1) {
		t.Fatal("spawn rejected after all slots expired")
	}
	e := p.Entry(0)
	if !e.Active || e.Position.X != 5 || e.Position.Z != 6 {
		t.Errorf("expected slot 0 reused at (5, 6), got %+v", e)
	}
}

// TestRipplePoolOpacity verifies opacity tracks remaining life.
func TestRipplePoolOpacity(t *testing.T) {
	cfg := config.Cfg().Ripples
	p := testRipplePool()
	p.Spawn(0, 0, 1)

	views := p.Active(nil)
	if len(views) != 1 {
		t.Fatalf("Active() returned %d views, want 1", len(views))
	}
	if math.Abs(views[0].Opacity-cfg.BaseOpacity) > 1e-9 {
		t.Errorf("fresh opacity = %v, want %v", views[0].Opacity, cfg.BaseOpacity)
	}
	wantY := config.Cfg().Terrain.WaterLevel + cfg.DecalOffset
	if views[0].Position.Y != wantY {
		t.Errorf("decal height = %v, want %v", views[0].Position.Y, wantY)
	}

	// Half the life gone
	p.Tick(cfg.MaxLife / cfg.FadeRate / 2)
	e := p.Entry(0)
	if got, want := p.Opacity(e), cfg.BaseOpacity/2; math.Abs(got-want) > 1e-9 {
		t.Errorf("half-life opacity = %v, want %v", got, want)
	}

	p.Tick(cfg.MaxLife / cfg.FadeRate)
	if got := p.Opacity(p.Entry(0)); got != 0 {
		t.Errorf("expired opacity = %v, want 0", got)
	}
}
