package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/vale/config"
)

func init() {
	config.MustInit("")
}

func testHeightField() HeightField {
	return NewHeightField(config.Cfg().Terrain)
}

// TestHeightFieldDeterministic verifies two instances agree everywhere.
func TestHeightFieldDeterministic(t *testing.T) {
	a := testHeightField()
	b := testHeightField()

	for x := -300.0; x <= 300; x += 37.5 {
		for z := -300.0; z <= 300; z += 41.25 {
			if ha, hb := a.Height(x, z), b.Height(x, z); ha != hb {
				t.Fatalf("Height(%v, %v) differs: %v vs %v", x, z, ha, hb)
			}
			if a.Height(x, z) != a.Height(x, z) {
				t.Fatalf("Height(%v, %v) not repeatable", x, z)
			}
		}
	}
}

// TestHeightFieldFarFieldIsBase verifies the features leave distant terrain alone.
func TestHeightFieldFarFieldIsBase(t *testing.T) {
	h := testHeightField()
	if got, want := h.Height(500, 500), h.BaseHeight(500, 500); got != want {
		t.Errorf("Height(500, 500) = %v, want base %v", got, want)
	}
}

// TestHeightFieldMountain verifies the summit stands well above the base terrain.
func TestHeightFieldMountain(t *testing.T) {
	h := testHeightField()
	mx, mz := h.MountainCenter()

	lift := h.Height(mx, mz) - h.BaseHeight(mx, mz)
	if lift < 56 {
		t.Errorf("mountain lift at center = %.2f, want >= 56", lift)
	}

	// Falls off away from the summit
	if h.Height(mx+60, mz+60) >= h.Height(mx, mz) {
		t.Error("expected terrain to fall off away from the summit")
	}
}

// TestHeightFieldLake verifies the crater bottoms out at the floor and the
// shore points sit under water.
func TestHeightFieldLake(t *testing.T) {
	h := testHeightField()
	lx, lz := h.LakeCenter()
	rx, _ := h.LakeRadii()

	if got := h.Height(lx, lz); got != h.Floor() {
		t.Errorf("Height at lake center = %v, want floor %v", got, h.Floor())
	}

	inset := config.Cfg().Terrain.Lake.ShoreInset
	for _, x := range []float64{lx - inset*rx, lx, lx + inset*rx} {
		if !h.IsWet(x, lz) {
			t.Errorf("expected (%v, %v) to be under water, height %v", x, lz, h.Height(x, lz))
		}
	}
}

// TestHeightFieldBounds verifies the sampled range stays inside known limits.
func TestHeightFieldBounds(t *testing.T) {
	h := testHeightField()

	for x := -600.0; x <= 600; x += 7 {
		for z := -600.0; z <= 600; z += 7 {
			b := h.BaseHeight(x, z)
			if b < 2 || b > 22 {
				t.Fatalf("BaseHeight(%v, %v) = %v outside [2, 22]", x, z, b)
			}
			y := h.Height(x, z)
			if y < h.Floor() {
				t.Fatalf("Height(%v, %v) = %v below floor", x, z, y)
			}
			if math.IsNaN(y) {
				t.Fatalf("Height(%v, %v) is NaN", x, z)
			}
		}
	}
}

// TestSampleGrid verifies grid layout and corners.
func TestSampleGrid(t *testing.T) {
	h := testHeightField()
	const n = 9
	samples := h.SampleGrid(-100, -50, 200, n)

	if len(samples) != n*n {
		t.Fatalf("len = %d, want %d", len(samples), n*n)
	}
	if samples[0] != h.Height(-100, -50) {
		t.Errorf("first sample = %v, want %v", samples[0], h.Height(-100, -50))
	}
	if samples[n-1] != h.Height(100, -50) {
		t.Errorf("row end = %v, want %v", samples[n-1], h.Height(100, -50))
	}
	if samples[n*n-1] != h.Height(100, 150) {
		t.Errorf("last sample = %v, want %v", samples[n*n-1], h.Height(100, 150))
	}

	lo, hi := HeightRange(samples)
	if lo > hi {
		t.Errorf("HeightRange returned lo %v > hi %v", lo, hi)
	}
}
