package systems

import (
	"math"

	"github.com/pthm-cable/vale/config"
)

// HeightField maps a horizontal coordinate to terrain elevation.
// It is an immutable value: the terrain mesh and the flight controller's
// avoidance sample the same instance and always agree.
type HeightField struct {
	cfg config.TerrainConfig
}

// NewHeightField creates a height field from terrain constants.
func NewHeightField(cfg config.TerrainConfig) HeightField {
	return HeightField{cfg: cfg}
}

// Height returns the terrain elevation at (x, z).
func (h HeightField) Height(x, z float64) float64 {
	// 1. Rolling hills plus micro-relief
	y := h.BaseHeight(x, z)

	// 2. Warped mountain dome
	y += h.mountain(x, z)

	// 3. Distorted lake crater
	y -= h.lake(x, z)

	// 4. Floor bounds worst-case depth
	if y < h.cfg.Floor {
		y = h.cfg.Floor
	}
	return y
}

// BaseHeight returns the featureless rolling terrain at (x, z), before the
// mountain and lake are applied.
func (h HeightField) BaseHeight(x, z float64) float64 {
	b := h.cfg.Base

	n := math.Sin(x*b.PrimaryFreq.X)*math.Cos(z*b.PrimaryFreq.Z)*b.PrimaryAmp +
		math.Sin(x*b.SecondFreq.X+b.SecondPhase.X)*math.Cos(z*b.SecondFreq.Z+b.SecondPhase.Z)*b.SecondAmp
	detail := math.Sin(x*b.DetailFreq.X+b.DetailPhase) * math.Cos(z*b.DetailFreq.Z) * b.DetailAmp

	return n*b.Scale + b.Offset + detail
}

// mountain returns the dome contribution at (x, z).
func (h HeightField) mountain(x, z float64) float64 {
	m := h.cfg.Mountain
	dx := x - m.Center.X
	dz := z - m.Center.Z

	// Warp relative to the center so the summit stays put
	wx := dx + m.WarpAmp*math.Sin(dz*m.WarpFreq)
	wz := dz + m.WarpAmp*math.Sin(dx*m.WarpFreq)

	d := math.Sqrt(wx*wx+wz*wz) / m.Radius
	if d >= 1 {
		return 0
	}

	bell := 0.5 + 0.5*math.Cos(d*math.Pi)
	ridges := math.Sin(x*m.RoughFreq.X) * math.Cos(z*m.RoughFreq.Z) * m.Roughness

	return bell*m.Height + bell*ridges
}

// lake returns the crater depth at (x, z), as a positive value to subtract.
func (h HeightField) lake(x, z float64) float64 {
	l := h.cfg.Lake
	dx := x - l.Center.X
	dz := z - l.Center.Z

	// Each axis is pushed around by a sinusoid of the other one
	lx := (dx + l.ShoreAmp.X*math.Sin(dz*l.ShoreFreq.X)) / l.RadiusX
	lz := (dz + l.ShoreAmp.Z*math.Sin(dx*l.ShoreFreq.Z)) / l.RadiusZ

	d := math.Sqrt(lx*lx + lz*lz)
	if d >= 1 {
		return 0
	}

	falloff := 1 - d
	return falloff * falloff * l.Depth
}

// WaterLevel returns the height of the water plane.
func (h HeightField) WaterLevel() float64 {
	return h.cfg.WaterLevel
}

// Floor returns the lowest elevation the field can produce.
func (h HeightField) Floor() float64 {
	return h.cfg.Floor
}

// IsWet returns true if the terrain at (x, z) lies below the water plane.
func (h HeightField) IsWet(x, z float64) bool {
	return h.Height(x, z) < h.cfg.WaterLevel
}

// MountainCenter returns the horizontal summit position.
func (h HeightField) MountainCenter() (x, z float64) {
	return h.cfg.Mountain.Center.X, h.cfg.Mountain.Center.Z
}

// LakeCenter returns the horizontal lake center.
func (h HeightField) LakeCenter() (x, z float64) {
	return h.cfg.Lake.Center.X, h.cfg.Lake.Center.Z
}

// LakeRadii returns the lake's X and Z radii.
func (h HeightField) LakeRadii() (rx, rz float64) {
	return h.cfg.Lake.RadiusX, h.cfg.Lake.RadiusZ
}

// Extent returns the side length of the rendered terrain square.
func (h HeightField) Extent() float64 {
	return h.cfg.Extent
}

// SampleGrid samples an n×n grid covering [minX, minX+size] × [minZ, minZ+size].
// Row-major by z, then x. The returned slice has n*n entries.
func (h HeightField) SampleGrid(minX, minZ, size float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n*n)
	step := size / float64(n-1)
	for j := 0; j < n; j++ {
		z := minZ + float64(j)*step
		for i := 0; i < n; i++ {
			out[j*n+i] = h.Height(minX+float64(i)*step, z)
		}
	}
	return out
}

// HeightRange returns the min and max of a sampled grid.
func HeightRange(samples []float64) (lo, hi float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	lo, hi = samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
