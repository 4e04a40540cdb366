package systems

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/components"
	"github.com/pthm-cable/vale/config"
)

// RipplePool manages a fixed set of splash decals on the water surface.
// Slots are allocated once; spawning reuses inactive slots and a full pool
// drops the request.
type RipplePool struct {
	entries []components.RippleEntry

	surfaceY      float64
	maxLife       float64
	fadeRate      float64
	expansionRate float64
	baseOpacity   float64
}

// NewRipplePool creates a pool with every slot inactive.
func NewRipplePool(cfg config.RipplesConfig, waterLevel float64) *RipplePool {
	return &RipplePool{
		entries:       make([]components.RippleEntry, cfg.Capacity),
		surfaceY:      waterLevel + cfg.DecalOffset,
		maxLife:       cfg.MaxLife,
		fadeRate:      cfg.FadeRate,
		expansionRate: cfg.ExpansionRate,
		baseOpacity:   cfg.BaseOpacity,
	}
}

// Spawn activates the first free slot at (x, z). Returns false when the pool is full.
func (p *RipplePool) Spawn(x, z, initialScale float64) bool {
	for i := range p.entries {
		e := &p.entries[i]
		if e.Active {
			continue
		}
		e.Position = r3.Vec{X: x, Y: p.surfaceY, Z: z}
		e.Scale = initialScale
		e.MaxLife = p.maxLife
		e.Life = p.maxLife
		e.Active = true
		return true
	}
	return false
}

// Tick ages every active splash and recycles the expired ones.
func (p *RipplePool) Tick(dt float64) {
	for i := range p.entries {
		e := &p.entries[i]
		if !e.Active {
			continue
		}

		e.Life -= dt * p.fadeRate
		e.Scale += dt * p.expansionRate

		if e.Life <= 0 {
			e.Active = false
			e.Scale = 0
		}
	}
}

// Opacity returns the render opacity of an entry, derived from its remaining life.
func (p *RipplePool) Opacity(e components.RippleEntry) float64 {
	if !e.Active || e.MaxLife <= 0 {
		return 0
	}
	ratio := e.Life / e.MaxLife
	if ratio < 0 {
		ratio = 0
	}
	return ratio * p.baseOpacity
}

// Active appends a view of each active splash to dst and returns it.
func (p *RipplePool) Active(dst []components.RippleView) []components.RippleView {
	for i := range p.entries {
		e := p.entries[i]
		if !e.Active {
			continue
		}
		dst = append(dst, components.RippleView{
			Position: e.Position,
			Scale:    e.Scale,
			Opacity:  p.Opacity(e),
		})
	}
	return dst
}

// ActiveCount returns the number of live splashes.
func (p *RipplePool) ActiveCount() int {
	n := 0
	for i := range p.entries {
		if p.entries[i].Active {
			n++
		}
	}
	return n
}

// Capacity returns the number of slots.
func (p *RipplePool) Capacity() int {
	return len(p.entries)
}

// Entry returns a copy of slot i.
func (p *RipplePool) Entry(i int) components.RippleEntry {
	return p.entries[i]
}
