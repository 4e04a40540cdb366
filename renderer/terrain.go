package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/systems"
)

// Band palette, unlit.
var bandColors = [...]rl.Color{
	systems.BandLakeBed: {R: 70, G: 78, B: 72, A: 255},
	systems.BandShore:   {R: 176, G: 164, B: 120, A: 255},
	systems.BandGrass:   {R: 86, G: 128, B: 62, A: 255},
	systems.BandRock:    {R: 112, G: 104, B: 98, A: 255},
	systems.BandSnow:    {R: 236, G: 238, B: 244, A: 255},
}

// Directional light used for the baked terrain shading.
var sunDir = r3.Unit(r3.Vec{X: -0.4, Y: 0.8, Z: 0.35})

const ambient = 0.35

type shadedTriangle struct {
	a, b, c rl.Vector3
	color   rl.Color
}

// TerrainRenderer draws the height field as band-colored triangles with
// lighting baked in once at Init.
type TerrainRenderer struct {
	resolution  int
	tris        []shadedTriangle
	initialized bool
}

// NewTerrainRenderer creates a renderer sampling resolution vertices per side.
func NewTerrainRenderer(resolution int) *TerrainRenderer {
	return &TerrainRenderer{resolution: resolution}
}

// Init triangulates the height field. Safe to call before the window exists.
func (r *TerrainRenderer) Init(h systems.HeightField) {
	if r.initialized {
		return
	}
	mesh := systems.BuildTerrainMesh(h, r.resolution)

	vertex := func(i uint16) rl.Vector3 {
		k := int(i) * 3
		return rl.NewVector3(mesh.Vertices[k], mesh.Vertices[k+1], mesh.Vertices[k+2])
	}
	shade := func(i uint16) [3]float32 {
		k := int(i) * 3
		n := r3.Vec{X: float64(mesh.Normals[k]), Y: float64(mesh.Normals[k+1]), Z: float64(mesh.Normals[k+2])}
		lambert := r3.Dot(n, sunDir)
		if lambert < 0 {
			lambert = 0
		}
		light := float32(ambient + (1-ambient)*lambert)
		c := bandColors[mesh.Bands[i]]
		return [3]float32{float32(c.R) * light, float32(c.G) * light, float32(c.B) * light}
	}

	r.tris = make([]shadedTriangle, 0, mesh.TriangleCount())
	for t := 0; t+2 < len(mesh.Indices); t += 3 {
		ia, ib, ic := mesh.Indices[t], mesh.Indices[t+1], mesh.Indices[t+2]
		sa, sb, sc := shade(ia), shade(ib), shade(ic)
		r.tris = append(r.tris, shadedTriangle{
			a: vertex(ia),
			b: vertex(ib),
			c: vertex(ic),
			color: rl.Color{
				R: uint8((sa[0] + sb[0] + sc[0]) / 3),
				G: uint8((sa[1] + sb[1] + sc[1]) / 3),
				B: uint8((sa[2] + sb[2] + sc[2]) / 3),
				A: 255,
			},
		})
	}
	r.initialized = true
}

// Draw renders the terrain. Must be called inside BeginMode3D.
func (r *TerrainRenderer) Draw() {
	for i := range r.tris {
		t := &r.tris[i]
		rl.DrawTriangle3D(t.a, t.b, t.c, t.color)
	}
}

// TriangleCount returns the number of cached triangles.
func (r *TerrainRenderer) TriangleCount() int {
	return len(r.tris)
}

// toVector3 converts a simulation vector to a raylib vector.
func toVector3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
