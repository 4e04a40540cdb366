package systems

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// TerrainBand classifies a terrain vertex for coloring.
type TerrainBand uint8

const (
	BandLakeBed TerrainBand = iota // Under water
	BandShore                      // Just above the waterline
	BandGrass
	BandRock // Steep or high
	BandSnow // Near the summit
)

// Band thresholds, relative to the water plane or absolute.
const (
	shoreHeight = 2.5  // Above water
	rockHeight  = 45.0 // Absolute
	snowHeight  = 62.0 // Absolute
	rockSlope   = 0.75 // Normal Y below this is rock
)

// maxMeshSide keeps vertex indices within uint16.
const maxMeshSide = 256

// TerrainMesh is a triangulated grid sampled from a height field.
// Vertices, Normals hold xyz triples; Indices hold counter-clockwise
// triangles seen from above.
type TerrainMesh struct {
	N          int // Vertices per side
	MinX, MinZ float64
	Step       float64

	Vertices []float32
	Normals  []float32
	Bands    []TerrainBand
	Indices  []uint16
}

// BuildTerrainMesh samples an n×n grid covering the field's extent,
// centered on the origin.
func BuildTerrainMesh(h HeightField, n int) TerrainMesh {
	if n > maxMeshSide {
		n = maxMeshSide
	}
	if n < 2 {
		n = 2
	}

	size := h.Extent()
	minX, minZ := -size/2, -size/2
	step := size / float64(n-1)
	heights := h.SampleGrid(minX, minZ, size, n)

	m := TerrainMesh{
		N:        n,
		MinX:     minX,
		MinZ:     minZ,
		Step:     step,
		Vertices: make([]float32, 0, n*n*3),
		Normals:  make([]float32, 0, n*n*3),
		Bands:    make([]TerrainBand, 0, n*n),
		Indices:  make([]uint16, 0, (n-1)*(n-1)*6),
	}

	at := func(i, j int) float64 {
		i = min(max(i, 0), n-1)
		j = min(max(j, 0), n-1)
		return heights[j*n+i]
	}

	water := h.WaterLevel()
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			y := at(i, j)
			x := minX + float64(i)*step
			z := minZ + float64(j)*step

			// Central differences; one-sided at the border
			dx := (at(i+1, j) - at(i-1, j)) / (2 * step)
			dz := (at(i, j+1) - at(i, j-1)) / (2 * step)
			nrm := r3.Unit(r3.Vec{X: -dx, Y: 1, Z: -dz})

			m.Vertices = append(m.Vertices, float32(x), float32(y), float32(z))
			m.Normals = append(m.Normals, float32(nrm.X), float32(nrm.Y), float32(nrm.Z))
			m.Bands = append(m.Bands, classify(y, nrm.Y, water))
		}
	}

	for j := 0; j < n-1; j++ {
		for i := 0; i < n-1; i++ {
			a := uint16(j*n + i)
			b := uint16((j+1)*n + i)
			c := a + 1
			d := b + 1
			m.Indices = append(m.Indices, a, b, c, c, b, d)
		}
	}

	return m
}

// classify picks the band for a vertex at height y with normal Y component ny.
func classify(y, ny, water float64) TerrainBand {
	switch {
	case y < water:
		return BandLakeBed
	case y < water+shoreHeight:
		return BandShore
	case y > snowHeight:
		return BandSnow
	case y > rockHeight || ny < rockSlope:
		return BandRock
	}
	return BandGrass
}

// VertexCount returns the number of vertices.
func (m *TerrainMesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *TerrainMesh) TriangleCount() int {
	return len(m.Indices) / 3
}
