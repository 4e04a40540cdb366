package systems

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// TestBuildTerrainMeshLayout verifies counts and index bounds.
func TestBuildTerrainMeshLayout(t *testing.T) {
	h := testHeightField()
	m := BuildTerrainMesh(h, 33)

	if got := m.VertexCount(); got != 33*33 {
		t.Fatalf("VertexCount() = %d, want %d", got, 33*33)
	}
	if got := m.TriangleCount(); got != 2*32*32 {
		t.Fatalf("TriangleCount() = %d, want %d", got, 2*32*32)
	}
	if len(m.Normals) != len(m.Vertices) || len(m.Bands) != m.VertexCount() {
		t.Fatal("attribute lengths disagree")
	}
	for i, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}

	// Vertices carry the field's heights
	if got, want := float64(m.Vertices[1]), h.Height(m.MinX, m.MinZ); float32(want) != float32(got) {
		t.Errorf("first vertex height %v, want %v", got, want)
	}
}

// TestBuildTerrainMeshWinding verifies every triangle faces up.
func TestBuildTerrainMeshWinding(t *testing.T) {
	m := BuildTerrainMesh(testHeightField(), 17)

	vert := func(i uint16) r3.Vec {
		return r3.Vec{
			X: float64(m.Vertices[3*int(i)]),
			Y: float64(m.Vertices[3*int(i)+1]),
			Z: float64(m.Vertices[3*int(i)+2]),
		}
	}
	for k := 0; k < len(m.Indices); k += 3 {
		a, b, c := vert(m.Indices[k]), vert(m.Indices[k+1]), vert(m.Indices[k+2])
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if n.Y <= 0 {
			t.Fatalf("triangle %d faces down: normal %v", k/3, n)
		}
	}
	for i := 1; i < len(m.Normals); i += 3 {
		if m.Normals[i] <= 0 {
			t.Fatalf("vertex normal %d points down", i/3)
		}
	}
}

// TestBuildTerrainMeshClamp verifies the side length stays within uint16 indices.
func TestBuildTerrainMeshClamp(t *testing.T) {
	m := BuildTerrainMesh(testHeightField(), 1000)
	if m.N != maxMeshSide {
		t.Errorf("N = %d, want %d", m.N, maxMeshSide)
	}
}

func TestClassify(t *testing.T) {
	const water = -2.0
	tests := []struct {
		name string
		y    float64
		ny   float64
		want TerrainBand
	}{
		{"lake bed", -10, 1, BandLakeBed},
		{"shore", -1, 1, BandShore},
		{"grass", 10, 0.95, BandGrass},
		{"steep", 10, 0.5, BandRock},
		{"high", 50, 0.95, BandRock},
		{"summit", 70, 0.95, BandSnow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.y, tt.ny, water); got != tt.want {
				t.Errorf("classify(%v, %v) = %v, want %v", tt.y, tt.ny, got, tt.want)
			}
		})
	}
}
