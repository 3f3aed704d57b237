package terrain

import "testing"

func TestBuildGridCounts(t *testing.T) {
	m := BuildGrid(4, 10)

	if got := len(m.Vertices); got != 16 {
		t.Errorf("vertex count = %d, want 16", got)
	}
	if got := len(m.Indices); got != 3*3*6 {
		t.Errorf("index count = %d, want %d", got, 3*3*6)
	}
}

func TestBuildGridCentered(t *testing.T) {
	m := BuildGrid(3, 10)

	first := m.Vertices[0].Position
	last := m.Vertices[len(m.Vertices)-1].Position
	if first[0] != -5 || first[2] != -5 {
		t.Errorf("first vertex at (%v, %v), want (-5, -5)", first[0], first[2])
	}
	if last[0] != 5 || last[2] != 5 {
		t.Errorf("last vertex at (%v, %v), want (5, 5)", last[0], last[2])
	}

	for i, v := range m.Vertices {
		if v.Position[1] != 0 {
			t.Fatalf("vertex %d has Y %v, want 0", i, v.Position[1])
		}
	}
}

func TestBuildGridUVRange(t *testing.T) {
	m := BuildGrid(5, 20)

	first := m.Vertices[0].UV
	last := m.Vertices[len(m.Vertices)-1].UV
	if first[0] != 0 || first[1] != 0 {
		t.Errorf("first UV = %v, want (0, 0)", first)
	}
	if last[0] != 1 || last[1] != 1 {
		t.Errorf("last UV = %v, want (1, 1)", last)
	}
}

func TestBuildGridIndicesInRange(t *testing.T) {
	m := BuildGrid(6, 10)

	max := uint32(len(m.Vertices))
	for _, idx := range m.Indices {
		if idx >= max {
			t.Fatalf("index %d out of range (%d vertices)", idx, max)
		}
	}
}
