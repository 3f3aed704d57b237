// Package terrain renders the sculpted height field as a displaced
// grid mesh. The mesh itself is flat; vertex-texture-fetch displaces
// each vertex from the height texture, so sculpting never rebuilds or
// re-uploads geometry.
package terrain

// Vertex is one grid vertex. Y is always zero in the buffer; the vertex
// shader displaces it from the height texture.
type Vertex struct {
	Position [3]float32
	UV       [2]float32
}

// Mesh holds the CPU-side grid geometry.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// BuildGrid builds a flat grid of resolution x resolution vertices
// centered on the origin in the XZ plane, worldSize units per side.
// One vertex per height texel, UVs spanning [0,1], so the vertex
// shader's texture fetch lands on texel centers.
func BuildGrid(resolution int, worldSize float32) *Mesh {
	if resolution < 2 {
		resolution = 2
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, resolution*resolution),
		Indices:  make([]uint32, 0, (resolution-1)*(resolution-1)*6),
	}

	step := worldSize / float32(resolution-1)
	half := worldSize / 2

	for z := 0; z < resolution; z++ {
		for x := 0; x < resolution; x++ {
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{
					float32(x)*step - half,
					0,
					float32(z)*step - half,
				},
				UV: [2]float32{
					float32(x) / float32(resolution-1),
					float32(z) / float32(resolution-1),
				},
			})
		}
	}

	for z := 0; z < resolution-1; z++ {
		for x := 0; x < resolution-1; x++ {
			i := uint32(z*resolution + x)
			m.Indices = append(m.Indices,
				i, i+uint32(resolution), i+1,
				i+1, i+uint32(resolution), i+uint32(resolution)+1,
			)
		}
	}

	return m
}
