package sculpt

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// fullscreenQuad is the shared geometry for the sculpt and composite
// passes: two triangles covering clip space, UVs derived in the vertex
// shader.
type fullscreenQuad struct {
	vao uint32
	vbo uint32
}

func newFullscreenQuad() *fullscreenQuad {
	vertices := []float32{
		-1, -1,
		1, -1,
		1, 1,
		-1, -1,
		1, 1,
		-1, 1,
	}

	q := &fullscreenQuad{}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return q
}

// draw issues the quad. The caller binds program, uniforms, and target.
func (q *fullscreenQuad) draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

func (q *fullscreenQuad) destroy() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
}
