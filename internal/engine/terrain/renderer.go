package terrain

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terrasculpt/internal/engine/shader"
	"github.com/Faultbox/terrasculpt/internal/engine/terrain/shaders"
	"github.com/Faultbox/terrasculpt/pkg/math"
)

// Cursor is the brush cursor overlay drawn on the terrain surface.
type Cursor struct {
	Active bool
	Pos    math.Vec2 // world XZ of the brush center
	Radius float32
	Color  [3]float32
}

// Light is the directional light the terrain is shaded with.
type Light struct {
	Dir     math.Vec3
	Ambient [3]float32
	Diffuse [3]float32
}

// Renderer draws the displaced terrain grid.
type Renderer struct {
	// Shader
	program uint32

	// Uniform locations
	locViewProj         int32
	locHeightTex        int32
	locHeightMultiplier int32
	locTexelSize        int32
	locTexelWorldSize   int32
	locLightDir         int32
	locAmbient          int32
	locDiffuse          int32
	locBaseColor        int32
	locCursorActive     int32
	locCursorPos        int32
	locCursorRadius     int32
	locCursorColor      int32

	// Grid mesh
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// Height texture, swapped in each frame by the caller
	heightTex uint32

	heightMultiplier float32
	texelSize        float32
	texelWorldSize   float32

	BaseColor [3]float32
}

// NewRenderer creates the terrain renderer and uploads the grid mesh.
func NewRenderer(resolution int, worldSize, heightMultiplier float32) (*Renderer, error) {
	r := &Renderer{
		heightMultiplier: heightMultiplier,
		texelSize:        1.0 / float32(resolution),
		texelWorldSize:   worldSize / float32(resolution),
		BaseColor:        [3]float32{0.55, 0.5, 0.42},
	}

	program, err := shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	r.program = program

	r.locViewProj = shader.GetUniform(program, "uViewProj")
	r.locHeightTex = shader.GetUniform(program, "uHeightTex")
	r.locHeightMultiplier = shader.GetUniform(program, "uHeightMultiplier")
	r.locTexelSize = shader.GetUniform(program, "uTexelSize")
	r.locTexelWorldSize = shader.GetUniform(program, "uTexelWorldSize")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locAmbient = shader.GetUniform(program, "uAmbient")
	r.locDiffuse = shader.GetUniform(program, "uDiffuse")
	r.locBaseColor = shader.GetUniform(program, "uBaseColor")
	r.locCursorActive = shader.GetUniform(program, "uCursorActive")
	r.locCursorPos = shader.GetUniform(program, "uCursorPos")
	r.locCursorRadius = shader.GetUniform(program, "uCursorRadius")
	r.locCursorColor = shader.GetUniform(program, "uCursorColor")

	r.uploadGrid(BuildGrid(resolution, worldSize))

	return r, nil
}

func (r *Renderer) uploadGrid(mesh *Mesh) {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// UV (location 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	r.indexCount = int32(len(mesh.Indices))

	gl.BindVertexArray(0)
}

// SetHeightTexture points the renderer at the texture to displace from.
// Called every frame with the sculptor's current combined texture.
func (r *Renderer) SetHeightTexture(tex uint32) {
	r.heightTex = tex
}

// SetHeightMultiplier scales the displacement.
func (r *Renderer) SetHeightMultiplier(m float32) {
	r.heightMultiplier = m
}

// Render draws the terrain.
func (r *Renderer) Render(viewProj math.Mat4, light Light, cursor Cursor) {
	if r.vao == 0 || r.heightTex == 0 {
		return
	}

	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.locViewProj, 1, false, &viewProj[0])
	gl.Uniform1f(r.locHeightMultiplier, r.heightMultiplier)
	gl.Uniform1f(r.locTexelSize, r.texelSize)
	gl.Uniform1f(r.locTexelWorldSize, r.texelWorldSize)

	gl.Uniform3f(r.locLightDir, light.Dir.X, light.Dir.Y, light.Dir.Z)
	gl.Uniform3f(r.locAmbient, light.Ambient[0], light.Ambient[1], light.Ambient[2])
	gl.Uniform3f(r.locDiffuse, light.Diffuse[0], light.Diffuse[1], light.Diffuse[2])
	gl.Uniform3f(r.locBaseColor, r.BaseColor[0], r.BaseColor[1], r.BaseColor[2])

	if cursor.Active {
		gl.Uniform1i(r.locCursorActive, 1)
		gl.Uniform2f(r.locCursorPos, cursor.Pos.X, cursor.Pos.Y)
		gl.Uniform1f(r.locCursorRadius, cursor.Radius)
		gl.Uniform3f(r.locCursorColor, cursor.Color[0], cursor.Color[1], cursor.Color[2])
	} else {
		gl.Uniform1i(r.locCursorActive, 0)
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.heightTex)
	gl.Uniform1i(r.locHeightTex, 0)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (r *Renderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
