package sculpt

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terrasculpt/internal/engine/rendertarget"
	"github.com/Faultbox/terrasculpt/internal/engine/shader"
	"github.com/Faultbox/terrasculpt/internal/sculpt/shaders"
	"github.com/Faultbox/terrasculpt/pkg/math"
)

// sculptParams is the per-pass parameter set, rebuilt every frame from
// the brush state rather than mutated as shared uniform state.
type sculptParams struct {
	Pending bool
	Type    BrushType
	UV      math.Vec2
	Radius  float32
	Amount  float32
}

// SculptPass renders a full-screen quad that reads the previous
// accumulated texture plus the base texture and writes the new
// accumulated state, applying at most one brush op. With no pending op
// the shader is a numerically exact identity over the previous state:
// the quad covers texel centers one-to-one, so linear filtering
// reproduces each texel bit-for-bit.
type SculptPass struct {
	program uint32

	locBaseTex      int32
	locPrevTex      int32
	locIsSculpting  int32
	locSculptType   int32
	locSculptUV     int32
	locSculptRadius int32
	locSculptAmount int32
}

// NewSculptPass compiles the sculpt program.
func NewSculptPass() (*SculptPass, error) {
	program, err := shader.CompileProgram(shaders.QuadVertexShader, shaders.SculptFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sculpt shader: %w", err)
	}

	p := &SculptPass{program: program}
	p.locBaseTex = shader.GetUniform(program, "uBaseTex")
	p.locPrevTex = shader.GetUniform(program, "uPrevTex")
	p.locIsSculpting = shader.GetUniform(program, "uIsSculpting")
	p.locSculptType = shader.GetUniform(program, "uSculptType")
	p.locSculptUV = shader.GetUniform(program, "uSculptUV")
	p.locSculptRadius = shader.GetUniform(program, "uSculptRadius")
	p.locSculptAmount = shader.GetUniform(program, "uSculptAmount")

	return p, nil
}

// Run executes the pass into target. prev must be the swap chain's
// current texture and must differ from the target (the swap chain
// guarantees this; sampling the draw target would be a feedback hazard).
func (p *SculptPass) Run(quad *fullscreenQuad, baseTex, prevTex uint32, target *rendertarget.Target, params sculptParams) {
	target.Bind()

	gl.UseProgram(p.program)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, baseTex)
	gl.Uniform1i(p.locBaseTex, 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, prevTex)
	gl.Uniform1i(p.locPrevTex, 1)

	if params.Pending {
		gl.Uniform1i(p.locIsSculpting, 1)
		gl.Uniform1i(p.locSculptType, int32(params.Type))
		gl.Uniform2f(p.locSculptUV, params.UV.X, params.UV.Y)
		gl.Uniform1f(p.locSculptRadius, params.Radius)
		gl.Uniform1f(p.locSculptAmount, params.Amount)
	} else {
		gl.Uniform1i(p.locIsSculpting, 0)
	}

	quad.draw()

	target.Unbind()
}

// Destroy releases the shader program.
func (p *SculptPass) Destroy() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}
