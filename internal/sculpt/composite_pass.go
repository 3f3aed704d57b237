package sculpt

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terrasculpt/internal/engine/rendertarget"
	"github.com/Faultbox/terrasculpt/internal/engine/shader"
	"github.com/Faultbox/terrasculpt/internal/sculpt/shaders"
)

// CompositePass merges the static base layer with the accumulated
// sculpt layer into the combined-layer texture. The combined layer is a
// dedicated target, separate from both swap-chain textures, so it is
// never written while bound as a read input.
type CompositePass struct {
	program uint32

	locTexture1 int32
	locTexture2 int32
}

// NewCompositePass compiles the combine program.
func NewCompositePass() (*CompositePass, error) {
	program, err := shader.CompileProgram(shaders.QuadVertexShader, shaders.CombineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("combine shader: %w", err)
	}

	p := &CompositePass{program: program}
	p.locTexture1 = shader.GetUniform(program, "uTexture1")
	p.locTexture2 = shader.GetUniform(program, "uTexture2")

	return p, nil
}

// Run adds tex1 and tex2 into target.
func (p *CompositePass) Run(quad *fullscreenQuad, tex1, tex2 uint32, target *rendertarget.Target) {
	target.Bind()

	gl.UseProgram(p.program)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex1)
	gl.Uniform1i(p.locTexture1, 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, tex2)
	gl.Uniform1i(p.locTexture2, 1)

	quad.draw()

	target.Unbind()
}

// Destroy releases the shader program.
func (p *CompositePass) Destroy() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}
