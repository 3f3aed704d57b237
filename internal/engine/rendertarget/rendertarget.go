// Package rendertarget provides float-texture render targets for
// render-to-texture feedback passes.
package rendertarget

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Target manages an offscreen render target backed by a single RGBA32F
// color texture. Height-field passes need full float precision and no
// depth testing, so there is no depth attachment.
type Target struct {
	fbo     uint32
	texture uint32
	size    int32
}

// New creates a float render target of size x size texels. The texture
// uses linear filtering and clamp-to-edge wrapping, no mipmaps. The
// contents are cleared to zero before New returns.
func New(size int32) (*Target, error) {
	if size < 1 {
		return nil, fmt.Errorf("render target size %d: must be positive", size)
	}

	t := &Target{size: size}

	if err := t.create(); err != nil {
		return nil, fmt.Errorf("creating render target: %w", err)
	}

	return t, nil
}

func (t *Target) create() error {
	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.GenTextures(1, &t.texture)
	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, t.size, t.size, 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.texture, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Destroy()
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	// Texture contents are undefined after TexImage2D; start from zero
	// so the first feedback pass reads a flat field.
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// Bind makes this target the current framebuffer and sets the viewport.
func (t *Target) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, t.size, t.size)
}

// Unbind restores the default framebuffer.
func (t *Target) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Clear clears the color texture to the given value.
func (t *Target) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Texture returns the color texture ID.
func (t *Target) Texture() uint32 {
	return t.texture
}

// Size returns the edge length in texels.
func (t *Target) Size() int32 {
	return t.size
}

// ReadPixels reads the float texels back to the CPU as RGBA quadruples.
// Synchronous; intended for tools and debugging, not the frame loop.
func (t *Target) ReadPixels() []float32 {
	pixels := make([]float32, t.size*t.size*4)

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.ReadPixels(0, 0, t.size, t.size, gl.RGBA, gl.FLOAT, gl.Ptr(pixels))

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))

	return pixels
}

// Destroy releases all OpenGL resources.
func (t *Target) Destroy() {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.texture != 0 {
		gl.DeleteTextures(1, &t.texture)
		t.texture = 0
	}
}
