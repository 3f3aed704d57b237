// Package capability probes the graphics capabilities the sculpt
// pipeline depends on. Probing happens once at startup; the rest of the
// engine consumes the resulting struct as plain values and never
// re-queries the driver.
package capability

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrCapability reports a required graphics capability that is absent.
// There is no degraded mode; callers should treat this as fatal.
var ErrCapability = errors.New("required graphics capability missing")

// Capabilities holds the probed limits and feature bits.
type Capabilities struct {
	Version               string
	Renderer              string
	MaxTextureSize        int32
	MaxVertexTextureUnits int32 // texture units usable from the vertex stage
	FloatRenderable       bool  // RGBA32F attachments render-complete
}

// Probe queries the current OpenGL context. Must be called with a live
// context on the main thread.
func Probe() Capabilities {
	caps := Capabilities{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}

	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &caps.MaxTextureSize)
	gl.GetIntegerv(gl.MAX_VERTEX_TEXTURE_IMAGE_UNITS, &caps.MaxVertexTextureUnits)
	caps.FloatRenderable = probeFloatRenderable()

	return caps
}

// probeFloatRenderable attaches a small RGBA32F texture to a throwaway
// framebuffer and checks completeness. Core 4.1 guarantees this, but
// drivers have been known to lie.
func probeFloatRenderable() bool {
	var fbo, tex uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, 4, 4, 0, gl.RGBA, gl.FLOAT, nil)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)

	ok := gl.CheckFramebufferStatus(gl.FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.DeleteFramebuffers(1, &fbo)
	gl.DeleteTextures(1, &tex)

	return ok
}

// Validate checks the probed capabilities against what the sculpt
// pipeline needs for the given height-field resolution.
func (c Capabilities) Validate(resolution int) error {
	if !c.FloatRenderable {
		return fmt.Errorf("%w: float render targets not supported (renderer %s)", ErrCapability, c.Renderer)
	}
	if c.MaxVertexTextureUnits < 1 {
		return fmt.Errorf("%w: no vertex texture units (vertex-texture-fetch unavailable)", ErrCapability)
	}
	if int32(resolution) > c.MaxTextureSize {
		return fmt.Errorf("%w: resolution %d exceeds max texture size %d", ErrCapability, resolution, c.MaxTextureSize)
	}
	return nil
}
