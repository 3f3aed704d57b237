package capability

import (
	"errors"
	"testing"
)

func TestValidateOK(t *testing.T) {
	caps := Capabilities{
		MaxTextureSize:        4096,
		MaxVertexTextureUnits: 16,
		FloatRenderable:       true,
	}
	if err := caps.Validate(1024); err != nil {
		t.Errorf("Validate(1024) = %v, want nil", err)
	}
}

func TestValidateNoFloat(t *testing.T) {
	caps := Capabilities{
		MaxTextureSize:        4096,
		MaxVertexTextureUnits: 16,
		FloatRenderable:       false,
	}
	err := caps.Validate(256)
	if !errors.Is(err, ErrCapability) {
		t.Errorf("Validate() = %v, want ErrCapability", err)
	}
}

func TestValidateNoVertexTextures(t *testing.T) {
	caps := Capabilities{
		MaxTextureSize:        4096,
		MaxVertexTextureUnits: 0,
		FloatRenderable:       true,
	}
	err := caps.Validate(256)
	if !errors.Is(err, ErrCapability) {
		t.Errorf("Validate() = %v, want ErrCapability", err)
	}
}

func TestValidateResolutionTooLarge(t *testing.T) {
	caps := Capabilities{
		MaxTextureSize:        2048,
		MaxVertexTextureUnits: 16,
		FloatRenderable:       true,
	}
	err := caps.Validate(4096)
	if !errors.Is(err, ErrCapability) {
		t.Errorf("Validate(4096) = %v, want ErrCapability", err)
	}
}
