package sculpt

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrasculpt/internal/engine/capability"
	"github.com/Faultbox/terrasculpt/internal/engine/rendertarget"
	"github.com/Faultbox/terrasculpt/internal/logger"
	"github.com/Faultbox/terrasculpt/pkg/math"
)

// Config holds the mandatory sculptor parameters.
type Config struct {
	Resolution int     // texels per side of the height texture
	WorldSize  float32 // world-space edge length of the terrain
}

// Sculptor owns the full sculpting pipeline: the base height texture,
// the accumulation swap chain, the combined-layer target, and the two
// fragment passes. All methods must be called from the main thread with
// the GL context current.
type Sculptor struct {
	hf    *HeightField
	brush brushState

	swap     *SwapChain
	combined *rendertarget.Target
	baseTex  uint32

	quad      *fullscreenQuad
	sculptPs  *SculptPass
	combinePs *CompositePass

	combinedDirty bool
}

// New builds the pipeline. Capabilities must come from a prior Probe;
// validation failures surface here, before any allocation.
func New(cfg Config, caps capability.Capabilities) (*Sculptor, error) {
	hf, err := NewHeightField(cfg.Resolution, cfg.WorldSize)
	if err != nil {
		return nil, err
	}
	if err := caps.Validate(cfg.Resolution); err != nil {
		return nil, err
	}

	s := &Sculptor{hf: hf}

	s.swap, err = AllocateSwapChain(int32(cfg.Resolution))
	if err != nil {
		return nil, err
	}

	s.combined, err = rendertarget.New(int32(cfg.Resolution))
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("%w: %v", ErrResourceExhausted, err)
	}

	s.baseTex = newBaseTexture(int32(cfg.Resolution))

	s.quad = newFullscreenQuad()

	s.sculptPs, err = NewSculptPass()
	if err != nil {
		s.Destroy()
		return nil, err
	}
	s.combinePs, err = NewCompositePass()
	if err != nil {
		s.Destroy()
		return nil, err
	}

	// A freshly allocated pipeline is all zeros, so the combined layer
	// is already correct until the first edit or base upload.
	s.combinedDirty = false

	logger.Info("sculptor initialized",
		zap.Int("resolution", cfg.Resolution),
		zap.Float32("world_size", cfg.WorldSize))

	return s, nil
}

// newBaseTexture allocates the zero-filled R32F base height texture.
// The base layer is only ever sampled, never rendered to, so it is a
// plain texture rather than a render target.
func newBaseTexture(size int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, size, size, 0, gl.RED, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	zeros := make([]float32, size*size)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, size, size, gl.RED, gl.FLOAT, gl.Ptr(zeros))

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// HeightField returns the logical height-field description.
func (s *Sculptor) HeightField() *HeightField {
	return s.hf
}

// Sculpt queues a brush op at a world-space position. Only the last op
// queued between two Updates is applied. Positions outside the terrain
// clamp at the edges through texture addressing, so no bounds check is
// needed here.
func (s *Sculptor) Sculpt(typ BrushType, worldPos math.Vec3, amount float32) {
	s.brush.record(BrushOp{
		Type:   typ,
		UV:     s.hf.WorldToUV(worldPos.X, worldPos.Z),
		Amount: amount,
	})
}

// SculptDefault queues a brush op using the configured brush amount.
func (s *Sculptor) SculptDefault(typ BrushType, worldPos math.Vec3) {
	s.Sculpt(typ, worldPos, s.brush.amount)
}

// SetBrushSize sets the brush radius in world units. Takes effect on
// the next applied op; an op already queued still uses the new radius,
// since the radius is a pass uniform rather than part of the op.
func (s *Sculptor) SetBrushSize(worldRadius float32) {
	s.brush.setRadius(s.hf.NormalizeRadius(worldRadius))
}

// SetBrushAmount sets the default height delta per sculpt application.
func (s *Sculptor) SetBrushAmount(amount float32) {
	s.brush.setAmount(amount)
}

// BrushAmount returns the current default brush amount.
func (s *Sculptor) BrushAmount() float32 {
	return s.brush.amount
}

// Update advances the pipeline one frame: applies the pending brush op
// (or an identity pass) into the swap chain, flips it, and recomposites
// base + accumulated into the combined layer. Returns the texture the
// display mesh should sample this frame.
func (s *Sculptor) Update() uint32 {
	op, pending := s.brush.consume()

	// With nothing pending and the composite up to date, both passes
	// would be identities; skip them entirely.
	if !pending && !s.combinedDirty {
		return s.combined.Texture()
	}

	params := sculptParams{Pending: pending}
	if pending {
		params.Type = op.Type
		params.UV = op.UV
		params.Radius = s.brush.radius
		params.Amount = op.Amount
	}

	s.sculptPs.Run(s.quad, s.baseTex, s.swap.Current().Texture(), s.swap.Next(), params)
	s.swap.Swap()

	s.combinePs.Run(s.quad, s.baseTex, s.swap.Current().Texture(), s.combined)
	s.combinedDirty = false

	return s.combined.Texture()
}

// Texture returns the combined-layer texture without running a frame.
func (s *Sculptor) Texture() uint32 {
	return s.combined.Texture()
}

// LoadBaseHeightData replaces the base layer from byte-level image
// samples, row-major, resolution x resolution. The upload is
// synchronous; by the time this returns the next Update composites the
// new base. Accumulated sculpt edits are preserved.
func (s *Sculptor) LoadBaseHeightData(data []byte, amount float32, midGreyIsLowest bool) error {
	heights, err := s.hf.NormalizeHeightBytes(data, amount, midGreyIsLowest)
	if err != nil {
		return err
	}

	res := int32(s.hf.resolution)
	gl.BindTexture(gl.TEXTURE_2D, s.baseTex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, res, res, gl.RED, gl.FLOAT, gl.Ptr(heights))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	s.combinedDirty = true

	logger.Info("base height data loaded",
		zap.Int("resolution", s.hf.resolution),
		zap.Float32("amount", amount),
		zap.Bool("mid_grey_lowest", midGreyIsLowest))

	return nil
}

// Clear resets all accumulated sculpt edits by reallocating the swap
// chain and the combined layer. The base layer and any queued brush op
// are untouched; a queued op lands on the fresh surface.
func (s *Sculptor) Clear() error {
	if err := s.swap.Reallocate(); err != nil {
		return err
	}

	s.combined.Destroy()
	fresh, err := rendertarget.New(int32(s.hf.resolution))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResourceExhausted, err)
	}
	s.combined = fresh

	s.combinedDirty = true
	return nil
}

// Heights reads the combined layer back to the CPU as a row-major
// resolution x resolution slice. Synchronous; intended for tools and
// tests, not the frame loop.
func (s *Sculptor) Heights() []float32 {
	pixels := s.combined.ReadPixels()
	heights := make([]float32, s.hf.resolution*s.hf.resolution)
	for i := range heights {
		heights[i] = pixels[i*4] // height lives in R
	}
	return heights
}

// HeightAt reads back the combined height under a world-space position.
// As synchronous as Heights; tools only.
func (s *Sculptor) HeightAt(x, z float32) float32 {
	uv := s.hf.WorldToUV(x, z)
	res := s.hf.resolution

	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v >= res {
			return res - 1
		}
		return v
	}
	tx := clamp(int(uv.X * float32(res)))
	ty := clamp(int(uv.Y * float32(res)))

	pixels := s.combined.ReadPixels()
	return pixels[(ty*res+tx)*4]
}

// Destroy releases all GPU resources. Safe on a partially constructed
// sculptor.
func (s *Sculptor) Destroy() {
	if s.combinePs != nil {
		s.combinePs.Destroy()
		s.combinePs = nil
	}
	if s.sculptPs != nil {
		s.sculptPs.Destroy()
		s.sculptPs = nil
	}
	if s.quad != nil {
		s.quad.destroy()
		s.quad = nil
	}
	if s.baseTex != 0 {
		gl.DeleteTextures(1, &s.baseTex)
		s.baseTex = 0
	}
	if s.combined != nil {
		s.combined.Destroy()
		s.combined = nil
	}
	if s.swap != nil {
		s.swap.Destroy()
		s.swap = nil
	}
}
