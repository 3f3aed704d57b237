package sculpt

import (
	"fmt"

	"github.com/Faultbox/terrasculpt/internal/engine/rendertarget"
)

// SwapChain owns the two float render targets used for feedback
// accumulation. One target holds the most recently written state and is
// read-only for the current frame; the other is the write target. Swap
// exchanges the two roles without copying texels, which is what keeps
// the sculpt pass free of read/write aliasing.
type SwapChain struct {
	targets    [2]*rendertarget.Target
	front      int // index of the most recently written target
	resolution int32
}

// AllocateSwapChain creates the two equally-sized float targets, both
// cleared to zero.
func AllocateSwapChain(resolution int32) (*SwapChain, error) {
	sc := &SwapChain{resolution: resolution}
	for i := range sc.targets {
		t, err := rendertarget.New(resolution)
		if err != nil {
			sc.Destroy()
			return nil, fmt.Errorf("%w: %v", ErrResourceExhausted, err)
		}
		sc.targets[i] = t
	}
	return sc, nil
}

// Current returns the most recently written target. It may be sampled
// this frame but must never be bound as the draw target.
func (sc *SwapChain) Current() *rendertarget.Target {
	return sc.targets[sc.front]
}

// Next returns this frame's write target.
func (sc *SwapChain) Next() *rendertarget.Target {
	return sc.targets[sc.front^1]
}

// Swap exchanges the current/next roles. O(1) index flip; texels are
// never copied.
func (sc *SwapChain) Swap() {
	sc.front ^= 1
}

// Reallocate discards both targets and allocates fresh zero-initialized
// ones, resetting the accumulated state. Used by Clear.
func (sc *SwapChain) Reallocate() error {
	sc.Destroy()
	sc.front = 0
	for i := range sc.targets {
		t, err := rendertarget.New(sc.resolution)
		if err != nil {
			sc.Destroy()
			return fmt.Errorf("%w: %v", ErrResourceExhausted, err)
		}
		sc.targets[i] = t
	}
	return nil
}

// Destroy releases both targets.
func (sc *SwapChain) Destroy() {
	for i, t := range sc.targets {
		if t != nil {
			t.Destroy()
			sc.targets[i] = nil
		}
	}
}
