package sculpt

import (
	"github.com/Faultbox/terrasculpt/pkg/math"
)

// BrushType selects the sculpt operation.
type BrushType int32

const (
	// BrushAdd raises the terrain under the brush.
	BrushAdd BrushType = 1
	// BrushRemove lowers the terrain under the brush.
	BrushRemove BrushType = 2
)

// String returns the brush type name.
func (t BrushType) String() string {
	switch t {
	case BrushAdd:
		return "add"
	case BrushRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// BrushOp is a single queued sculpt instruction. Ops are transient:
// created by Sculpt, consumed by the next Update.
type BrushOp struct {
	Type   BrushType
	UV     math.Vec2 // brush center on the height texture
	Amount float32   // height delta per application
}

// brushState tracks the pending brush op and the brush uniforms between
// frames. Multiple Sculpt calls between Updates are last-write-wins:
// each record overwrites the previous op, and the pending flag is only
// cleared when the op is consumed inside Update.
type brushState struct {
	pending bool
	op      BrushOp

	radius float32 // normalized radius uniform for the next pass
	amount float32 // default amount for ops issued without an explicit one
}

// record queues an op, replacing any previous pending op.
func (s *brushState) record(op BrushOp) {
	s.op = op
	s.pending = true
}

// consume returns the pending op and clears the pending flag. The
// second result is false when no op was queued, in which case the
// sculpt pass runs as a pass-through.
func (s *brushState) consume() (BrushOp, bool) {
	if !s.pending {
		return BrushOp{}, false
	}
	s.pending = false
	return s.op, true
}

// setRadius updates the radius uniform. The already-queued op is not
// affected retroactively; the radius is read at pass time.
func (s *brushState) setRadius(r float32) {
	s.radius = r
}

// setAmount updates the default amount. An already-queued op keeps the
// amount it was recorded with.
func (s *brushState) setAmount(a float32) {
	s.amount = a
}
