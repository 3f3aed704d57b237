package sculpt

import (
	"testing"

	"github.com/Faultbox/terrasculpt/pkg/math"
)

func TestBrushLastWriteWins(t *testing.T) {
	var s brushState

	s.record(BrushOp{Type: BrushAdd, UV: math.Vec2{X: 0.1, Y: 0.1}, Amount: 1})
	s.record(BrushOp{Type: BrushRemove, UV: math.Vec2{X: 0.9, Y: 0.9}, Amount: 2})

	op, ok := s.consume()
	if !ok {
		t.Fatal("expected a pending op")
	}
	if op.Type != BrushRemove || op.UV.X != 0.9 || op.Amount != 2 {
		t.Errorf("got %+v, want the second op", op)
	}
}

func TestBrushConsumeClearsPending(t *testing.T) {
	var s brushState

	if _, ok := s.consume(); ok {
		t.Error("fresh state should have no pending op")
	}

	s.record(BrushOp{Type: BrushAdd})
	if _, ok := s.consume(); !ok {
		t.Fatal("expected a pending op")
	}
	if _, ok := s.consume(); ok {
		t.Error("op should be consumed exactly once")
	}
}

func TestBrushSettersDoNotTouchQueuedOp(t *testing.T) {
	var s brushState

	s.setAmount(1)
	s.record(BrushOp{Type: BrushAdd, Amount: 1})
	s.setAmount(5)
	s.setRadius(0.25)

	op, ok := s.consume()
	if !ok {
		t.Fatal("expected a pending op")
	}
	if op.Amount != 1 {
		t.Errorf("queued op amount = %v, want the amount it was recorded with", op.Amount)
	}
	if s.radius != 0.25 || s.amount != 5 {
		t.Errorf("state = {radius %v, amount %v}, want {0.25, 5}", s.radius, s.amount)
	}
}

func TestBrushTypeString(t *testing.T) {
	if BrushAdd.String() != "add" || BrushRemove.String() != "remove" {
		t.Error("unexpected brush type names")
	}
	if BrushType(0).String() != "unknown" {
		t.Error("zero value should stringify as unknown")
	}
}
