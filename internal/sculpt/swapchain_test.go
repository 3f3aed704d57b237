package sculpt

import (
	"testing"

	"github.com/Faultbox/terrasculpt/internal/engine/rendertarget"
)

// newTestChain builds a chain around placeholder targets so the ring
// logic can be exercised without a GL context.
func newTestChain() *SwapChain {
	return &SwapChain{
		targets: [2]*rendertarget.Target{{}, {}},
	}
}

func TestSwapChainRolesDistinct(t *testing.T) {
	sc := newTestChain()
	if sc.Current() == sc.Next() {
		t.Fatal("current and next must be different targets")
	}
}

func TestSwapFlipsRoles(t *testing.T) {
	sc := newTestChain()

	cur, next := sc.Current(), sc.Next()
	sc.Swap()
	if sc.Current() != next || sc.Next() != cur {
		t.Error("swap should exchange current and next")
	}

	sc.Swap()
	if sc.Current() != cur || sc.Next() != next {
		t.Error("two swaps should restore the original roles")
	}
}

func TestSwapNeverAliases(t *testing.T) {
	sc := newTestChain()
	for i := 0; i < 8; i++ {
		if sc.Current() == sc.Next() {
			t.Fatalf("aliasing after %d swaps", i)
		}
		sc.Swap()
	}
}
