package symbolic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkNumeric verifies that fx agrees with fi on literals, and that for
// every variable range within [0, 9] the bounds of fx contain every value
// fi takes on that range. With attained set, both bounds must also be hit.
func checkNumeric(t *testing.T, fx func(*Node) *Node, fi func(int) int, attained bool) {
	t.Helper()
	for i := 0; i < 10; i++ {
		x := fx(Num(i))
		require.True(t, x.IsNum(), "literal %d gave %s", i, x)
		assert.Equal(t, fi(i), x.Const())
	}
	for lo := 0; lo < 10; lo++ {
		for hi := lo; hi < 10; hi++ {
			v := fx(Var("tmp", lo, hi))
			seenMin, seenMax := false, false
			for i := lo; i <= hi; i++ {
				want := fi(i)
				assert.LessOrEqual(t, v.Min(), want, "%s on [%d, %d]", v, lo, hi)
				assert.GreaterOrEqual(t, v.Max(), want, "%s on [%d, %d]", v, lo, hi)
				got, err := v.Eval(map[string]int{"tmp": i})
				require.NoError(t, err)
				assert.Equal(t, want, got, "%s at tmp=%d", v, i)
				seenMin = seenMin || want == v.Min()
				seenMax = seenMax || want == v.Max()
			}
			if attained {
				assert.True(t, seenMin, "%s on [%d, %d] never reaches min %d", v, lo, hi, v.Min())
				assert.True(t, seenMax, "%s on [%d, %d] never reaches max %d", v, lo, hi, v.Max())
			}
		}
	}
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		name string
		fx   func(*Node) *Node
		fi   func(int) int
		// gaps marks a modulus over a non-unit coefficient, whose values
		// skip residues so the interval bounds need not be reached.
		gaps bool
	}{
		{"mod 4", func(x *Node) *Node { return x.Mod(4) }, func(x int) int { return x % 4 }, false},
		{"div 4", func(x *Node) *Node { return x.FloorDiv(4) }, func(x int) int { return x / 4 }, false},
		{"plus 1 div 2", func(x *Node) *Node { return x.AddInt(1).FloorDiv(2) }, func(x int) int { return (x + 1) / 2 }, false},
		{"plus 1 mod 2", func(x *Node) *Node { return x.AddInt(1).Mod(2) }, func(x int) int { return (x + 1) % 2 }, false},
		{"times 2", func(x *Node) *Node { return x.Mul(2) }, func(x int) int { return x * 2 }, false},
		{"times 2 plus 3", func(x *Node) *Node { return x.Mul(2).AddInt(3) }, func(x int) int { return x*2 + 3 }, false},
		{"times 2 plus 3 mod 4", func(x *Node) *Node { return x.Mul(2).AddInt(3).Mod(4) }, func(x int) int { return (x*2 + 3) % 4 }, true},
		{"times 2 plus 3 div 4", func(x *Node) *Node { return x.Mul(2).AddInt(3).FloorDiv(4) }, func(x int) int { return (x*2 + 3) / 4 }, false},
		{"times 2 plus 3 div 4 mod 4", func(x *Node) *Node { return x.Mul(2).AddInt(3).FloorDiv(4).Mod(4) }, func(x int) int { return ((x*2 + 3) / 4) % 4 }, false},
		{"minus 5 div 3", func(x *Node) *Node { return x.SubInt(5).FloorDiv(3) }, func(x int) int { return FloorDiv(x-5, 3) }, false},
		{"minus 5 mod 3", func(x *Node) *Node { return x.SubInt(5).Mod(3) }, func(x int) int { return FloorMod(x-5, 3) }, false},
		{"neg times 3 div 4", func(x *Node) *Node { return x.Mul(-3).FloorDiv(4) }, func(x int) int { return FloorDiv(-3*x, 4) }, false},
		{"neg mod 7", func(x *Node) *Node { return x.Neg().Mod(7) }, func(x int) int { return FloorMod(-x, 7) }, true},
		{"times 6 mod 4 div 2", func(x *Node) *Node { return x.Mul(6).Mod(4).FloorDiv(2) }, func(x int) int { return (x * 6 % 4) / 2 }, false},
		{"lt 5", func(x *Node) *Node { return x.Lt(5) }, func(x int) int { return boolInt(x < 5) }, false},
		{"ge 3", func(x *Node) *Node { return x.Ge(3) }, func(x int) int { return boolInt(x >= 3) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkNumeric(t, tt.fx, tt.fi, !tt.gaps)
		})
	}
}

// TestIndexExpressions checks composite index expressions of the form
// built for strided views against direct evaluation over two variables.
func TestIndexExpressions(t *testing.T) {
	for _, shape := range [][2]int{{3, 4}, {4, 4}, {5, 6}, {2, 9}} {
		t.Run(fmt.Sprint(shape), func(t *testing.T) {
			i0 := Var("i0", 0, shape[0]-1)
			i1 := Var("i1", 0, shape[1]-1)
			flat := i0.Mul(shape[1]).Add(i1)
			exprs := map[string]func(a, b int) int{}
			nodes := map[string]*Node{}
			for _, d := range []int{2, 3, 4, 6, 8} {
				d := d
				nodes[fmt.Sprintf("div%d", d)] = flat.FloorDiv(d)
				exprs[fmt.Sprintf("div%d", d)] = func(a, b int) int { return (a*shape[1] + b) / d }
				nodes[fmt.Sprintf("mod%d", d)] = flat.Mod(d)
				exprs[fmt.Sprintf("mod%d", d)] = func(a, b int) int { return (a*shape[1] + b) % d }
				nodes[fmt.Sprintf("divmod%d", d)] = flat.FloorDiv(d).Mod(3).Mul(5).AddInt(-2)
				exprs[fmt.Sprintf("divmod%d", d)] = func(a, b int) int { return ((a*shape[1]+b)/d)%3*5 - 2 }
			}
			for name, n := range nodes {
				for a := 0; a < shape[0]; a++ {
					for b := 0; b < shape[1]; b++ {
						got, err := n.Eval(map[string]int{"i0": a, "i1": b})
						require.NoError(t, err)
						want := exprs[name](a, b)
						assert.Equal(t, want, got, "%s = %s at (%d, %d)", name, n, a, b)
						assert.True(t, n.Min() <= want && want <= n.Max(), "%s bounds [%d, %d] miss %d", n, n.Min(), n.Max(), want)
					}
				}
			}
		})
	}
}

func TestBoundsWithRepeatedVariable(t *testing.T) {
	a := Var("a", 0, 5)
	n := Sum(a.Mod(2), a.AddInt(1).Mod(2))
	assert.Equal(t, 0, n.Min())
	assert.Equal(t, 2, n.Max())
	for i := 0; i <= 5; i++ {
		assert.Equal(t, 1, n.MustEval(map[string]int{"a": i}))
	}
}

func TestMathHelpers(t *testing.T) {
	assert.Equal(t, -2, FloorDiv(-3, 2))
	assert.Equal(t, 1, FloorMod(-3, 2))
	assert.Equal(t, -1, FloorMod(3, -2))
	assert.Equal(t, 2, CeilDiv(3, 2))
	assert.Equal(t, 0, CeilDiv(0, 3))
	assert.Equal(t, 4, GCD(-8, 12))
	assert.Equal(t, 5, GCD(0, 5))
	assert.Equal(t, 24, Prod([]int{2, 3, 4}))
	assert.Equal(t, 1, Prod[int](nil))
}
