package shapetracker

import (
	"fmt"
	"strconv"

	"github.com/born-ml/shapetrack/internal/symbolic"
)

// Dim is one dimension of a shape: a concrete extent, or a symbolic
// variable that may carry a bound value.
type Dim struct {
	size int
	v    *symbolic.Node
}

// D returns the concrete dimension n.
func D(n int) Dim { return Dim{size: n} }

// Sym returns a dimension named by the variable v with no value yet.
// A Reshape solves its value from the element count.
func Sym(v *symbolic.Node) Dim {
	if v.IsNum() {
		return D(v.Const())
	}
	if v.Kind() != symbolic.KindVar {
		panic(fmt.Sprintf("shapetracker: symbolic dimension must be a variable, got %s", v))
	}
	return Dim{size: -1, v: v}
}

// Ints converts a concrete shape into dimensions.
func Ints(shape ...int) []Dim {
	dims := make([]Dim, len(shape))
	for i, s := range shape {
		dims[i] = D(s)
	}
	return dims
}

// Bind returns d with its value set to n.
func (d Dim) Bind(n int) Dim {
	d.size = n
	return d
}

// Size returns the extent of d, or -1 for an unbound symbolic dimension.
func (d Dim) Size() int { return d.size }

// Var returns the variable naming d, or nil for a concrete dimension.
func (d Dim) Var() *symbolic.Node { return d.v }

// Symbolic reports whether d is named by a variable.
func (d Dim) Symbolic() bool { return d.v != nil }

// Bound reports whether d has a value.
func (d Dim) Bound() bool { return d.size >= 0 }

// Equal reports whether d and other have the same extent and name.
func (d Dim) Equal(other Dim) bool {
	if d.size != other.size || d.Symbolic() != other.Symbolic() {
		return false
	}
	return !d.Symbolic() || d.v.Equal(other.v)
}

// String renders d as "4", "n" or "n=4".
func (d Dim) String() string {
	switch {
	case !d.Symbolic():
		return strconv.Itoa(d.size)
	case !d.Bound():
		return d.v.Name()
	}
	return d.v.Name() + "=" + strconv.Itoa(d.size)
}

func sizes(dims []Dim) []int {
	out := make([]int, len(dims))
	for i, d := range dims {
		out[i] = d.size
	}
	return out
}

func dimsEqual(a, b []Dim) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// inherit keeps the symbolic name of old dimensions whose extent is
// unchanged in shape.
func inherit(old []Dim, shape []int) []Dim {
	dims := Ints(shape...)
	for i := range dims {
		if i < len(old) && old[i].size == shape[i] {
			dims[i] = old[i]
		}
	}
	return dims
}
