package shapetracker

import (
	"fmt"
	"strings"

	"github.com/born-ml/shapetrack/internal/symbolic"
)

// Range is a half-open index range [Lo, Hi).
type Range struct {
	Lo, Hi int
}

func (r Range) String() string { return fmt.Sprintf("(%d,%d)", r.Lo, r.Hi) }

// Run is a group of adjacent dimensions addressed with one stride.
type Run struct {
	Size, Stride int
}

// View is an immutable affine mapping from a multi-dimensional index to a
// linear offset, with an optional per-dimension validity mask.
type View struct {
	dims       []Dim
	shape      []int
	strides    []int
	offset     int
	mask       []Range
	contiguous bool
	runs       []Run
	key        string
}

// NewView returns a view over shape. Nil strides select the row-major
// strides of shape; a nil mask means every index is valid.
func NewView(shape, strides []int, offset int, mask []Range) *View {
	return NewViewDims(Ints(shape...), strides, offset, mask)
}

// NewViewDims is like NewView for dimensions that may be symbolic. Every
// dimension must be bound.
func NewViewDims(dims []Dim, strides []int, offset int, mask []Range) *View {
	shape := sizes(dims)
	for i, d := range dims {
		if !d.Bound() {
			panic(fmt.Sprintf("shapetracker: dimension %d (%s) has no value", i, d))
		}
	}
	if strides == nil {
		strides = StridesForShape(shape)
	} else {
		must(checkRank("strides", len(shape), len(strides)))
		strides = FilterStrides(shape, strides)
	}
	if mask != nil {
		must(checkRank("mask", len(shape), len(mask)))
		mask = append([]Range(nil), mask...)
	}
	v := &View{
		dims:    append([]Dim(nil), dims...),
		shape:   shape,
		strides: strides,
		offset:  offset,
		mask:    mask,
		runs:    ToShapeStrides(shape, strides),
	}
	v.contiguous = offset == 0 && mask == nil && isContiguous(shape, strides)
	v.key = v.render()
	return v
}

// StridesForShape returns the row-major strides of shape, with size-1
// dimensions given stride 0.
func StridesForShape(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return FilterStrides(shape, strides)
}

// FilterStrides returns strides with every size-1 dimension set to 0.
func FilterStrides(shape, strides []int) []int {
	out := make([]int, len(strides))
	for i, st := range strides {
		if shape[i] != 1 {
			out[i] = st
		}
	}
	return out
}

func isContiguous(shape, strides []int) bool {
	for i, st := range StridesForShape(shape) {
		if strides[i] != st && shape[i] != 1 {
			return false
		}
	}
	return true
}

// ToShapeStrides merges adjacent dimensions that can be walked with a
// single stride.
func ToShapeStrides(shape, strides []int) []Run {
	if len(shape) == 0 {
		return nil
	}
	runs := []Run{{shape[0], strides[0]}}
	for i := 1; i < len(shape); i++ {
		last := &runs[len(runs)-1]
		if (strides[i] != 0 && last.Stride == shape[i]*strides[i]) || last.Size == 1 || (strides[i] == 0 && last.Stride == 0) {
			last.Size *= shape[i]
			last.Stride = strides[i]
			continue
		}
		runs = append(runs, Run{shape[i], strides[i]})
	}
	return runs
}

// Dims returns the dimensions of the view.
func (v *View) Dims() []Dim { return append([]Dim(nil), v.dims...) }

// Shape returns the extent of every dimension.
func (v *View) Shape() []int { return append([]int(nil), v.shape...) }

// Strides returns the stride of every dimension.
func (v *View) Strides() []int { return append([]int(nil), v.strides...) }

// Offset returns the offset of index zero.
func (v *View) Offset() int { return v.offset }

// Mask returns the valid range of every dimension, or nil when the view is
// unmasked.
func (v *View) Mask() []Range {
	if v.mask == nil {
		return nil
	}
	return append([]Range(nil), v.mask...)
}

// Contiguous reports whether the view is a plain row-major layout.
func (v *View) Contiguous() bool { return v.contiguous }

// ShapeStrides returns the merged stride runs, outermost first.
func (v *View) ShapeStrides() []Run { return append([]Run(nil), v.runs...) }

// Equal reports whether two views describe the same mapping.
func (v *View) Equal(other *View) bool { return v.key == other.key }

// String renders the view.
func (v *View) String() string { return v.key }

func (v *View) render() string {
	var b strings.Builder
	b.WriteString("View(shape=(")
	for i, d := range v.dims {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	fmt.Fprintf(&b, "), strides=%v, offset=%d, mask=", v.strides, v.offset)
	if v.mask == nil {
		b.WriteString("None")
	} else {
		fmt.Fprintf(&b, "%v", v.mask)
	}
	b.WriteString(")")
	return b.String()
}

// idxVar returns an index variable over [0, size), or 0 when the
// dimension has a single index.
func idxVar(name string, size int) *symbolic.Node {
	if size <= 1 {
		return symbolic.Num(0)
	}
	return symbolic.Var(name, 0, size-1)
}

// ExprNode returns the offset addressed by the flat row-major index idx. A
// nil idx stands for a variable "idx" over the whole view.
func (v *View) ExprNode(idx *symbolic.Node) *symbolic.Node {
	if idx == nil {
		idx = idxVar("idx", symbolic.Prod(v.shape))
	}
	var terms []*symbolic.Node
	if v.offset != 0 {
		terms = append(terms, symbolic.Num(v.offset))
	}
	acc := 1
	for i := len(v.runs) - 1; i >= 0; i-- {
		r := v.runs[i]
		terms = append(terms, idx.FloorDiv(acc).Mod(r.Size).Mul(r.Stride))
		acc *= r.Size
	}
	return symbolic.Sum(terms...)
}

// ExprIdxs returns the offset addressed by one index per dimension.
func (v *View) ExprIdxs(idxs []*symbolic.Node) *symbolic.Node {
	must(checkRank("indices", len(v.shape), len(idxs)))
	terms := []*symbolic.Node{symbolic.Num(v.offset)}
	for i, idx := range idxs {
		if v.shape[i] != 1 && v.strides[i] != 0 {
			terms = append(terms, idx.Mul(v.strides[i]))
		}
	}
	return symbolic.Sum(terms...)
}

// ExprNodeMask returns the validity of the flat index idx under the view's
// mask, conjoined with valid when it is not nil.
func (v *View) ExprNodeMask(idx, valid *symbolic.Node) *symbolic.Node {
	var expr []*symbolic.Node
	if valid != nil {
		expr = append(expr, valid)
	}
	if v.mask != nil {
		acc := 1
		for i := len(v.shape) - 1; i >= 0; i-- {
			base := idx.FloorDiv(acc).Mod(v.shape[i])
			expr = append(expr, base.Ge(v.mask[i].Lo), base.Lt(v.mask[i].Hi))
			acc *= v.shape[i]
		}
	}
	return symbolic.Ands(expr...)
}

// IdxsToIdx folds one index per dimension into a flat row-major index.
func IdxsToIdx(shape []int, idxs []*symbolic.Node) *symbolic.Node {
	must(checkRank("indices", len(shape), len(idxs)))
	terms := make([]*symbolic.Node, 0, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		terms = append(terms, idxs[i].Mul(acc))
		acc *= shape[i]
	}
	return symbolic.Sum(terms...)
}
