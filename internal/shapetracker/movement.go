package shapetracker

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"

	"github.com/born-ml/shapetrack/internal/symbolic"
)

// Padding is the number of elements added before and after a dimension.
type Padding struct {
	Before, After int
}

func (p Padding) String() string { return fmt.Sprintf("(%d,%d)", p.Before, p.After) }

// MovementOp names a movement operation for Apply.
type MovementOp int

// Movement operations.
const (
	OpReshape MovementOp = iota
	OpPermute
	OpExpand
	OpPad
	OpShrink
	OpStride
)

func (op MovementOp) String() string {
	switch op {
	case OpReshape:
		return "reshape"
	case OpPermute:
		return "permute"
	case OpExpand:
		return "expand"
	case OpPad:
		return "pad"
	case OpShrink:
		return "shrink"
	case OpStride:
		return "stride"
	}
	return fmt.Sprintf("MovementOp(%d)", int(op))
}

// Apply dispatches op with its argument: []int for reshape, permute,
// expand and stride, []Dim for reshape and expand, []Padding for pad and
// []Range for shrink.
func (st *ShapeTracker) Apply(op MovementOp, arg any) *ShapeTracker {
	switch a := arg.(type) {
	case []int:
		switch op {
		case OpReshape:
			return st.Reshape(a...)
		case OpPermute:
			return st.Permute(a...)
		case OpExpand:
			return st.Expand(a...)
		case OpStride:
			return st.Stride(a...)
		}
	case []Dim:
		switch op {
		case OpReshape:
			return st.ReshapeDims(a...)
		case OpExpand:
			return st.ExpandDims(a...)
		}
	case []Padding:
		if op == OpPad {
			return st.Pad(a...)
		}
	case []Range:
		if op == OpShrink {
			return st.Shrink(a...)
		}
	}
	panic(errors.Wrapf(ErrBadArgument, "%v does not take %T", op, arg))
}

// Reshape changes the logical shape without moving elements. It appends a
// view only when the current view cannot be re-expressed in the new shape.
func (st *ShapeTracker) Reshape(shape ...int) *ShapeTracker {
	return st.ReshapeDims(Ints(shape...)...)
}

// ReshapeDims is like Reshape for shapes with a symbolic dimension. An
// unbound symbolic dimension takes the value that preserves the element
// count; the value is kept for the life of the tracker.
func (st *ShapeTracker) ReshapeDims(dims ...Dim) *ShapeTracker {
	dims = st.resolve(dims, true)
	if dimsEqual(st.last().dims, dims) {
		return st
	}
	shape := sizes(dims)
	must(CheckShape(shape))
	if from, to := symbolic.Prod(st.last().shape), symbolic.Prod(shape); from != to {
		panic(errors.Wrapf(ErrSizeMismatch, "%v (%d elements) -> %v (%d elements)", st.Shape(), from, shape, to))
	}
	v, extra := st.reshape(st.last(), dims)
	if extra {
		st.views = append(st.views, v)
	} else {
		st.setLast(v)
	}
	return st
}

// resolve binds the symbolic dimensions of dims, solving at most one
// unknown from the element count when solve is set.
func (st *ShapeTracker) resolve(dims []Dim, solve bool) []Dim {
	dims = slices.Clone(dims)
	free, nsym, known := -1, 0, 1
	for i, d := range dims {
		if !d.Symbolic() {
			known *= d.Size()
			continue
		}
		nsym++
		if !d.Bound() {
			v, ok := st.bindings[d.Var().Name()]
			if !ok {
				free = i
				continue
			}
			dims[i] = d.Bind(v)
		}
		known *= dims[i].Size()
	}
	if nsym > 1 {
		panic(errors.Wrapf(ErrSymbolicDims, "%d symbolic dimensions in %v", nsym, dims))
	}
	if free >= 0 {
		total := symbolic.Prod(st.last().shape)
		if !solve || known == 0 || total%known != 0 {
			panic(errors.Wrapf(ErrSymbolicDims, "cannot solve %s for %d elements", dims[free], total))
		}
		dims[free] = dims[free].Bind(total / known)
	}
	for _, d := range dims {
		if !d.Symbolic() {
			continue
		}
		if lo, hi := d.Var().Bounds(); d.Size() < lo || d.Size() > hi {
			panic(errors.Wrapf(ErrSymbolicDims, "%s out of range [%d, %d]", d, lo, hi))
		}
		st.bind(d)
	}
	return dims
}

func nonUnit[T any](shape []int, vals []T) []T {
	var out []T
	for i, s := range shape {
		if s != 1 {
			out = append(out, vals[i])
		}
	}
	return out
}

// reshape re-expresses v in the new shape, reporting whether the result
// must be stacked on top of v rather than replace it.
func (st *ShapeTracker) reshape(v *View, dims []Dim) (*View, bool) {
	shape := sizes(dims)
	if slices.Equal(nonUnit(v.shape, v.shape), nonUnit(shape, shape)) {
		// only unit dimensions are added or removed
		oldStrides := nonUnit(v.shape, v.strides)
		strides := make([]int, len(shape))
		for i, s := range shape {
			if s != 1 {
				strides[i], oldStrides = oldStrides[0], oldStrides[1:]
			}
		}
		var mask []Range
		if v.mask != nil {
			mask = make([]Range, len(shape))
			if unitMasked(v) {
				for i := range mask {
					mask[i] = Range{0, 0}
				}
			} else {
				oldMask := nonUnit(v.shape, v.mask)
				for i, s := range shape {
					if s == 1 {
						mask[i] = Range{0, 1}
					} else {
						mask[i], oldMask = oldMask[0], oldMask[1:]
					}
				}
			}
		}
		return NewViewDims(dims, strides, v.offset, mask), false
	}

	nv := NewViewDims(dims, nil, 0, nil)
	if v.contiguous {
		return nv, false
	}
	if merged := st.merger.Merge(v, nv); merged != nil {
		return merged, false
	}
	st.logger.Debug("reshape needs a new view", "view", v, "shape", shape)
	return nv, true
}

// unitMasked reports whether a size-1 dimension of v is masked out.
func unitMasked(v *View) bool {
	for i, s := range v.shape {
		if s == 1 && v.mask[i] != (Range{0, 1}) {
			return true
		}
	}
	return false
}

// Permute reorders the dimensions: dimension i of the result is dimension
// axes[i] of the input.
func (st *ShapeTracker) Permute(axes ...int) *ShapeTracker {
	v := st.last()
	must(CheckPermutation(len(v.shape), axes))
	dims := make([]Dim, len(axes))
	strides := make([]int, len(axes))
	var mask []Range
	if v.mask != nil {
		mask = make([]Range, len(axes))
	}
	for i, ax := range axes {
		dims[i] = v.dims[ax]
		strides[i] = v.strides[ax]
		if mask != nil {
			mask[i] = v.mask[ax]
		}
	}
	st.setLast(NewViewDims(dims, strides, v.offset, mask))
	return st
}

// Expand broadcasts size-1 dimensions to the given sizes.
func (st *ShapeTracker) Expand(shape ...int) *ShapeTracker {
	return st.ExpandDims(Ints(shape...)...)
}

// ExpandDims is like Expand for targets that may be bound symbolic
// dimensions.
func (st *ShapeTracker) ExpandDims(dims ...Dim) *ShapeTracker {
	dims = st.resolve(dims, false)
	v := st.last()
	shape := sizes(dims)
	must(CheckExpand(v.shape, v.strides, shape))
	var mask []Range
	if v.mask != nil {
		mask = make([]Range, len(shape))
		for i, m := range v.mask {
			switch {
			case v.shape[i] == shape[i]:
				mask[i] = m
			case m != (Range{0, 1}):
				mask[i] = Range{0, 0}
			default:
				mask[i] = Range{0, shape[i]}
			}
		}
	}
	st.setLast(NewViewDims(dims, v.strides, v.offset, mask))
	return st
}

// Pad adds invalid elements around every dimension.
func (st *ShapeTracker) Pad(pads ...Padding) *ShapeTracker {
	v := st.last()
	must(CheckPad(v.shape, pads))
	if !slices.ContainsFunc(pads, func(p Padding) bool { return p != Padding{} }) {
		return st
	}
	window := make([]Range, len(pads))
	mask := make([]Range, len(pads))
	for i, p := range pads {
		window[i] = Range{-p.Before, v.shape[i] + p.After}
		mask[i] = Range{p.Before, v.shape[i] + p.Before}
	}
	return st.unsafeResize(window, mask)
}

// Shrink narrows every dimension to the given window.
func (st *ShapeTracker) Shrink(window ...Range) *ShapeTracker {
	must(CheckShrink(st.last().shape, window))
	return st.unsafeResize(window, nil)
}

// unsafeResize moves the last view onto window, which may reach outside
// the current shape, intersecting any existing mask with mask.
func (st *ShapeTracker) unsafeResize(window, mask []Range) *ShapeTracker {
	v := st.last()
	offset := 0
	shape := make([]int, len(window))
	for i, r := range window {
		offset += v.strides[i] * r.Lo
		shape[i] = r.Hi - r.Lo
	}
	if v.mask != nil {
		moved := make([]Range, len(window))
		for i, m := range v.mask {
			r := window[i]
			moved[i] = Range{max(m.Lo-r.Lo, 0), min(m.Hi-r.Lo, r.Hi-r.Lo)}
		}
		if mask == nil {
			mask = moved
		} else {
			for i := range mask {
				mask[i] = Range{max(mask[i].Lo, moved[i].Lo), min(mask[i].Hi, moved[i].Hi)}
			}
		}
	}
	st.setLast(NewViewDims(inherit(v.dims, shape), v.strides, v.offset+offset, mask))
	return st
}

// Stride keeps every mul[i]-th element of dimension i. A negative
// multiplier walks the dimension backwards from its last element.
func (st *ShapeTracker) Stride(mul ...int) *ShapeTracker {
	v := st.last()
	must(CheckStride(len(v.shape), mul))
	shape := make([]int, len(mul))
	strides := make([]int, len(mul))
	offset := v.offset
	var mask []Range
	if v.mask != nil {
		mask = make([]Range, len(mul))
	}
	for i, m := range mul {
		s, z, am := v.shape[i], v.strides[i], abs(m)
		strides[i] = z * m
		shape[i] = (s + am - 1) / am
		if m < 0 {
			offset += (s - 1) * z
		}
		if mask != nil {
			lo, hi := v.mask[i].Lo, v.mask[i].Hi
			if m < 0 {
				lo, hi = s-hi, s-lo
			}
			mask[i] = Range{(lo + am - 1) / am, (hi + am - 1) / am}
		}
	}
	st.setLast(NewViewDims(inherit(v.dims, shape), strides, offset, mask))
	return st
}

// Flip reverses the given dimensions.
func (st *ShapeTracker) Flip(axes ...int) *ShapeTracker {
	rank := len(st.last().shape)
	must(CheckAxes(rank, axes))
	mul := make([]int, rank)
	for i := range mul {
		mul[i] = 1
	}
	for _, ax := range axes {
		mul[ax] = -1
	}
	return st.Stride(mul...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
