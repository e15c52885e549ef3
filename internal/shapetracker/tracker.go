package shapetracker

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/pkg/errors"

	"github.com/born-ml/shapetrack/internal/symbolic"
)

// ShapeTracker is a stack of views produced by movement operations. The
// last view faces the caller; each earlier view maps the offset produced
// by the one after it.
//
// A ShapeTracker is not safe for concurrent mutation. Clone it to hand a
// copy to another goroutine.
type ShapeTracker struct {
	views    []*View
	bindings map[string]int
	merger   *Merger
	logger   *slog.Logger
}

// New returns a tracker over a contiguous buffer of the given shape.
func New(shape []int, opts ...Option) *ShapeTracker {
	return NewDims(Ints(shape...), opts...)
}

// NewDims is like New for dimensions that may be symbolic. Symbolic
// dimensions must be bound.
func NewDims(dims []Dim, opts ...Option) *ShapeTracker {
	o := newOptions(opts)
	st := &ShapeTracker{merger: o.merger, logger: o.logger}
	for _, d := range dims {
		if d.Symbolic() && d.Bound() {
			st.bind(d)
		}
	}
	st.views = []*View{NewViewDims(dims, nil, 0, nil)}
	return st
}

// FromViews returns a tracker over an explicit view stack, outermost
// first.
func FromViews(views []*View, opts ...Option) *ShapeTracker {
	if len(views) == 0 {
		panic("shapetracker: FromViews needs at least one view")
	}
	o := newOptions(opts)
	st := &ShapeTracker{views: append([]*View(nil), views...), merger: o.merger, logger: o.logger}
	for _, d := range st.last().dims {
		if d.Symbolic() {
			st.bind(d)
		}
	}
	return st
}

// Clone returns an independent copy of st.
func (st *ShapeTracker) Clone() *ShapeTracker {
	return &ShapeTracker{
		views:    append([]*View(nil), st.views...),
		bindings: maps.Clone(st.bindings),
		merger:   st.merger,
		logger:   st.logger,
	}
}

func (st *ShapeTracker) last() *View { return st.views[len(st.views)-1] }

func (st *ShapeTracker) setLast(v *View) { st.views[len(st.views)-1] = v }

// Views returns the view stack, outermost first.
func (st *ShapeTracker) Views() []*View { return append([]*View(nil), st.views...) }

// NumViews returns the depth of the view stack.
func (st *ShapeTracker) NumViews() int { return len(st.views) }

// Shape returns the logical shape.
func (st *ShapeTracker) Shape() []int { return st.last().Shape() }

// Dims returns the logical shape with symbolic names.
func (st *ShapeTracker) Dims() []Dim { return st.last().Dims() }

// Bindings returns the values solved for symbolic dimensions.
func (st *ShapeTracker) Bindings() map[string]int { return maps.Clone(st.bindings) }

func (st *ShapeTracker) bind(d Dim) {
	name := d.Var().Name()
	if prev, ok := st.bindings[name]; ok && prev != d.Size() {
		panic(errors.Wrapf(ErrSymbolicDims, "%s was %d, set to %d", name, prev, d.Size()))
	}
	if st.bindings == nil {
		st.bindings = make(map[string]int)
	}
	st.bindings[name] = d.Size()
}

// Contiguous reports whether st is a single row-major view.
func (st *ShapeTracker) Contiguous() bool {
	return len(st.views) == 1 && st.views[0].contiguous
}

// Size returns the number of distinct elements the last view can address.
func (st *ShapeTracker) Size() int {
	v := st.last()
	size := 1
	for i, s := range v.shape {
		if v.strides[i] != 0 {
			size *= s
		}
	}
	return size
}

// NeedsValid reports whether any view carries a mask.
func (st *ShapeTracker) NeedsValid() bool {
	for _, v := range st.views {
		if v.mask != nil {
			return true
		}
	}
	return false
}

func (st *ShapeTracker) exprIdx(idx, valid *symbolic.Node) (*symbolic.Node, *symbolic.Node) {
	for i := len(st.views) - 2; i >= 0; i-- {
		v := st.views[i]
		valid = v.ExprNodeMask(idx, valid)
		idx = v.ExprNode(idx)
	}
	return idx, valid
}

func (st *ShapeTracker) defaultIdxs() []*symbolic.Node {
	shape := st.last().shape
	idxs := make([]*symbolic.Node, len(shape))
	for i, s := range shape {
		idxs[i] = idxVar(fmt.Sprintf("idx%d", i), s)
	}
	return idxs
}

// ExprIdxs returns the buffer offset and validity for one index per
// dimension. Nil idxs selects variables idx0, idx1, ... over each
// dimension.
func (st *ShapeTracker) ExprIdxs(idxs []*symbolic.Node) (idx, valid *symbolic.Node) {
	if idxs == nil {
		idxs = st.defaultIdxs()
	}
	v := st.last()
	return st.exprIdx(v.ExprIdxs(idxs), v.ExprNodeMask(IdxsToIdx(v.shape, idxs), nil))
}

// ExprNode returns the buffer offset and validity for a flat row-major
// index. Nil idx selects a variable "idx" over the whole shape.
func (st *ShapeTracker) ExprNode(idx *symbolic.Node) (*symbolic.Node, *symbolic.Node) {
	if idx == nil {
		idx = idxVar("idx", symbolic.Prod(st.last().shape))
	}
	v := st.last()
	return st.exprIdx(v.ExprNode(idx), v.ExprNodeMask(idx, nil))
}

// RealOffset returns the buffer offset of index zero.
func (st *ShapeTracker) RealOffset() int {
	off, valid := st.ExprNode(symbolic.Num(0))
	if !off.IsNum() {
		panic(fmt.Sprintf("shapetracker: offset %s (valid %s) is not constant", off, valid))
	}
	return off.Const()
}

// RealStrides returns the net stride of every dimension through the whole
// view stack. An entry is nil when the dimension is not addressed by a
// constant stride, including when it takes part in the validity predicate
// and ignoreValid is false.
func (st *ShapeTracker) RealStrides(ignoreValid bool) []*symbolic.Node {
	if len(st.views) == 1 && st.last().mask == nil {
		return strideNodes(st.last().strides)
	}
	idxs := st.defaultIdxs()
	idx, valid := st.ExprIdxs(idxs)
	pos := make(map[string]int, len(idxs))
	for i, x := range idxs {
		if !x.IsNum() {
			pos[x.Key()] = i
		}
	}

	ret := make([]*symbolic.Node, len(idxs))
	uses := make(map[string]int)
	for _, term := range idx.FlatComponents() {
		for _, v := range term.Vars() {
			uses[v.Key()]++
		}
		switch {
		case term.Kind() == symbolic.KindVar:
			if i, ok := pos[term.Key()]; ok {
				ret[i] = symbolic.Num(1)
			}
		case term.Kind() == symbolic.KindMul && term.Operand().Kind() == symbolic.KindVar:
			if i, ok := pos[term.Operand().Key()]; ok {
				ret[i] = symbolic.Num(term.Const())
			}
		}
	}

	validVars := make(map[string]bool)
	for _, v := range valid.Vars() {
		validVars[v.Key()] = true
	}
	for i, x := range idxs {
		key := x.Key()
		switch {
		case x.IsNum():
			ret[i] = symbolic.Num(0)
		case validVars[key] && !ignoreValid:
			ret[i] = nil
		case uses[key] == 0:
			ret[i] = symbolic.Num(0)
		case uses[key] > 1:
			// the variable also feeds a nonlinear term
			ret[i] = nil
		}
	}
	return ret
}

// UnitStrideAxes returns the dimensions whose real stride is 1.
func (st *ShapeTracker) UnitStrideAxes(ignoreValid bool) []int {
	var axes []int
	for i, s := range st.RealStrides(ignoreValid) {
		if s != nil && s.IsNum() && s.Const() == 1 {
			axes = append(axes, i)
		}
	}
	return axes
}

// Simplify folds the last two views together for as long as they merge.
func (st *ShapeTracker) Simplify() *ShapeTracker {
	for len(st.views) >= 2 {
		outer, inner := st.views[len(st.views)-2], st.last()
		merged := st.merger.Merge(outer, inner)
		if merged == nil {
			break
		}
		st.logger.Debug("simplify", "outer", outer, "inner", inner, "merged", merged)
		st.views = append(st.views[:len(st.views)-2], merged)
	}
	return st
}

// String renders the view stack.
func (st *ShapeTracker) String() string {
	return fmt.Sprintf("ShapeTracker(views=%v)", st.views)
}
