// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shapetracker

import (
	"log/slog"

	"github.com/born-ml/shapetrack/internal/shapetracker"
	"github.com/born-ml/shapetrack/internal/symbolic"
)

// ShapeTracker is a stack of views produced by movement operations.
type ShapeTracker = shapetracker.ShapeTracker

// View is a single affine mapping with an optional validity mask.
type View = shapetracker.View

// Dim is a concrete or symbolic dimension.
type Dim = shapetracker.Dim

// Range is a half-open index range used by Shrink and view masks.
type Range = shapetracker.Range

// Padding is the padding added around one dimension.
type Padding = shapetracker.Padding

// Run is a group of dimensions addressed with one stride.
type Run = shapetracker.Run

// Merger folds stacked views and memoizes the results.
type Merger = shapetracker.Merger

// Option configures a ShapeTracker.
type Option = shapetracker.Option

// MovementOp names a movement operation for ShapeTracker.Apply.
type MovementOp = shapetracker.MovementOp

// Movement operations.
const (
	OpReshape = shapetracker.OpReshape
	OpPermute = shapetracker.OpPermute
	OpExpand  = shapetracker.OpExpand
	OpPad     = shapetracker.OpPad
	OpShrink  = shapetracker.OpShrink
	OpStride  = shapetracker.OpStride
)

// Precondition violations. Movement operations panic with these errors.
var (
	ErrRankMismatch   = shapetracker.ErrRankMismatch
	ErrNotPermutation = shapetracker.ErrNotPermutation
	ErrBadExpand      = shapetracker.ErrBadExpand
	ErrNegativePad    = shapetracker.ErrNegativePad
	ErrShrinkBounds   = shapetracker.ErrShrinkBounds
	ErrZeroStride     = shapetracker.ErrZeroStride
	ErrSizeMismatch   = shapetracker.ErrSizeMismatch
	ErrBadShape       = shapetracker.ErrBadShape
	ErrSymbolicDims   = shapetracker.ErrSymbolicDims
	ErrBadArgument    = shapetracker.ErrBadArgument
)

// New returns a tracker over a contiguous buffer of the given shape.
//
// Example:
//
//	st := shapetracker.New([]int{7, 4})
//	st.Permute(1, 0).Permute(1, 0)
//	st.Contiguous() // true
func New(shape []int, opts ...Option) *ShapeTracker {
	return shapetracker.New(shape, opts...)
}

// NewDims returns a tracker over dimensions that may be symbolic.
func NewDims(dims []Dim, opts ...Option) *ShapeTracker {
	return shapetracker.NewDims(dims, opts...)
}

// FromViews returns a tracker over an explicit view stack, outermost first.
func FromViews(views []*View, opts ...Option) *ShapeTracker {
	return shapetracker.FromViews(views, opts...)
}

// NewView returns a view; nil strides select row-major strides and a nil
// mask means every index is valid.
func NewView(shape, strides []int, offset int, mask []Range) *View {
	return shapetracker.NewView(shape, strides, offset, mask)
}

// D returns the concrete dimension n.
func D(n int) Dim {
	return shapetracker.D(n)
}

// Sym returns a dimension named by variable v, solved on Reshape.
//
// Example:
//
//	n := symbolic.Var("n", 1, 16)
//	st := shapetracker.New([]int{8, 3}).ReshapeDims(shapetracker.Sym(n), shapetracker.D(3))
//	st.Bindings() // map[n:8]
func Sym(v *symbolic.Node) Dim {
	return shapetracker.Sym(v)
}

// WithLogger sets the tracker's logger.
func WithLogger(logger *slog.Logger) Option {
	return shapetracker.WithLogger(logger)
}

// WithMerger sets the merger used to fold views.
func WithMerger(m *Merger) Option {
	return shapetracker.WithMerger(m)
}

// NewMerger returns a merger memoizing up to size results.
func NewMerger(size int, logger *slog.Logger) *Merger {
	return shapetracker.NewMerger(size, logger)
}

// MergeViews folds inner read through outer into one view, or returns nil.
func MergeViews(outer, inner *View) *View {
	return shapetracker.MergeViews(outer, inner)
}

// GetContraction groups the axes of oldShape to match newShape.
//
// Example:
//
//	shapetracker.GetContraction([]int{1, 2, 3, 4}, []int{2, 3, 4}) // [[0 1] [2] [3]] true
func GetContraction(oldShape, newShape []int) ([][]int, bool) {
	return shapetracker.GetContraction(oldShape, newShape)
}

// StridesForShape returns row-major strides with size-1 dimensions at 0.
func StridesForShape(shape []int) []int {
	return shapetracker.StridesForShape(shape)
}
