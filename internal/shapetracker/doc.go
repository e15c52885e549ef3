// Package shapetracker tracks how movement operations map a logical index
// space onto a linear memory offset, without touching any data.
//
// # Overview
//
// A View is one affine mapping: shape, per-dimension strides, an offset and
// an optional per-dimension validity mask. A ShapeTracker is a stack of
// views, outermost first. Movement operations (Reshape, Permute, Expand,
// Pad, Shrink, Stride, Flip) rewrite the last view, and append a new one
// only when a reshape cannot be expressed on the current view.
//
// # Index Expressions
//
// Code generators ask the tracker for symbolic expressions:
//
//	st := shapetracker.New([]int{4, 6})
//	st.Permute(1, 0).Pad(shapetracker.Padding{Before: 1}, shapetracker.Padding{})
//	idx, valid := st.ExprIdxs(nil)
//	fmt.Println(idx)   // ((idx1*6)+-1+idx0)
//	fmt.Println(valid) // ((idx0*-1)<0)
//
// RealStrides reports the net constant stride of every dimension, or nil
// when the dimension cannot be addressed with a constant stride (or needs a
// validity check).
//
// # Errors
//
// Movement operations panic on invalid arguments (rank mismatch, negative
// padding, non-permutations, zero strides). The Check functions report the
// same conditions as errors for callers that want to validate first.
// Failing to merge two views is not an error: MergeViews returns nil and the
// tracker keeps both views.
package shapetracker
