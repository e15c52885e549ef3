// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shapetracker provides zero-copy layout tracking for tensors.
//
// # Overview
//
// A ShapeTracker records the movement operations applied to a buffer
// (reshape, permute, expand, pad, shrink, stride, flip) as a stack of
// affine views, and answers where each logical element lives:
//   - ExprIdxs, ExprNode: symbolic buffer offset and validity
//   - RealStrides, RealOffset: constant strides when they exist
//   - Contiguous, NeedsValid: fast-path checks for code generators
//
// # Basic Usage
//
//	import "github.com/born-ml/shapetrack/shapetracker"
//
//	func main() {
//	    st := shapetracker.New([]int{1, 10})
//	    st.Expand(10, 10).Reshape(100) // two views
//	    st.Reshape(10, 10).Simplify()  // folded back into one
//
//	    idx, valid := st.ExprIdxs(nil)
//	    fmt.Println(idx, valid) // idx1 1
//	}
//
// # Configuration
//
// SHAPETRACK_DEBUG enables debug (1) or trace (2) logging of view merges,
// and SHAPETRACK_MERGE_CACHE sets how many merge results are memoized.
package shapetracker
