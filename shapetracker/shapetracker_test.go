// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shapetracker_test

import (
	"testing"

	"github.com/born-ml/shapetrack/shapetracker"
	"github.com/born-ml/shapetrack/symbolic"
)

// TestPublicAPI verifies the aliases expose the tracker end to end.
func TestPublicAPI(t *testing.T) {
	st := shapetracker.New([]int{1, 10})
	st.Expand(10, 10).Reshape(100)
	if n := st.NumViews(); n != 2 {
		t.Fatalf("NumViews() = %d, want 2", n)
	}
	st.Reshape(10, 10).Simplify()
	if n := st.NumViews(); n != 1 {
		t.Fatalf("NumViews() after Simplify = %d, want 1", n)
	}
	idx, valid := st.ExprIdxs(nil)
	if idx.String() != "idx1" || valid.String() != "1" {
		t.Errorf("ExprIdxs() = %s, %s, want idx1, 1", idx, valid)
	}
}

func TestSymbolicBinding(t *testing.T) {
	n := symbolic.Var("n", 1, 16)
	st := shapetracker.New([]int{8, 3}).ReshapeDims(shapetracker.Sym(n), shapetracker.D(3))
	if got := st.Bindings()["n"]; got != 8 {
		t.Errorf("binding for n = %d, want 8", got)
	}
}

func TestGetContraction(t *testing.T) {
	groups, ok := shapetracker.GetContraction([]int{1, 2, 3, 4}, []int{2, 3, 4})
	if !ok || len(groups) != 3 || len(groups[0]) != 2 {
		t.Errorf("GetContraction() = %v, %v", groups, ok)
	}
}
