// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package symbolic_test

import (
	"errors"
	"testing"

	"github.com/born-ml/shapetrack/symbolic"
)

// TestPublicAPI exercises the exported constructors end to end.
func TestPublicAPI(t *testing.T) {
	idx := symbolic.Var("idx", 0, 63)
	off := idx.FloorDiv(8).Mod(4).Mul(16).AddInt(3)
	if got, want := off.String(), "((((idx//8)%4)*16)+3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if lo, hi := off.Bounds(); lo != 3 || hi != 51 {
		t.Errorf("Bounds() = %d, %d, want 3, 51", lo, hi)
	}
	v, err := off.Eval(map[string]int{"idx": 17})
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if v != 35 {
		t.Errorf("Eval() = %d, want 35", v)
	}
	if _, err := off.Eval(nil); !errors.Is(err, symbolic.ErrUnbound) {
		t.Errorf("Eval(nil) error = %v, want ErrUnbound", err)
	}

	a := symbolic.Var("a", 0, 7)
	if got := symbolic.Sum(a.Mul(2), a.Mul(3), symbolic.Num(1)).String(); got != "((a*5)+1)" {
		t.Errorf("Sum() = %q, want ((a*5)+1)", got)
	}
	if got := symbolic.Ands().Kind(); got != symbolic.KindNum {
		t.Errorf("Ands().Kind() = %v, want Num", got)
	}
	if got := symbolic.FloorDiv(-7, 2); got != -4 {
		t.Errorf("FloorDiv(-7, 2) = %d, want -4", got)
	}
}
