// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package symbolic provides bounded integer expressions for tensor index
// arithmetic.
//
// # Overview
//
// Expressions are immutable trees over literals and named variables with a
// declared [min, max] range:
//   - Num, Var: leaves
//   - Sum, Ands: n-ary addition and conjunction
//   - Mul, FloorDiv, Mod, Lt: binary operations against a constant
//
// Construction simplifies eagerly and tracks bounds, so an expression whose
// range collapses to one value becomes a literal.
//
// # Basic Usage
//
//	import "github.com/born-ml/shapetrack/symbolic"
//
//	func main() {
//	    idx := symbolic.Var("idx", 0, 63)
//	    off := idx.FloorDiv(8).Mod(4).Mul(16).AddInt(3)
//	    fmt.Println(off) // ((((idx//8)%4)*16)+3)
//
//	    v, err := off.Eval(map[string]int{"idx": 17})
//	    // v == 35
//	}
//
// # Equality
//
// Node.Equal compares canonical keys: the rendering with variable bounds,
// with sum and conjunction terms in sorted order.
package symbolic
