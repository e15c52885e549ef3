// Package symbolic implements bounded integer expressions used to describe
// tensor index arithmetic.
//
// # Overview
//
// A Node is an immutable expression over integer literals and named bounded
// variables. Supported operations are addition, multiplication by a constant,
// floor division and modulus by a constant, comparison against a constant and
// logical conjunction.
//
// Every node carries a [min, max] bound that is maintained on construction.
// Whenever the bound collapses to a single value the node is replaced by a
// literal, so Num(3) and a variable bounded to [3, 3] are the same thing.
//
// # Construction
//
// Nodes are only built through constructors that simplify eagerly:
//
//	idx := symbolic.Var("idx", 0, 63)
//	off := idx.FloorDiv(8).Mod(4).Mul(16).AddInt(3)
//	fmt.Println(off)          // ((((idx//8)%4)*16)+3)
//	fmt.Println(off.Bounds()) // 3 51
//
// Sums flatten nested sums, fold literal terms into one constant and merge
// terms sharing a factor (a*2 + a*3 becomes a*5). Division and modulus push
// through products and sums wherever the result stays exact.
//
// # Equality
//
// Two nodes are equal when their keys are equal. The key is the rendering
// with variable bounds included; children of sums and conjunctions are
// rendered in sorted order so the key does not depend on term order.
package symbolic
