// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package symbolic

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/shapetrack/internal/symbolic"
)

// Node is an immutable bounded integer expression.
type Node = symbolic.Node

// Kind identifies the variant of a Node.
type Kind = symbolic.Kind

// Node kinds.
const (
	KindNum = symbolic.KindNum
	KindVar = symbolic.KindVar
	KindLt  = symbolic.KindLt
	KindMul = symbolic.KindMul
	KindDiv = symbolic.KindDiv
	KindMod = symbolic.KindMod
	KindSum = symbolic.KindSum
	KindAnd = symbolic.KindAnd
)

// Evaluation errors.
var (
	ErrUnbound     = symbolic.ErrUnbound
	ErrOutOfBounds = symbolic.ErrOutOfBounds
)

// Num returns the literal v.
func Num(v int) *Node {
	return symbolic.Num(v)
}

// Var returns a variable bounded to [lo, hi].
//
// Example:
//
//	a := symbolic.Var("a", 3, 8)
//	a.Lt(8) // (a<8)
//	a.Lt(3) // 0
func Var(name string, lo, hi int) *Node {
	return symbolic.Var(name, lo, hi)
}

// Sum returns the simplified sum of nodes.
//
// Example:
//
//	a := symbolic.Var("a", 0, 7)
//	symbolic.Sum(a.Mul(2), a.Mul(3), symbolic.Num(1)) // ((a*5)+1)
func Sum(nodes ...*Node) *Node {
	return symbolic.Sum(nodes...)
}

// Ands returns the simplified conjunction of nodes.
func Ands(nodes ...*Node) *Node {
	return symbolic.Ands(nodes...)
}

// FloorDiv returns a / b rounded toward negative infinity.
func FloorDiv[T constraints.Signed](a, b T) T {
	return symbolic.FloorDiv(a, b)
}

// FloorMod returns a modulo b with the sign of b.
func FloorMod[T constraints.Signed](a, b T) T {
	return symbolic.FloorMod(a, b)
}
