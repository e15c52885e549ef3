package symbolic

import "fmt"

// Mul returns n * b.
//
// Products distribute over sums and conjunctions, and a comparison x<c
// becomes (x*b)<(c*b).
func (n *Node) Mul(b int) *Node {
	switch b {
	case 0:
		return Num(0)
	case 1:
		return n
	}
	switch n.kind {
	case KindNum:
		return Num(n.b * b)
	case KindMul:
		return n.a.Mul(n.b * b)
	case KindSum:
		terms := make([]*Node, len(n.nodes))
		for i, x := range n.nodes {
			terms[i] = x.Mul(b)
		}
		return Sum(terms...)
	case KindLt:
		return n.a.Mul(b).Lt(n.b * b)
	case KindAnd:
		terms := make([]*Node, len(n.nodes))
		for i, x := range n.nodes {
			terms[i] = x.Mul(b)
		}
		return Ands(terms...)
	}
	return newMul(n, b)
}

// FloorDiv returns n // b.
//
// FloorDiv panics if b is zero. A negative divisor divides by |b| and
// negates the quotient.
func (n *Node) FloorDiv(b int) *Node {
	return n.floorDiv(b, true)
}

func (n *Node) floorDiv(b int, factoring bool) *Node {
	switch n.kind {
	case KindNum:
		if b == 0 {
			panic("symbolic: division by zero")
		}
		if b < 0 {
			return Num(FloorDiv(n.b, -b) * -1)
		}
		return Num(FloorDiv(n.b, b))
	case KindLt:
		return n.a.FloorDiv(b).Lt(FloorDiv(n.b, b))
	case KindMul:
		switch {
		case b != 0 && FloorMod(n.b, b) == 0:
			return n.a.Mul(n.b / b)
		case n.b > 0 && FloorMod(b, n.b) == 0:
			return n.a.FloorDiv(b / n.b)
		}
	case KindDiv:
		return n.a.FloorDiv(n.b * b)
	case KindMod:
		if b > 0 && n.b%b == 0 {
			return n.a.FloorDiv(b).Mod(n.b / b)
		}
	case KindSum:
		return n.sumFloorDiv(b, factoring)
	case KindAnd:
		terms := make([]*Node, len(n.nodes))
		for i, x := range n.nodes {
			terms[i] = x.FloorDiv(b)
		}
		return Ands(terms...)
	}
	return n.nodeFloorDiv(b, factoring)
}

// nodeFloorDiv is the division every variant falls back to.
func (n *Node) nodeFloorDiv(b int, factoring bool) *Node {
	switch {
	case b == 0:
		panic(fmt.Sprintf("symbolic: division of %s by zero", n))
	case b < 0:
		return n.floorDiv(-b, factoring).Mul(-1)
	case b == 1:
		return n
	}
	if n.min < 0 {
		offset := FloorDiv(n.min, b)
		return n.AddInt(-offset*b).floorDiv(b, false).AddInt(offset)
	}
	return newDiv(n, b)
}

// sumFloorDiv splits the terms of a sum into those exactly divisible by b
// and a remainder that is divided as a whole, first reducing the remainder
// by the gcd of its coefficients or by a coefficient that divides b.
func (n *Node) sumFloorDiv(b int, factoring bool) *Node {
	if b == 1 {
		return n
	}
	if !factoring || b <= 0 {
		return n.nodeFloorDiv(b, factoring)
	}

	var divided, rest []*Node
	g, divisor := b, 1
	for _, x := range n.FlatComponents() {
		if x.kind != KindNum && x.kind != KindMul {
			rest = append(rest, x)
			g = 1
			continue
		}
		if FloorMod(x.b, b) == 0 {
			divided = append(divided, x.FloorDiv(b))
			continue
		}
		rest = append(rest, x)
		g = GCD(g, x.b)
		if x.kind == KindMul && divisor == 1 && x.b > 0 && b%x.b == 0 {
			divisor = x.b
		}
	}

	switch {
	case g > 1:
		return Sum(divided...).Add(Sum(rest...).FloorDiv(g).FloorDiv(b / g))
	case divisor > 1:
		return Sum(divided...).Add(Sum(rest...).FloorDiv(divisor).FloorDiv(b / divisor))
	}
	return Sum(divided...).Add(Sum(rest...).nodeFloorDiv(b, true))
}

// Mod returns n % b. Mod panics unless b is positive.
func (n *Node) Mod(b int) *Node {
	switch n.kind {
	case KindNum:
		if b <= 0 {
			panic(fmt.Sprintf("symbolic: modulus by non-positive %d", b))
		}
		return Num(FloorMod(n.b, b))
	case KindMul:
		if b > 0 {
			return n.a.Mul(FloorMod(n.b, b)).nodeMod(b)
		}
	case KindMod:
		if b > 0 && n.b%b == 0 {
			return n.a.Mod(b)
		}
	case KindSum:
		if b > 0 {
			terms := make([]*Node, len(n.nodes))
			for i, x := range n.nodes {
				switch x.kind {
				case KindNum:
					terms[i] = Num(FloorMod(x.b, b))
				case KindMul:
					terms[i] = x.a.Mul(FloorMod(x.b, b))
				default:
					terms[i] = x
				}
			}
			return Sum(terms...).nodeMod(b)
		}
	}
	return n.nodeMod(b)
}

func (n *Node) nodeMod(b int) *Node {
	switch {
	case b <= 0:
		panic(fmt.Sprintf("symbolic: modulus of %s by non-positive %d", n, b))
	case b == 1:
		return Num(0)
	case n.min >= 0 && n.max < b:
		return n
	case n.min < 0:
		return n.AddInt(-FloorDiv(n.min, b) * b).Mod(b)
	}
	return newMod(n, b)
}
