package symbolic

// Lt returns the comparison n < b, which evaluates to 1 or 0.
//
// For a sum, the positive multiplicative terms that can reach b are kept on
// their own when b is a multiple of their gcd and the remaining terms stay
// within [0, gcd). The remaining terms cannot change the outcome then.
func (n *Node) Lt(b int) *Node {
	lhs := n
	if n.kind == KindSum {
		if reduced := sumLt(n.nodes, b); reduced != nil {
			lhs = reduced
		}
	}
	return newLt(lhs, b)
}

func sumLt(nodes []*Node, b int) *Node {
	var muls, others []*Node
	for _, x := range nodes {
		if x.kind == KindMul && x.b > 0 && x.max >= b {
			muls = append(muls, x)
		} else {
			others = append(others, x)
		}
	}
	if len(muls) == 0 {
		return nil
	}
	g := muls[0].b
	for _, x := range muls[1:] {
		g = GCD(g, x.b)
	}
	if FloorMod(b, g) != 0 {
		return nil
	}
	rest := Sum(others...)
	if rest.min < 0 || rest.max >= g {
		return nil
	}
	return Sum(muls...)
}

// Le returns n <= b.
func (n *Node) Le(b int) *Node { return n.Lt(b + 1) }

// Gt returns n > b.
func (n *Node) Gt(b int) *Node { return n.Neg().Lt(-b) }

// Ge returns n >= b.
func (n *Node) Ge(b int) *Node { return n.Neg().Lt(-b + 1) }
