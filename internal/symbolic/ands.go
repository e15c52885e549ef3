package symbolic

// Ands returns the logical conjunction of nodes.
//
// No operands yield Num(1). Any operand that is constantly zero makes the
// result Num(0); other constant operands are dropped.
func Ands(nodes ...*Node) *Node {
	switch len(nodes) {
	case 0:
		return Num(1)
	case 1:
		return nodes[0]
	}
	for _, x := range nodes {
		if x.min == 0 && x.max == 0 {
			return Num(0)
		}
	}
	kept := make([]*Node, 0, len(nodes))
	for _, x := range nodes {
		if x.min != x.max {
			kept = append(kept, x)
		}
	}
	switch len(kept) {
	case 0:
		return Num(1)
	case 1:
		return kept[0]
	}
	return newAnd(kept)
}
