package symbolic

import "github.com/emirpasic/gods/v2/maps/linkedhashmap"

// Sum returns the simplified sum of nodes.
//
// Terms that are identically zero are dropped, nested sums are flattened,
// literal terms are folded into a single trailing constant and terms sharing
// a factor are merged. No terms yield Num(0) and a single surviving term is
// returned as is.
func Sum(nodes ...*Node) *Node {
	kept := make([]*Node, 0, len(nodes))
	for _, x := range nodes {
		if x.min != 0 || x.max != 0 {
			kept = append(kept, x)
		}
	}
	switch len(kept) {
	case 0:
		return Num(0)
	case 1:
		return kept[0]
	}

	var terms []*Node
	total := 0
	for _, x := range kept {
		for _, c := range x.FlatComponents() {
			if c.kind == KindNum {
				total += c.b
			} else {
				terms = append(terms, c)
			}
		}
	}
	if len(terms) > 1 && countFactors(terms) < len(terms) {
		terms = factorize(terms)
	}
	if total != 0 {
		terms = append(terms, Num(total))
	}
	switch len(terms) {
	case 0:
		return Num(0)
	case 1:
		return terms[0]
	}
	return newSum(terms)
}

// Add returns n + other.
func (n *Node) Add(other *Node) *Node { return Sum(n, other) }

// AddInt returns n + v.
func (n *Node) AddInt(v int) *Node { return Sum(n, Num(v)) }

// Sub returns n - other.
func (n *Node) Sub(other *Node) *Node { return Sum(n, other.Neg()) }

// SubInt returns n - v.
func (n *Node) SubInt(v int) *Node { return Sum(n, Num(-v)) }

// Neg returns -n.
func (n *Node) Neg() *Node { return n.Mul(-1) }

// factor splits a term into its base expression and integer coefficient.
func factor(x *Node) (*Node, int) {
	if x.kind == KindMul {
		return x.a, x.b
	}
	return x, 1
}

func countFactors(terms []*Node) int {
	seen := make(map[string]struct{}, len(terms))
	for _, x := range terms {
		base, _ := factor(x)
		seen[base.key] = struct{}{}
	}
	return len(seen)
}

type factorGroup struct {
	base *Node
	coef int
}

// factorize merges terms that share a base expression by summing their
// coefficients. Groups keep the order in which their base first appears.
func factorize(terms []*Node) []*Node {
	groups := linkedhashmap.New[string, *factorGroup]()
	for _, x := range terms {
		base, coef := factor(x)
		if g, ok := groups.Get(base.key); ok {
			g.coef += coef
			continue
		}
		groups.Put(base.key, &factorGroup{base: base, coef: coef})
	}

	out := make([]*Node, 0, groups.Size())
	it := groups.Iterator()
	for it.Next() {
		g := it.Value()
		switch g.coef {
		case 0:
		case 1:
			out = append(out, g.base)
		default:
			out = append(out, newMul(g.base, g.coef))
		}
	}
	return out
}
