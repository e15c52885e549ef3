package symbolic

import "fmt"

// Kind identifies the variant of a Node.
type Kind uint8

// Node kinds.
const (
	KindNum Kind = iota
	KindVar
	KindLt
	KindMul
	KindDiv
	KindMod
	KindSum
	KindAnd
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNum:
		return "Num"
	case KindVar:
		return "Var"
	case KindLt:
		return "Lt"
	case KindMul:
		return "Mul"
	case KindDiv:
		return "Div"
	case KindMod:
		return "Mod"
	case KindSum:
		return "Sum"
	case KindAnd:
		return "And"
	default:
		return "Unknown"
	}
}

// Node is an immutable bounded integer expression.
//
// The zero value is not usable; build nodes with Num, Var, Sum, Ands and the
// arithmetic methods.
type Node struct {
	kind  Kind
	name  string  // Var
	a     *Node   // Lt, Mul, Div, Mod
	b     int     // Num value, or the constant operand of Lt, Mul, Div, Mod
	nodes []*Node // Sum, And
	min   int
	max   int
	key   string
	str   string
}

// Num returns the literal v.
func Num(v int) *Node {
	n := &Node{kind: KindNum, b: v, min: v, max: v}
	n.str = n.render(false)
	n.key = n.str
	return n
}

// Var returns a variable bounded to [lo, hi]. A variable whose bounds
// coincide is returned as the literal lo.
//
// Var panics if lo is negative or greater than hi.
func Var(name string, lo, hi int) *Node {
	if lo < 0 || lo > hi {
		panic(fmt.Sprintf("symbolic: invalid variable %s[%d-%d]", name, lo, hi))
	}
	if lo == hi {
		return Num(lo)
	}
	return seal(&Node{kind: KindVar, name: name, min: lo, max: hi})
}

// seal computes the rendered forms of a freshly built node, or replaces it
// with a literal when its bounds have collapsed.
func seal(n *Node) *Node {
	if n.min == n.max {
		return Num(n.min)
	}
	n.str = n.render(false)
	n.key = n.render(true)
	return n
}

func newMul(a *Node, b int) *Node {
	n := &Node{kind: KindMul, a: a, b: b}
	if b >= 0 {
		n.min, n.max = a.min*b, a.max*b
	} else {
		n.min, n.max = a.max*b, a.min*b
	}
	return seal(n)
}

func newDiv(a *Node, b int) *Node {
	if a.min < 0 {
		panic(fmt.Sprintf("symbolic: division of %s with negative lower bound", a))
	}
	return seal(&Node{kind: KindDiv, a: a, b: b, min: a.min / b, max: a.max / b})
}

func newMod(a *Node, b int) *Node {
	if a.min < 0 {
		panic(fmt.Sprintf("symbolic: modulus of %s with negative lower bound", a))
	}
	n := &Node{kind: KindMod, a: a, b: b}
	if a.max-a.min >= b || (a.min != a.max && a.min%b >= a.max%b) {
		n.min, n.max = 0, b-1
	} else {
		n.min, n.max = a.min%b, a.max%b
	}
	return seal(n)
}

func newLt(a *Node, b int) *Node {
	return seal(&Node{kind: KindLt, a: a, b: b, min: boolInt(a.max < b), max: boolInt(a.min < b)})
}

func newSum(nodes []*Node) *Node {
	n := &Node{kind: KindSum, nodes: nodes}
	for _, x := range nodes {
		n.min += x.min
		n.max += x.max
	}
	return seal(n)
}

func newAnd(nodes []*Node) *Node {
	n := &Node{kind: KindAnd, nodes: nodes, min: nodes[0].min, max: nodes[0].max}
	for _, x := range nodes[1:] {
		n.min = min(n.min, x.min)
		n.max = max(n.max, x.max)
	}
	return seal(n)
}

// Kind returns the variant of n.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the variable name, or "" for any other kind.
func (n *Node) Name() string { return n.name }

// Operand returns the expression a Lt, Mul, Div or Mod node applies to.
func (n *Node) Operand() *Node { return n.a }

// Const returns the literal value of a Num, or the constant operand of a Lt,
// Mul, Div or Mod node.
func (n *Node) Const() int { return n.b }

// Nodes returns the children of a Sum or And node.
func (n *Node) Nodes() []*Node {
	out := make([]*Node, len(n.nodes))
	copy(out, n.nodes)
	return out
}

// Min returns the lower bound of n.
func (n *Node) Min() int { return n.min }

// Max returns the upper bound of n.
func (n *Node) Max() int { return n.max }

// Bounds returns the lower and upper bound of n.
func (n *Node) Bounds() (lo, hi int) { return n.min, n.max }

// IsNum reports whether n is a literal.
func (n *Node) IsNum() bool { return n.kind == KindNum }

// Key returns the canonical rendering of n, including variable bounds.
func (n *Node) Key() string { return n.key }

// String renders n as an expression.
func (n *Node) String() string { return n.str }

// Equal reports whether n and other are the same expression.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.key == other.key
}

// FlatComponents returns the additive terms of n: the children of a Sum,
// or n itself.
func (n *Node) FlatComponents() []*Node {
	if n.kind != KindSum {
		return []*Node{n}
	}
	var out []*Node
	for _, x := range n.nodes {
		out = append(out, x.FlatComponents()...)
	}
	return out
}

// Vars returns the distinct variables appearing in n, in order of first
// appearance.
func (n *Node) Vars() []*Node {
	seen := make(map[string]bool)
	var out []*Node
	var walk func(x *Node)
	walk = func(x *Node) {
		switch x.kind {
		case KindVar:
			if !seen[x.key] {
				seen[x.key] = true
				out = append(out, x)
			}
		case KindLt, KindMul, KindDiv, KindMod:
			walk(x.a)
		case KindSum, KindAnd:
			for _, c := range x.nodes {
				walk(c)
			}
		}
	}
	walk(n)
	return out
}
