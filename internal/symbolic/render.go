package symbolic

import (
	"sort"
	"strconv"
	"strings"
)

func (n *Node) render(debug bool) string {
	child := func(c *Node) string {
		if debug {
			return c.key
		}
		return c.str
	}
	switch n.kind {
	case KindNum:
		return strconv.Itoa(n.b)
	case KindVar:
		if debug {
			return n.name + "[" + strconv.Itoa(n.min) + "-" + strconv.Itoa(n.max) + "]"
		}
		return n.name
	case KindLt:
		return "(" + child(n.a) + "<" + strconv.Itoa(n.b) + ")"
	case KindMul:
		return "(" + child(n.a) + "*" + strconv.Itoa(n.b) + ")"
	case KindDiv:
		return "(" + child(n.a) + "//" + strconv.Itoa(n.b) + ")"
	case KindMod:
		return "(" + child(n.a) + "%" + strconv.Itoa(n.b) + ")"
	case KindSum, KindAnd:
		parts := make([]string, len(n.nodes))
		for i, c := range n.nodes {
			parts[i] = child(c)
		}
		sort.Strings(parts)
		sep := "+"
		if n.kind == KindAnd {
			sep = " and "
		}
		return "(" + strings.Join(parts, sep) + ")"
	}
	return "?"
}
