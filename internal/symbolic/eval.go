package symbolic

import "github.com/pkg/errors"

// ErrUnbound is returned by Eval when a variable has no value.
var ErrUnbound = errors.New("unbound variable")

// ErrOutOfBounds is returned by Eval when a variable's value lies outside
// its declared bounds.
var ErrOutOfBounds = errors.New("variable out of bounds")

// Eval evaluates n with the variable values in env. Division and modulus
// round toward negative infinity; comparisons and conjunctions yield 1 or 0.
func (n *Node) Eval(env map[string]int) (int, error) {
	switch n.kind {
	case KindNum:
		return n.b, nil
	case KindVar:
		v, ok := env[n.name]
		if !ok {
			return 0, errors.Wrap(ErrUnbound, n.name)
		}
		if v < n.min || v > n.max {
			return 0, errors.Wrapf(ErrOutOfBounds, "%s=%d not in [%d, %d]", n.name, v, n.min, n.max)
		}
		return v, nil
	case KindSum:
		total := 0
		for _, x := range n.nodes {
			v, err := x.Eval(env)
			if err != nil {
				return 0, err
			}
			total += v
		}
		return total, nil
	case KindAnd:
		ok := true
		for _, x := range n.nodes {
			v, err := x.Eval(env)
			if err != nil {
				return 0, err
			}
			ok = ok && v != 0
		}
		return boolInt(ok), nil
	}

	a, err := n.a.Eval(env)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case KindLt:
		return boolInt(a < n.b), nil
	case KindMul:
		return a * n.b, nil
	case KindDiv:
		return FloorDiv(a, n.b), nil
	case KindMod:
		return FloorMod(a, n.b), nil
	}
	return 0, errors.Errorf("cannot evaluate %s node", n.kind)
}

// MustEval is like Eval but panics on error.
func (n *Node) MustEval(env map[string]int) int {
	v, err := n.Eval(env)
	if err != nil {
		panic(err)
	}
	return v
}
