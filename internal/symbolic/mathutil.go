package symbolic

import "golang.org/x/exp/constraints"

// FloorDiv divides a by b rounding toward negative infinity.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a modulo b with the sign of b.
func FloorMod[T constraints.Signed](a, b T) T {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// CeilDiv divides a by a positive b rounding toward positive infinity.
func CeilDiv[T constraints.Signed](a, b T) T {
	return -FloorDiv(-a, b)
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD[T constraints.Signed](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Prod multiplies all values together. The product of no values is 1.
func Prod[T constraints.Integer](xs []T) T {
	p := T(1)
	for _, x := range xs {
		p *= x
	}
	return p
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
