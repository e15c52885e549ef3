package tensor

import "github.com/pkg/errors"

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements in the array.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= s[i]
	}
	return strides
}

// BroadcastTo checks that s can be broadcast to target under NumPy rules
// for equal-rank shapes: every dimension either matches or is 1.
//
// Examples:
//
//	(3, 1) -> (3, 5)  ok
//	(1, 5) -> (3, 5)  ok
//	(3, 4) -> (3, 5)  error
func (s Shape) BroadcastTo(target Shape) error {
	if len(s) != len(target) {
		return errors.Errorf("cannot broadcast %v to %v: rank %d vs %d", s, target, len(s), len(target))
	}
	for i := range s {
		if s[i] != target[i] && s[i] != 1 {
			return errors.Errorf("cannot broadcast %v to %v (dimension %d: %d vs %d)", s, target, i, s[i], target[i])
		}
	}
	return nil
}
