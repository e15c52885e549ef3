// Package tensor provides a dense strided integer array that mirrors
// movement operations element by element.
package tensor

import (
	"github.com/pkg/errors"
)

// Array is a strided integer view used as a dense reference for index
// arithmetic. Movement methods return new views sharing the buffer where
// NumPy would, and copy where NumPy would (reshape of a non-contiguous view,
// pad).
type Array struct {
	data    []int
	shape   Shape
	strides []int
	offset  int
}

// Arange returns a contiguous array holding 0, 1, ... in row-major order.
func Arange(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]int, shape.NumElements())
	for i := range data {
		data[i] = i
	}
	return &Array{data: data, shape: shape.Clone(), strides: shape.ComputeStrides()}, nil
}

// Full returns a contiguous array with every element set to v.
func Full(shape Shape, v int) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]int, shape.NumElements())
	for i := range data {
		data[i] = v
	}
	return &Array{data: data, shape: shape.Clone(), strides: shape.ComputeStrides()}, nil
}

// Shape returns the array dimensions.
func (a *Array) Shape() Shape { return a.shape.Clone() }

// Strides returns the element strides of the view.
func (a *Array) Strides() []int {
	out := make([]int, len(a.strides))
	copy(out, a.strides)
	return out
}

// At returns the element at idx.
func (a *Array) At(idx ...int) int {
	if len(idx) != len(a.shape) {
		panic(errors.Errorf("index %v has rank %d, array has rank %d", idx, len(idx), len(a.shape)))
	}
	pos := a.offset
	for i, x := range idx {
		if x < 0 || x >= a.shape[i] {
			panic(errors.Errorf("index %v out of range for shape %v", idx, a.shape))
		}
		pos += x * a.strides[i]
	}
	return a.data[pos]
}

// Flatten returns the elements in row-major order.
func (a *Array) Flatten() []int {
	n := a.shape.NumElements()
	out := make([]int, 0, n)
	if n == 0 {
		return out
	}
	idx := make([]int, len(a.shape))
	for range n {
		out = append(out, a.At(idx...))
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < a.shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return out
}

func (a *Array) view(shape Shape, strides []int, offset int) *Array {
	return &Array{data: a.data, shape: shape, strides: strides, offset: offset}
}

// Reshape returns the array with a new shape holding the same elements in
// row-major order.
func (a *Array) Reshape(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != a.shape.NumElements() {
		return nil, errors.Errorf("cannot reshape %v into %v", a.shape, shape)
	}
	return &Array{data: a.Flatten(), shape: shape.Clone(), strides: shape.ComputeStrides()}, nil
}

// Permute reorders the axes of the array.
func (a *Array) Permute(axes ...int) (*Array, error) {
	if len(axes) != len(a.shape) {
		return nil, errors.Errorf("permutation %v does not match rank %d", axes, len(a.shape))
	}
	seen := make([]bool, len(axes))
	shape := make(Shape, len(axes))
	strides := make([]int, len(axes))
	for i, ax := range axes {
		if ax < 0 || ax >= len(axes) || seen[ax] {
			return nil, errors.Errorf("invalid permutation %v", axes)
		}
		seen[ax] = true
		shape[i], strides[i] = a.shape[ax], a.strides[ax]
	}
	return a.view(shape, strides, a.offset), nil
}

// Expand broadcasts size-1 dimensions to shape.
func (a *Array) Expand(shape Shape) (*Array, error) {
	if err := a.shape.BroadcastTo(shape); err != nil {
		return nil, err
	}
	strides := a.Strides()
	for i := range shape {
		if a.shape[i] != shape[i] {
			strides[i] = 0
		}
	}
	return a.view(shape.Clone(), strides, a.offset), nil
}

// Shrink keeps the half-open window [lo, hi) of every dimension.
func (a *Array) Shrink(window [][2]int) (*Array, error) {
	if len(window) != len(a.shape) {
		return nil, errors.Errorf("window %v does not match rank %d", window, len(a.shape))
	}
	shape := make(Shape, len(window))
	offset := a.offset
	for i, w := range window {
		if w[0] < 0 || w[0] > w[1] || w[1] > a.shape[i] {
			return nil, errors.Errorf("window %v out of range for dimension %d of size %d", w, i, a.shape[i])
		}
		shape[i] = w[1] - w[0]
		offset += w[0] * a.strides[i]
	}
	return a.view(shape, a.Strides(), offset), nil
}

// Pad adds pads[i][0] elements before and pads[i][1] elements after
// dimension i, filled with fill.
func (a *Array) Pad(pads [][2]int, fill int) (*Array, error) {
	if len(pads) != len(a.shape) {
		return nil, errors.Errorf("padding %v does not match rank %d", pads, len(a.shape))
	}
	shape := make(Shape, len(pads))
	for i, p := range pads {
		if p[0] < 0 || p[1] < 0 {
			return nil, errors.Errorf("negative padding %v on dimension %d", p, i)
		}
		shape[i] = a.shape[i] + p[0] + p[1]
	}
	out, err := Full(shape, fill)
	if err != nil {
		return nil, err
	}
	if a.shape.NumElements() == 0 {
		return out, nil
	}
	idx := make([]int, len(a.shape))
	for _, v := range a.Flatten() {
		pos := 0
		for d, x := range idx {
			pos += (x + pads[d][0]) * out.strides[d]
		}
		out.data[pos] = v
		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < a.shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return out, nil
}

// Stride takes every steps[i]-th element of dimension i, walking backwards
// from the last element when the step is negative.
func (a *Array) Stride(steps ...int) (*Array, error) {
	if len(steps) != len(a.shape) {
		return nil, errors.Errorf("steps %v do not match rank %d", steps, len(a.shape))
	}
	shape := make(Shape, len(steps))
	strides := make([]int, len(steps))
	offset := a.offset
	for i, m := range steps {
		if m == 0 {
			return nil, errors.Errorf("zero step on dimension %d", i)
		}
		k := m
		if k < 0 {
			k = -k
			if a.shape[i] > 0 {
				offset += (a.shape[i] - 1) * a.strides[i]
			}
		}
		shape[i] = (a.shape[i] + k - 1) / k
		strides[i] = a.strides[i] * m
	}
	return a.view(shape, strides, offset), nil
}

// Flip reverses the listed axes.
func (a *Array) Flip(axes ...int) (*Array, error) {
	steps := make([]int, len(a.shape))
	for i := range steps {
		steps[i] = 1
	}
	for _, ax := range axes {
		if ax < 0 || ax >= len(steps) {
			return nil, errors.Errorf("axis %d out of range for rank %d", ax, len(steps))
		}
		steps[ax] = -1
	}
	return a.Stride(steps...)
}
