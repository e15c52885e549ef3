package tensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arange(t *testing.T, shape ...int) *Array {
	t.Helper()
	a, err := Arange(Shape(shape))
	require.NoError(t, err)
	return a
}

func TestArrayMovement(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) (*Array, error)
		shape Shape
		want  []int
	}{
		{"arange", func(t *testing.T) (*Array, error) { return arange(t, 2, 3), nil },
			Shape{2, 3}, []int{0, 1, 2, 3, 4, 5}},
		{"permute", func(t *testing.T) (*Array, error) { return arange(t, 2, 3).Permute(1, 0) },
			Shape{3, 2}, []int{0, 3, 1, 4, 2, 5}},
		{"reshape permuted", func(t *testing.T) (*Array, error) {
			p, err := arange(t, 2, 3).Permute(1, 0)
			if err != nil {
				return nil, err
			}
			return p.Reshape(Shape{6})
		}, Shape{6}, []int{0, 3, 1, 4, 2, 5}},
		{"expand", func(t *testing.T) (*Array, error) { return arange(t, 1, 3).Expand(Shape{2, 3}) },
			Shape{2, 3}, []int{0, 1, 2, 0, 1, 2}},
		{"shrink", func(t *testing.T) (*Array, error) { return arange(t, 3, 3).Shrink([][2]int{{1, 3}, {0, 2}}) },
			Shape{2, 2}, []int{3, 4, 6, 7}},
		{"pad", func(t *testing.T) (*Array, error) { return arange(t, 2).Pad([][2]int{{1, 2}}, -1) },
			Shape{5}, []int{-1, 0, 1, -1, -1}},
		{"stride", func(t *testing.T) (*Array, error) { return arange(t, 5).Stride(2) },
			Shape{3}, []int{0, 2, 4}},
		{"stride negative", func(t *testing.T) (*Array, error) { return arange(t, 5).Stride(-2) },
			Shape{3}, []int{4, 2, 0}},
		{"flip", func(t *testing.T) (*Array, error) { return arange(t, 2, 2).Flip(0, 1) },
			Shape{2, 2}, []int{3, 2, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.build(t)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, a.Shape())
			if diff := cmp.Diff(tt.want, a.Flatten()); diff != "" {
				t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArrayErrors(t *testing.T) {
	a := arange(t, 2, 3)
	_, err := a.Reshape(Shape{4})
	assert.Error(t, err)
	_, err = a.Permute(0, 0)
	assert.Error(t, err)
	_, err = a.Expand(Shape{4, 3})
	assert.Error(t, err)
	_, err = a.Shrink([][2]int{{0, 3}, {0, 3}})
	assert.Error(t, err)
	_, err = a.Pad([][2]int{{-1, 0}, {0, 0}}, 0)
	assert.Error(t, err)
	_, err = a.Stride(0, 1)
	assert.Error(t, err)
	_, err = a.Flip(2)
	assert.Error(t, err)
	_, err = Arange(Shape{-1})
	assert.Error(t, err)
	assert.Panics(t, func() { a.At(2, 0) })
}

func TestArrayAt(t *testing.T) {
	a := arange(t, 2, 3)
	assert.Equal(t, 5, a.At(1, 2))
	p, err := a.Permute(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, p.At(2, 1))
	assert.Equal(t, []int{1, 3}, p.Strides())
}
