package verify

import (
	"context"

	"github.com/pkg/errors"

	"github.com/born-ml/shapetrack/internal/shapetracker"
	"github.com/born-ml/shapetrack/internal/tensor"
)

// Checker applies each movement operation to a ShapeTracker and to a
// dense reference array, so the two can be compared with Check.
//
// The first failing reference operation is kept and returned by Check;
// later operations are ignored.
type Checker struct {
	st  *shapetracker.ShapeTracker
	ref *tensor.Array
	err error
}

// NewChecker returns a checker over a contiguous buffer of the given
// shape.
func NewChecker(shape []int, opts ...shapetracker.Option) (*Checker, error) {
	ref, err := tensor.Arange(tensor.Shape(shape))
	if err != nil {
		return nil, err
	}
	return &Checker{st: shapetracker.New(shape, opts...), ref: ref}, nil
}

// Tracker returns the tracker under test.
func (c *Checker) Tracker() *shapetracker.ShapeTracker { return c.st }

// Ref returns the reference array.
func (c *Checker) Ref() *tensor.Array { return c.ref }

func (c *Checker) apply(name string, ref func() (*tensor.Array, error), st func()) *Checker {
	if c.err != nil {
		return c
	}
	out, err := ref()
	if err != nil {
		c.err = errors.Wrapf(err, "reference %s", name)
		return c
	}
	c.ref = out
	st()
	return c
}

// Reshape reshapes both layouts.
func (c *Checker) Reshape(shape ...int) *Checker {
	return c.apply("reshape",
		func() (*tensor.Array, error) { return c.ref.Reshape(tensor.Shape(shape)) },
		func() { c.st.Reshape(shape...) })
}

// Permute permutes both layouts.
func (c *Checker) Permute(axes ...int) *Checker {
	return c.apply("permute",
		func() (*tensor.Array, error) { return c.ref.Permute(axes...) },
		func() { c.st.Permute(axes...) })
}

// Expand broadcasts both layouts.
func (c *Checker) Expand(shape ...int) *Checker {
	return c.apply("expand",
		func() (*tensor.Array, error) { return c.ref.Expand(tensor.Shape(shape)) },
		func() { c.st.Expand(shape...) })
}

// Pad pads both layouts; the reference fills with Invalid.
func (c *Checker) Pad(pads ...shapetracker.Padding) *Checker {
	arg := make([][2]int, len(pads))
	for i, p := range pads {
		arg[i] = [2]int{p.Before, p.After}
	}
	return c.apply("pad",
		func() (*tensor.Array, error) { return c.ref.Pad(arg, Invalid) },
		func() { c.st.Pad(pads...) })
}

// Shrink shrinks both layouts.
func (c *Checker) Shrink(window ...shapetracker.Range) *Checker {
	arg := make([][2]int, len(window))
	for i, r := range window {
		arg[i] = [2]int{r.Lo, r.Hi}
	}
	return c.apply("shrink",
		func() (*tensor.Array, error) { return c.ref.Shrink(arg) },
		func() { c.st.Shrink(window...) })
}

// Stride strides both layouts.
func (c *Checker) Stride(mul ...int) *Checker {
	return c.apply("stride",
		func() (*tensor.Array, error) { return c.ref.Stride(mul...) },
		func() { c.st.Stride(mul...) })
}

// Flip reverses axes of both layouts.
func (c *Checker) Flip(axes ...int) *Checker {
	return c.apply("flip",
		func() (*tensor.Array, error) { return c.ref.Flip(axes...) },
		func() { c.st.Flip(axes...) })
}

// Simplify folds the tracker's views; the reference is unchanged.
func (c *Checker) Simplify() *Checker {
	if c.err == nil {
		c.st.Simplify()
	}
	return c
}

// Check reports the first failed operation, or whether the tracker still
// addresses the same elements as the reference.
func (c *Checker) Check(ctx context.Context) error {
	if c.err != nil {
		return c.err
	}
	return Equivalent(ctx, c.st, c.ref)
}
