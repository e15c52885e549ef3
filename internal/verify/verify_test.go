package verify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/born-ml/shapetrack/internal/shapetracker"
	"github.com/born-ml/shapetrack/internal/symbolic"
	"github.com/born-ml/shapetrack/internal/tensor"
)

// shifted addresses the element after the one its tracker addresses.
type shifted struct {
	*shapetracker.ShapeTracker
}

func (s shifted) ExprNode(idx *symbolic.Node) (*symbolic.Node, *symbolic.Node) {
	off, valid := s.ShapeTracker.ExprNode(idx)
	return off.AddInt(1), valid
}

func TestEquivalent(t *testing.T) {
	ctx := context.Background()
	ref, err := tensor.Arange(tensor.Shape{4, 4})
	require.NoError(t, err)

	assert.NoError(t, Equivalent(ctx, shapetracker.New([]int{4, 4}), ref))
	assert.ErrorIs(t, Equivalent(ctx, shapetracker.New([]int{16}), ref), ErrShapeMismatch)

	err = Equivalent(ctx, shifted{shapetracker.New([]int{4, 4})}, ref)
	assert.ErrorIs(t, err, ErrMismatch)
	// eight reported mismatches and a summary of the rest
	assert.Len(t, multierr.Errors(err), maxReported+1)
}

func TestEquivalentEmpty(t *testing.T) {
	ref, err := tensor.Arange(tensor.Shape{4, 4})
	require.NoError(t, err)
	ref, err = ref.Shrink([][2]int{{1, 1}, {0, 4}})
	require.NoError(t, err)
	st := shapetracker.New([]int{4, 4}).Shrink(shapetracker.Range{Lo: 1, Hi: 1}, shapetracker.Range{Lo: 0, Hi: 4})
	assert.NoError(t, Equivalent(context.Background(), st, ref))
}

func TestEquivalentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ref, err := tensor.Arange(tensor.Shape{4, 4})
	require.NoError(t, err)
	assert.ErrorIs(t, Equivalent(ctx, shapetracker.New([]int{4, 4}), ref), context.Canceled)
}

func TestCheckerReferenceError(t *testing.T) {
	c, err := NewChecker([]int{2, 2})
	require.NoError(t, err)
	// the reference rejects the reshape before the tracker sees it
	c.Reshape(5).Permute(1, 0)
	assert.Error(t, c.Check(context.Background()))
	assert.Equal(t, []int{2, 2}, c.Tracker().Shape())

	_, err = NewChecker([]int{-1})
	assert.Error(t, err)
}

func TestCheckerPadFill(t *testing.T) {
	c, err := NewChecker([]int{2})
	require.NoError(t, err)
	c.Pad(shapetracker.Padding{Before: 1, After: 1})
	require.NoError(t, c.Check(context.Background()))
	assert.Equal(t, []int{Invalid, 0, 1, Invalid}, c.Ref().Flatten())
}
