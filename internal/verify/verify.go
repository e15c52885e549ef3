// Package verify checks symbolic index expressions against a dense
// reference array by evaluating them at every logical index.
package verify

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/born-ml/shapetrack/internal/config"
	"github.com/born-ml/shapetrack/internal/parallel"
	"github.com/born-ml/shapetrack/internal/symbolic"
	"github.com/born-ml/shapetrack/internal/tensor"
)

// Invalid is the value the reference holds where no buffer element is
// addressed.
const Invalid = -1

// maxReported bounds the mismatches collected into one error.
const maxReported = 8

var (
	// ErrShapeMismatch is returned when the indexer and the reference
	// disagree on the logical shape.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrMismatch is returned when an index expression addresses a
	// different element than the reference.
	ErrMismatch = errors.New("index mismatch")
)

// Indexer maps logical indices of a shape to buffer offsets and validity.
type Indexer interface {
	Shape() []int
	ExprNode(idx *symbolic.Node) (*symbolic.Node, *symbolic.Node)
	ExprIdxs(idxs []*symbolic.Node) (*symbolic.Node, *symbolic.Node)
}

// Equivalent evaluates the flat and per-dimension expressions of ix at
// every logical index and compares the addressed buffer offset with ref,
// which holds buffer offsets and Invalid for masked elements.
func Equivalent(ctx context.Context, ix Indexer, ref *tensor.Array) error {
	shape := tensor.Shape(ix.Shape())
	if !shape.Equal(ref.Shape()) {
		return errors.Wrapf(ErrShapeMismatch, "indexer %v, reference %v", shape, ref.Shape())
	}
	n := shape.NumElements()
	if n == 0 {
		return nil
	}
	want := ref.Flatten()

	flatIdx, flatValid := ix.ExprNode(flatVar(n))
	idxs := make([]*symbolic.Node, len(shape))
	for i, s := range shape {
		idxs[i] = symbolic.Num(0)
		if s > 1 {
			idxs[i] = symbolic.Var(fmt.Sprintf("idx%d", i), 0, s-1)
		}
	}
	dimIdx, dimValid := ix.ExprIdxs(idxs)

	config.Load()
	var (
		mu   sync.Mutex
		errs error
		bad  int
	)
	report := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if bad < maxReported {
			errs = multierr.Append(errs, err)
		}
		bad++
	}

	err := parallel.For(ctx, n, func(ctx context.Context, start, end int) error {
		env := make(map[string]int, len(shape)+1)
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			env["idx"] = i
			rem := i
			for d := len(shape) - 1; d >= 0; d-- {
				env[fmt.Sprintf("idx%d", d)] = rem % shape[d]
				rem /= shape[d]
			}
			for _, e := range []struct {
				form       string
				idx, valid *symbolic.Node
			}{
				{"flat", flatIdx, flatValid},
				{"per-dimension", dimIdx, dimValid},
			} {
				got, err := lookup(e.idx, e.valid, env)
				if err != nil {
					return errors.Wrapf(err, "%s expression at index %d", e.form, i)
				}
				if got != want[i] {
					report(errors.Wrapf(ErrMismatch, "%s expression at index %d: got %d, want %d", e.form, i, got, want[i]))
				}
			}
		}
		return nil
	}, parallel.WithWorkers(config.VerifyWorkers))
	if err != nil {
		return err
	}
	if bad > maxReported {
		errs = multierr.Append(errs, errors.Errorf("%d more mismatches", bad-maxReported))
	}
	return errs
}

func flatVar(n int) *symbolic.Node {
	if n <= 1 {
		return symbolic.Num(0)
	}
	return symbolic.Var("idx", 0, n-1)
}

func lookup(idx, valid *symbolic.Node, env map[string]int) (int, error) {
	ok, err := valid.Eval(env)
	if err != nil {
		return 0, err
	}
	if ok == 0 {
		return Invalid, nil
	}
	return idx.Eval(env)
}
