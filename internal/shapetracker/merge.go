package shapetracker

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/born-ml/shapetrack/internal/logutil"
	"github.com/born-ml/shapetrack/internal/symbolic"
)

// Merger folds two stacked views into one when their composition is
// affine. Results are memoized by view key; a Merger is safe for
// concurrent use.
type Merger struct {
	cache  *lru.Cache[string, *View]
	logger *slog.Logger
}

// NewMerger returns a merger remembering up to size results. A size of
// zero disables memoization.
func NewMerger(size int, logger *slog.Logger) *Merger {
	if logger == nil {
		logger = logutil.Discard()
	}
	m := &Merger{logger: logger}
	if size > 0 {
		// lru.New only fails for a non-positive size.
		m.cache, _ = lru.New[string, *View](size)
	}
	return m
}

// Len returns the number of memoized results.
func (m *Merger) Len() int {
	if m.cache == nil {
		return 0
	}
	return m.cache.Len()
}

// Merge returns a single view equivalent to reading inner through outer,
// or nil when no such view exists.
func (m *Merger) Merge(outer, inner *View) *View {
	if m.cache == nil {
		return m.merge(outer, inner)
	}
	key := outer.key + "|" + inner.key
	if v, ok := m.cache.Get(key); ok {
		return v
	}
	v := m.merge(outer, inner)
	m.cache.Add(key, v)
	return v
}

func (m *Merger) merge(outer, inner *View) *View {
	if outer.mask != nil {
		logutil.Trace(m.logger, "merge rejected: outer view is masked", "outer", outer, "inner", inner)
		return nil
	}
	st := &ShapeTracker{views: []*View{outer, inner}, merger: m, logger: m.logger}
	real := st.RealStrides(true)
	strides := make([]int, len(real))
	for i, s := range real {
		if s == nil {
			logutil.Trace(m.logger, "merge rejected: stride not affine", "dim", i, "outer", outer, "inner", inner)
			return nil
		}
		strides[i] = s.Const()
	}
	return NewViewDims(inner.dims, strides, st.RealOffset(), inner.mask)
}

// MergeViews folds inner read through outer into one view using the
// default merger, or returns nil when the composition is not affine.
func MergeViews(outer, inner *View) *View {
	return defaultMerger().Merge(outer, inner)
}

func strideNodes(strides []int) []*symbolic.Node {
	out := make([]*symbolic.Node, len(strides))
	for i, s := range strides {
		out[i] = symbolic.Num(s)
	}
	return out
}
