package shapetracker

import (
	"log/slog"
	"os"
	"sync"

	"github.com/born-ml/shapetrack/internal/config"
	"github.com/born-ml/shapetrack/internal/logutil"
)

// Option configures a ShapeTracker.
type Option func(*options)

type options struct {
	logger *slog.Logger
	merger *Merger
}

// WithLogger sets the logger that reports reshape fallbacks and
// simplification.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMerger sets the merger used to fold views.
func WithMerger(m *Merger) Option {
	return func(o *options) {
		o.merger = m
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = defaultLogger()
	}
	if o.merger == nil {
		o.merger = defaultMerger()
	}
	return o
}

var defaultLogger = sync.OnceValue(func() *slog.Logger {
	config.Load()
	if !config.Debug {
		return logutil.Discard()
	}
	return logutil.NewLogger(os.Stderr, config.LogLevel())
})

var defaultMerger = sync.OnceValue(func() *Merger {
	config.Load()
	return NewMerger(config.MergeCacheSize, defaultLogger())
})
