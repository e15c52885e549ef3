package config

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/born-ml/shapetrack/internal/logutil"
	"github.com/stretchr/testify/assert"
)

func TestDebug(t *testing.T) {
	tests := []struct {
		value string
		level int
		slog  slog.Level
	}{
		{"", 0, slog.LevelInfo},
		{"false", 0, slog.LevelInfo},
		{"0", 0, slog.LevelInfo},
		{"1", 1, slog.LevelDebug},
		{"true", 1, slog.LevelDebug},
		{"2", 2, logutil.LevelTrace},
		{" '3' ", 3, logutil.LevelTrace},
		{"bogus", 0, slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SHAPETRACK_DEBUG", tt.value)
			LoadConfig()
			assert.Equal(t, tt.level, DebugLevel)
			assert.Equal(t, tt.level > 0, Debug)
			assert.Equal(t, tt.slog, LogLevel())
		})
	}
}

func TestMergeCacheSize(t *testing.T) {
	t.Setenv("SHAPETRACK_MERGE_CACHE", "")
	LoadConfig()
	assert.Equal(t, 1024, MergeCacheSize)

	t.Setenv("SHAPETRACK_MERGE_CACHE", "0")
	LoadConfig()
	assert.Equal(t, 0, MergeCacheSize)

	t.Setenv("SHAPETRACK_MERGE_CACHE", "-4")
	LoadConfig()
	assert.Equal(t, 1024, MergeCacheSize)
}

func TestVerifyWorkers(t *testing.T) {
	t.Setenv("SHAPETRACK_VERIFY_WORKERS", "3")
	LoadConfig()
	assert.Equal(t, 3, VerifyWorkers)

	t.Setenv("SHAPETRACK_VERIFY_WORKERS", "none")
	LoadConfig()
	assert.Equal(t, runtime.NumCPU(), VerifyWorkers)
}

func TestAsMap(t *testing.T) {
	t.Setenv("SHAPETRACK_MERGE_CACHE", "16")
	LoadConfig()
	m := AsMap()
	assert.Len(t, m, 3)
	assert.Equal(t, 16, m["SHAPETRACK_MERGE_CACHE"].Value)
	assert.Equal(t, "16", Values()["SHAPETRACK_MERGE_CACHE"])
}
