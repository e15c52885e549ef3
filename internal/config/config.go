// Package config reads shapetrack settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/born-ml/shapetrack/internal/logutil"
)

var (
	// Set via SHAPETRACK_DEBUG in the environment.
	Debug bool
	// Debug level; 2 and above enables trace output.
	DebugLevel int
	// Set via SHAPETRACK_MERGE_CACHE in the environment.
	MergeCacheSize int
	// Set via SHAPETRACK_VERIFY_WORKERS in the environment.
	VerifyWorkers int
)

const defaultMergeCacheSize = 1024

var loadOnce sync.Once

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every configuration variable with its current value.
func AsMap() map[string]EnvVar {
	ensureLoaded()
	return map[string]EnvVar{
		"SHAPETRACK_DEBUG":          {"SHAPETRACK_DEBUG", DebugLevel, "Show debug output for view merges (1 debug, 2 trace)"},
		"SHAPETRACK_MERGE_CACHE":    {"SHAPETRACK_MERGE_CACHE", MergeCacheSize, "Number of view merges to memoize (default 1024, 0 disables)"},
		"SHAPETRACK_VERIFY_WORKERS": {"SHAPETRACK_VERIFY_WORKERS", VerifyWorkers, "Workers used by dense verification sweeps (default number of CPUs)"},
	}
}

// Values returns the configuration as strings.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// LogLevel returns the slog level implied by SHAPETRACK_DEBUG.
func LogLevel() slog.Level {
	ensureLoaded()
	switch {
	case DebugLevel >= 2:
		return logutil.LevelTrace
	case DebugLevel == 1:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// clean trims surrounding whitespace and quotes from an environment value.
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func ensureLoaded() {
	loadOnce.Do(load)
}

// Load reads the environment on first use; later calls keep the values
// already read.
func Load() {
	ensureLoaded()
}

// LoadConfig (re)reads every variable from the environment.
func LoadConfig() {
	loadOnce.Do(func() {})
	load()
}

func load() {
	Debug, DebugLevel = false, 0
	if debug := clean("SHAPETRACK_DEBUG"); debug != "" {
		if n, err := strconv.Atoi(debug); err == nil {
			DebugLevel = max(n, 0)
		} else if b, err := strconv.ParseBool(debug); err == nil {
			if b {
				DebugLevel = 1
			}
		} else {
			slog.Warn("invalid setting, ignoring", "SHAPETRACK_DEBUG", debug)
		}
		Debug = DebugLevel > 0
	}

	MergeCacheSize = defaultMergeCacheSize
	if size := clean("SHAPETRACK_MERGE_CACHE"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil || n < 0 {
			slog.Warn("invalid setting, ignoring", "SHAPETRACK_MERGE_CACHE", size)
		} else {
			MergeCacheSize = n
		}
	}

	VerifyWorkers = runtime.NumCPU()
	if workers := clean("SHAPETRACK_VERIFY_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil || n <= 0 {
			slog.Warn("invalid setting, ignoring", "SHAPETRACK_VERIFY_WORKERS", workers)
		} else {
			VerifyWorkers = n
		}
	}
}
