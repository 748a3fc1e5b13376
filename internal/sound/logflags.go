package sound

import "sync/atomic"

var traceLogEnabled atomic.Bool

// SetTraceLoggingEnabled turns per-click debug logging on or off for every
// Player in the process.
func SetTraceLoggingEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

func isTraceLoggingEnabled() bool {
	return traceLogEnabled.Load()
}
