package wheelapp

import (
	"io"
	"log/slog"

	"github.com/edward-ap/miniwheel/internal/sound"
)

// SetTraceLogEnabled toggles per-click sound tracing. Call this before
// creating the App.
func SetTraceLogEnabled(b bool) { sound.SetTraceLoggingEnabled(b) }

// NewLogger returns a text logger writing to w at Info, or at Debug when
// trace is set.
func NewLogger(w io.Writer, trace bool) *slog.Logger {
	level := slog.LevelInfo
	if trace {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
