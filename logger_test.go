package canvas

import (
	"context"
	"log/slog"
	"testing"
)

// TestLoggerDefaultSilent verifies the default logger discards everything
// without formatting.
func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

// TestSetLogger verifies SetLogger stores the logger and nil restores the
// silent default.
func TestSetLogger(t *testing.T) {
	custom := slog.New(nopHandler{})
	SetLogger(custom)
	if Logger() != custom {
		t.Error("SetLogger did not store the custom logger")
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
