package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"warn":   zapcore.WarnLevel,
		"":       zapcore.InfoLevel,
		"chatty": zapcore.InfoLevel,
		"error":  zapcore.ErrorLevel,
	}
	for level, want := range tests {
		logger, err := New(level)
		if err != nil {
			t.Fatalf("New(%q): %v", level, err)
		}
		if !logger.Core().Enabled(want) {
			t.Errorf("New(%q) should enable %s", level, want)
		}
		if want > zapcore.DebugLevel && logger.Core().Enabled(want-1) {
			t.Errorf("New(%q) should not enable %s", level, want-1)
		}
	}
}
