package log

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		hasError bool
	}{
		{"trace", LevelTrace, false},
		{"TRACE", LevelTrace, false},
		{"fatal", LevelFatal, false},
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"invalid", slog.LevelInfo, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			level, err := ParseLevel(test.input)

			if test.hasError {
				if err == nil {
					t.Errorf("Expected error for input %s, but got none", test.input)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for input %s: %v", test.input, err)
			}
			if level != test.expected {
				t.Errorf("Expected level %v for input %s, got %v", test.expected, test.input, level)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"JSON", false},
		{"yaml", true},
		{"", true},
	}

	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			logger, err := New(LevelTrace, false, test.format)
			if (err != nil) != test.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", test.format, err, test.wantErr)
			}
			if err == nil && logger == nil {
				t.Errorf("New(%q) returned nil logger", test.format)
			}
		})
	}
}

func TestCustomLevels(t *testing.T) {
	logger, err := New(LevelTrace, true, "text")
	if err != nil {
		t.Fatal(err)
	}
	slog.SetDefault(logger)

	slog.Error("This is an ERROR message")
	slog.Warn("This is a WARN message")
	slog.Info("This is an INFO message")
	slog.Debug("This is a DEBUG message")
	Trace(logger, "This is a TRACE message")

	t.Log("All log levels have been printed above")
}
