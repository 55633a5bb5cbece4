package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseLogLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Level != "WARNING" {
		t.Errorf("Default level = %q, want %q", config.Level, "WARNING")
	}
	if !config.ConsoleEnabled {
		t.Error("Default ConsoleEnabled = false, want true")
	}
	if config.FileEnabled {
		t.Error("Default FileEnabled = true, want false")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE_ENABLED", "true")
	t.Setenv("LOG_FILE_PATH", "custom.log")

	config := DefaultConfig()
	config.ApplyEnv()

	if config.Level != "DEBUG" {
		t.Errorf("Level = %q, want %q", config.Level, "DEBUG")
	}
	if !config.FileEnabled {
		t.Error("FileEnabled = false, want true")
	}
	if config.FilePath != "custom.log" {
		t.Errorf("FilePath = %q, want %q", config.FilePath, "custom.log")
	}
}

func TestSetOutputFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "WARNING")
	defer func() { logger = nil }()

	Info("hidden message")
	Warningf("visible %d", 42)

	output := buf.String()
	if strings.Contains(output, "hidden message") {
		t.Errorf("Info message logged at WARNING level: %q", output)
	}
	if !strings.Contains(output, "visible 42") {
		t.Errorf("Warning message missing from output: %q", output)
	}
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger = slog.New(h)
	defer func() { logger = nil }()

	Debug("room placed", "index", 3)
	Error("repair failed")

	if !strings.Contains(debugBuf.String(), "room placed") || !strings.Contains(debugBuf.String(), "repair failed") {
		t.Errorf("debug handler output = %q, want both records", debugBuf.String())
	}
	if strings.Contains(errorBuf.String(), "room placed") {
		t.Errorf("error handler received debug record: %q", errorBuf.String())
	}
	if !strings.Contains(errorBuf.String(), "repair failed") {
		t.Errorf("error handler output = %q, want error record", errorBuf.String())
	}
}

func TestLoggingBeforeInitializeIsNoop(t *testing.T) {
	logger = nil
	Debug("nothing")
	Errorf("still %s", "nothing")
}
