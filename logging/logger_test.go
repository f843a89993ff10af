package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestServerLogger_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelWarn, Format: "json", Output: &buf})

	logger.Debug("debug message")
	logger.Info("info message")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn level, got %q", buf.String())
	}

	logger.Warn("warn message")
	logger.Error("error message")
	out := buf.String()
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Fatalf("expected warn and error output, got %q", out)
	}
}

func TestServerLogger_ContextualAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: &buf})

	logger.WithComponent("acceptor").WithSession("127.0.0.1:50001").Info("client connected")

	out := buf.String()
	for _, want := range []string{`"component":"acceptor"`, `"session_id":"127.0.0.1:50001"`, "client connected"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output, got %q", want, out)
		}
	}
}

func TestServerLogger_FormatsArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "text", Output: &buf})

	logger.Info("read failed session_id=%s error=%v", "c1", "boom")

	if !strings.Contains(buf.String(), "read failed session_id=c1 error=boom") {
		t.Fatalf("expected formatted message, got %q", buf.String())
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
