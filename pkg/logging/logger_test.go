package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("default level = %s, want info", cfg.Level)
	}
	if cfg.Pretty {
		t.Error("default pretty = true, want false")
	}
	if cfg.Output == nil {
		t.Error("default output is nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input LogLevel
		want  zerolog.Level
	}{
		{input: LevelDebug, want: zerolog.DebugLevel},
		{input: LevelInfo, want: zerolog.InfoLevel},
		{input: LevelWarn, want: zerolog.WarnLevel},
		{input: "warning", want: zerolog.WarnLevel},
		{input: LevelError, want: zerolog.ErrorLevel},
		{input: "WARN", want: zerolog.WarnLevel},
		{input: "nonsense", want: zerolog.InfoLevel},
		{input: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetup_WritesJSONToOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelInfo, Output: buf})

	logger.Info().Str("endpoint", "/api/articles/search").Msg("Searching articles")

	out := buf.String()
	if !strings.Contains(out, `"message":"Searching articles"`) {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, `"endpoint":"/api/articles/search"`) {
		t.Errorf("output missing endpoint field: %s", out)
	}
	if !strings.Contains(out, `"time":`) {
		t.Errorf("output missing timestamp: %s", out)
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelWarn, Output: buf})

	logger.Debug().Msg("below threshold")
	logger.Info().Msg("also below threshold")
	logger.Warn().Msg("visible warning")

	out := buf.String()
	if strings.Contains(out, "below threshold") {
		t.Errorf("debug/info leaked through warn level: %s", out)
	}
	if !strings.Contains(out, "visible warning") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestSetup_Pretty(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{Level: LevelInfo, Pretty: true, Output: buf})

	logger.Info().Msg("console output")

	// Console writer renders the message as plain text, not JSON.
	out := buf.String()
	if !strings.Contains(out, "console output") {
		t.Errorf("message missing from console output: %s", out)
	}
	if strings.Contains(out, `"message"`) {
		t.Errorf("console output looks like JSON: %s", out)
	}
}

func TestNewLogger_ComponentField(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelDebug, Output: buf})

	logger := NewLogger("pagination").Output(buf)
	logger.Debug().Msg("advancing stream")

	out := buf.String()
	if !strings.Contains(out, `"component":"pagination"`) {
		t.Errorf("component field missing: %s", out)
	}
}
