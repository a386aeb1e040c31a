package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandlerAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: LevelDebug}, false))

	l.With("panel", "timer").Info("tick", "remaining", "00:00:03")
	out := buf.String()
	if !strings.Contains(out, "panel=timer") || !strings.Contains(out, "remaining=00:00:03") {
		t.Fatalf("missing attrs: %q", out)
	}

	buf.Reset()
	l.WithGroup("exchange").Info("convert", "from", "USD")
	if !strings.Contains(buf.String(), "exchange.from=USD") {
		t.Fatalf("missing grouped attr: %q", buf.String())
	}
}

func TestPrettyHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: LevelWarn}, false))
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info record written at warn level: %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn record missing: %q", buf.String())
	}
}

func TestRedactAttr(t *testing.T) {
	cases := []struct {
		key    string
		redact bool
	}{
		{"password", true},
		{"generated_password", true},
		{"access_key", true},
		{"content", true},
		{"text", true},
		{"from", false},
		{"remaining", false},
	}
	for _, tc := range cases {
		got := RedactAttr(nil, slog.String(tc.key, "value"))
		redacted := got.Value.String() == "[REDACTED]"
		if redacted != tc.redact {
			t.Errorf("RedactAttr(%q) redacted=%v, want %v", tc.key, redacted, tc.redact)
		}
	}
}

func TestJSONOutputIsRedacted(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: RedactAttr}))
	l.Info("generated", "password", "hunter2hunter2")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record["password"] != "[REDACTED]" {
		t.Fatalf("password not redacted: %v", record["password"])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
