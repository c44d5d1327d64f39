package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandlerOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelDebug)
	log.Info("extraction complete", "modules", 7, "input", "my file.exe")

	out := buf.String()
	if !strings.Contains(out, "extraction complete") {
		t.Fatalf("message missing: %q", out)
	}
	if !strings.Contains(out, "modules=7") {
		t.Fatalf("attr missing: %q", out)
	}
	if !strings.Contains(out, `input="my file.exe"`) {
		t.Fatalf("attr with spaces should be quoted: %q", out)
	}
}

func TestPrettyHandlerLevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn should pass: %q", out)
	}
}

func TestWithAddsAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelInfo).With("input", "a.exe")
	log.Info("scanning")

	if !strings.Contains(buf.String(), "input=a.exe") {
		t.Fatalf("With attrs missing: %q", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelInfo)
	ctx := WithContext(context.Background(), log)
	if FromContext(ctx) != log {
		t.Fatalf("context logger lost")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
