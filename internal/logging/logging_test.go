package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		level string
		quiet bool
		want  log.Level
	}{
		{"debug", false, log.DebugLevel},
		{"INFO", false, log.InfoLevel},
		{"", false, log.InfoLevel},
		{"warning", false, log.WarnLevel},
		{"error", false, log.ErrorLevel},
		{"debug", true, log.ErrorLevel},
	}
	for _, c := range cases {
		var b bytes.Buffer
		if got := New(&b, c.level, c.quiet).GetLevel(); got != c.want {
			t.Fatalf("level %q quiet=%v: got %v want %v", c.level, c.quiet, got, c.want)
		}
	}
}

func TestNew_UnknownLevelWarns(t *testing.T) {
	var b bytes.Buffer
	l := New(&b, "chatty", false)
	if l.GetLevel() != log.InfoLevel {
		t.Fatalf("unknown level should default to info")
	}
	if !strings.Contains(b.String(), "unknown log level") {
		t.Fatalf("expected warning, got %q", b.String())
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing")
}
