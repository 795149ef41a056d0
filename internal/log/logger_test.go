package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{" DEBUG ", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestComponentTagging(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Handler: slog.NewTextHandler(&buf, nil), Component: "ledger"})
	l.Info("hello")
	if !strings.Contains(buf.String(), "component=ledger") {
		t.Fatalf("missing component attribute: %s", buf.String())
	}

	buf.Reset()
	l.WithComponent("http").Info("again")
	if !strings.Contains(buf.String(), "component=http") {
		t.Fatalf("missing overridden component: %s", buf.String())
	}
	if l.Component() != "ledger" {
		t.Fatalf("original logger component changed: %s", l.Component())
	}
}
