package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStdLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", map[string]any{"page": "home"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "page=home") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
}

func TestStdLogger_JSONWithBaseFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "cattery", Output: &buf}).
		With(map[string]any{"request_id": "r-1"})

	l.Error("boom", map[string]any{"err": errors.New("db down")})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected json line, got %q (%v)", buf.String(), err)
	}
	if entry["app"] != "cattery" || entry["request_id"] != "r-1" {
		t.Fatalf("missing base fields: %#v", entry)
	}
	if entry["err"] != "db down" || entry["level"] != "error" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
}

func TestFromContext_FallsBackToNop(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatalf("expected non-nil logger")
	}

	var buf bytes.Buffer
	l := New(Options{Output: &buf})
	ctx := IntoContext(context.Background(), l)
	FromContext(ctx).Info("hello", nil)
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("expected logger from context to be used, got %q", buf.String())
	}
}
