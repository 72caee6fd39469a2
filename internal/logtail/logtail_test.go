package logtail

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jester.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestTail(t *testing.T) {
	var all []string
	for i := 1; i <= 25; i++ {
		all = append(all, fmt.Sprintf("line %d", i))
	}
	path := writeLog(t, all...)

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"all when zero", 0, all},
		{"all when negative", -3, all},
		{"last five", 5, all[20:]},
		{"last one", 1, all[24:]},
		{"exactly all", 25, all},
		{"more than exists", 100, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(path, tt.n)
			if err != nil {
				t.Fatalf("Tail: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tail(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestTailMissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("expected no error for missing log, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil lines, got %v", got)
	}
}

func TestTailDirectoryFails(t *testing.T) {
	if _, err := Tail(t.TempDir(), 10); err == nil {
		t.Fatal("expected error reading a directory")
	}
}

func TestRenderFormatsEvents(t *testing.T) {
	lines := []string{
		`{"level":"info","session":"abc","time":"2026-10-16T09:30:00Z","message":"jester session ready"}`,
		`not json at all`,
		`{"level":"warn","error":"boom","time":"2026-10-16T09:31:00Z","message":"joke fetch failed"}`,
	}

	var buf bytes.Buffer
	if err := Render(&buf, lines, false); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"INF", "jester session ready", "session=abc", "not json at all", "WRN", "joke fetch failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"message"`) {
		t.Errorf("expected JSON events to be reformatted:\n%s", out)
	}
}

func TestRenderRaw(t *testing.T) {
	lines := []string{`{"level":"info","message":"hi"}`, "plain"}

	var buf bytes.Buffer
	if err := Render(&buf, lines, true); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := buf.String(), strings.Join(lines, "\n")+"\n"; got != want {
		t.Errorf("raw output = %q, want %q", got, want)
	}
}
