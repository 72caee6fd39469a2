package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2026-10-16"

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "jester 1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2026-10-16")
}

func TestCategoriesCommandListsAll(t *testing.T) {
	out, err := execute(t, "categories")
	require.NoError(t, err)
	require.Equal(t, "1  Any\n2  Programming\n3  Misc\n4  Pun\n5  Spooky\n6  Christmas\n", out)
}

func TestOnceAndRootPrintJoke(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"JESTER_API_URL", "JESTER_DEFAULT_CATEGORY", "JESTER_BLACKLIST_FLAGS", "JESTER_REQUEST_TIMEOUT", "JESTER_LOG_FILE", "JESTER_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":false,"category":"Christmas","type":"single","joke":"Yule log.","id":5}`))
	}))
	defer srv.Close()

	cfg := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("api_url = \""+srv.URL+"\"\n"), 0o600))

	original := stdoutIsTerminal
	t.Cleanup(func() { stdoutIsTerminal = original })
	stdoutIsTerminal = func() bool { return false }

	for _, args := range [][]string{
		{"once", "--config", cfg, "-c", "christmas"},
		{"--config", cfg, "--category", "Christmas"},
	} {
		out, err := execute(t, args...)
		require.NoError(t, err, "args %v", args)
		require.Equal(t, "[Christmas #5]\nYule log.\n", out)
	}
}

func TestLogsCommandReadsConfiguredLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "jester.log")
	require.NoError(t, os.WriteFile(logPath, []byte(
		`{"level":"info","time":"2026-10-16T09:30:00Z","message":"first"}`+"\n"+
			`{"level":"debug","time":"2026-10-16T09:30:01Z","message":"second"}`+"\n"), 0o600))
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_file = \""+logPath+"\"\n"), 0o600))
	t.Setenv("JESTER_LOG_FILE", "")
	os.Unsetenv("JESTER_LOG_FILE")

	out, err := execute(t, "logs", "--config", cfg, "-n", "1")
	require.NoError(t, err)
	require.Contains(t, out, "second")
	require.NotContains(t, out, "first")

	out, err = execute(t, "logs", "--config", cfg, "--raw")
	require.NoError(t, err)
	require.Contains(t, out, `"message":"first"`)
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "tell-me-one")
	require.Error(t, err)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
