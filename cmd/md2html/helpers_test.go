package main

// Notes:
// - This file contains test helpers used across CLI tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	md2html "github.com/alnah/go-md2html"
)

// ---------------------------------------------------------------------------
// Test Environment
// ---------------------------------------------------------------------------

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment with buffered output, the given stdin
// and environment variables.
func newTestEnv(stdin string, vars map[string]string) *testEnv {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	var environ []string
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	return &testEnv{
		Environment: &Environment{
			Now:     func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
			Stdin:   strings.NewReader(stdin),
			Stdout:  stdout,
			Stderr:  stderr,
			Getenv:  func(k string) string { return vars[k] },
			Environ: func() []string { return environ },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// writeFile creates path under dir with content, creating parents.
func writeFile(t *testing.T, dir, path, content string) string {
	t.Helper()

	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return full
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func intPtr(n int) *int { return &n }

// mustParseFlags parses convert flags or fails the test.
func mustParseFlags(t *testing.T, args ...string) (*convertFlags, []string) {
	t.Helper()

	flags, positional, err := parseConvertFlags(args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseConvertFlags(%v): %v", args, err)
	}
	return flags, positional
}

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// mockRenderer records calls and returns a fixed result or error.
type mockRenderer struct {
	html    string
	err     error
	maxSize int
	calls   atomic.Int32
}

func (m *mockRenderer) Render(_ context.Context, input md2html.Input) (*md2html.Result, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	html := m.html
	if html == "" {
		html = "<p>" + input.Markdown + "</p>"
	}
	return &md2html.Result{HTML: []byte(html), Title: input.Title}, nil
}

func (m *mockRenderer) MaxInputSize() int {
	return m.maxSize
}
