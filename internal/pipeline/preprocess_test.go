package pipeline

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix unchanged", "a\nb", "a\nb"},
		{"windows", "a\r\nb\r\n", "a\nb\n"},
		{"old mac", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\n", "a\nb\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeLineEndings(tt.input); got != tt.want {
				t.Errorf("normalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	all := PreprocessOptions{NormalizeLineEndings: true, NormalizeUnicode: true, FrontMatter: true}

	tests := []struct {
		name  string
		opts  PreprocessOptions
		input string
		want  Source
	}{
		{
			name:  "zero options leave input untouched",
			opts:  PreprocessOptions{},
			input: "---\r\ntitle: x\r\n---\r\nbody",
			want:  Source{Markdown: "---\r\ntitle: x\r\n---\r\nbody"},
		},
		{
			name:  "front matter after line ending normalization",
			opts:  all,
			input: "---\r\ntitle: Notes\r\n---\r\nbody",
			want:  Source{Markdown: "body", Title: "Notes"},
		},
		{
			name:  "dot close delimiter",
			opts:  all,
			input: "---\ntitle: T\n...\nbody",
			want:  Source{Markdown: "body", Title: "T"},
		},
		{
			name:  "empty front matter",
			opts:  all,
			input: "---\n---\nbody",
			want:  Source{Markdown: "body"},
		},
		{
			name:  "unknown keys ignored",
			opts:  all,
			input: "---\nauthor: me\ntitle: \" Spaced \"\n---\n# H",
			want:  Source{Markdown: "# H", Title: "Spaced"},
		},
		{
			name:  "malformed front matter left in place",
			opts:  all,
			input: "---\n[unclosed\n---\nbody",
			want:  Source{Markdown: "---\n[unclosed\n---\nbody"},
		},
		{
			name:  "unclosed front matter left in place",
			opts:  all,
			input: "---\ntitle: x\nbody",
			want:  Source{Markdown: "---\ntitle: x\nbody"},
		},
		{
			name:  "rule not at start is not front matter",
			opts:  all,
			input: "text\n---\ntitle: x\n---",
			want:  Source{Markdown: "text\n---\ntitle: x\n---"},
		},
		{
			name:  "unicode composed",
			opts:  PreprocessOptions{NormalizeUnicode: true},
			input: "é",
			want:  Source{Markdown: "é"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewPreprocessor(tt.opts).PreprocessMarkdown(context.Background(), tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PreprocessMarkdown(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestPreprocessor_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPreprocessor(PreprocessOptions{NormalizeLineEndings: true})
	got := p.PreprocessMarkdown(ctx, "a\r\nb")
	if got.Markdown != "a\r\nb" {
		t.Errorf("PreprocessMarkdown() = %q, want input unchanged", got.Markdown)
	}
}
