package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"text", "hello", "<p>hello</p>"},
		{"tag-led", "<h1>x</h1>", "<h1>x</h1>"},
		{"two segments", "a\n\nb", "<p>a</p>\n\n<p>b</p>"},
		{"mixed", "<h1>x</h1>\n\ntext", "<h1>x</h1>\n\n<p>text</p>"},
		{"empty", "", "<p></p>"},
		{"odd newline stays in segment", "a\n\n\nb", "<p>a</p>\n\n<p>\nb</p>"},
		{"tag-led segment with trailing text", "<em>a</em> b", "<em>a</em> b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := WrapParagraphs(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WrapParagraphs(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplitParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two segments", "a\n\nb", "<p>a</p>\n\n<p>b</p>"},
		{"blank run", "a\n \t\n\nb", "<p>a</p>\n\n<p>b</p>"},
		{"surrounding newlines", "\n\na\n\n", "<p>a</p>"},
		{"empty", "", ""},
		{"list then text", "<ul>\n<li>a</li>\n</ul>\n\nafter", "<ul>\n<li>a</li>\n</ul>\n\n<p>after</p>"},
		{"single newline kept", "a\nb", "<p>a\nb</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitParagraphs(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitParagraphs(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
