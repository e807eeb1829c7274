package pipeline

import "testing"

func TestConvertHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"level one", "# T", "<h1>T</h1>"},
		{"level six", "###### T", "<h6>T</h6>"},
		{"trailing space trimmed", "## T  ", "<h2>T</h2>"},
		{"seven hashes", "####### T", "####### T"},
		{"no space", "#T", "#T"},
		{"indented", " # T", " # T"},
		{"multiline", "a\n### b\nc", "a\n<h3>b</h3>\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertHeaders(tt.input); got != tt.want {
				t.Errorf("ConvertHeaders(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertBlockquotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quote", "> q", "<blockquote>q</blockquote>"},
		{"lines not merged", "> a\n> b", "<blockquote>a</blockquote>\n<blockquote>b</blockquote>"},
		{"no space", ">q", ">q"},
		{"empty quote", "> ", "> "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertBlockquotes(tt.input); got != tt.want {
				t.Errorf("ConvertBlockquotes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertCodeBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"block", "```\ncode\n```", "<pre><code>code</code></pre>"},
		{"escaped", "```\na & <b>\n```", "<pre><code>a &amp; &lt;b&gt;</code></pre>"},
		{"quotes escaped", "```'\"```", "<pre><code>&#039;&quot;</code></pre>"},
		{"language tag kept as text", "```go\nx := 1\n```", "<pre><code>go\nx := 1</code></pre>"},
		{"shortest match", "```a```\n```b```", "<pre><code>a</code></pre>\n<pre><code>b</code></pre>"},
		{"unclosed", "```\nx", "```\nx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertCodeBlocks(tt.input); got != tt.want {
				t.Errorf("ConvertCodeBlocks(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertHorizontalRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dashes", "---", "<hr />"},
		{"spaced dashes", "- - -", "<hr />"},
		{"asterisks", "***", "<hr />"},
		{"underscores", "___", "<hr />"},
		{"long", "-----", "<hr />"},
		{"two dashes", "--", "--"},
		{"between lines", "a\n---\nb", "a\n<hr />\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertHorizontalRules(tt.input); got != tt.want {
				t.Errorf("ConvertHorizontalRules(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertLineBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty buffer", "", "<br />"},
		{"blank line", "a\n\nb", "a\n<br />\nb"},
		{"whitespace line", "a\n \t\nb", "a\n<br />\nb"},
		{"trailing newline", "a\n", "a\n<br />"},
		{"no blank", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertLineBreaks(tt.input); got != tt.want {
				t.Errorf("ConvertLineBreaks(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
