package pipeline

import "testing"

func TestConvertImages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"image", "![alt](a.png)", `<img src="a.png" alt="alt">`},
		{"two images", "x ![a](b) y ![c](d)", `x <img src="b" alt="a"> y <img src="d" alt="c">`},
		{"empty alt is not an image", "![](a.png)", "![](a.png)"},
		{"plain link untouched", "[t](u)", "[t](u)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertImages(tt.input); got != tt.want {
				t.Errorf("ConvertImages(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertBold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"asterisks", "**b**", "<strong>b</strong>"},
		{"underscores", "__b__", "<strong>b</strong>"},
		{"both kinds", "**a** and __b__", "<strong>a</strong> and <strong>b</strong>"},
		{"shortest match", "**a** x **b**", "<strong>a</strong> x <strong>b</strong>"},
		{"unclosed", "**open", "**open"},
		{"empty span", "****", "<strong></strong>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertBold(tt.input); got != tt.want {
				t.Errorf("ConvertBold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertItalic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"asterisk", "*i*", "<em>i</em>"},
		{"underscore", "_i_", "<em>i</em>"},
		{"single asterisk", "a * b", "a * b"},
		{"intra-word underscores", "snake_case_name", "snake<em>case</em>name"},
		{"triple asterisk", "***", "<em></em>*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertItalic(tt.input); got != tt.want {
				t.Errorf("ConvertItalic(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"link", "[t](u)", `<a href="u">t</a>`},
		{"link in text", "see [t](u) now", `see <a href="u">t</a> now`},
		{"image syntax skipped", "![t](u)", "![t](u)"},
		{"image then link", "![a](b) [c](d)", `![a](b) <a href="d">c</a>`},
		{"link nested in rejected image", "![x [y](z)", `![x <a href="z">y</a>`},
		{"no link", "plain [text] (x)", "plain [text] (x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertLinks(tt.input); got != tt.want {
				t.Errorf("ConvertLinks(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertInlineCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"code", "`x`", "<code>x</code>"},
		{"content not escaped", "`<b>`", "<code><b></code>"},
		{"fence kept", "```", "```"},
		{"empty span kept", "``", "``"},
		{"no line crossing", "`a\nb`", "`a\nb`"},
		{"two spans", "`a` and `b`", "<code>a</code> and <code>b</code>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertInlineCode(tt.input); got != tt.want {
				t.Errorf("ConvertInlineCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
