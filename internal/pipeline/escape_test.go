package pipeline

import "testing"

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "plain", "plain"},
		{"all specials", `&<>"'`, "&amp;&lt;&gt;&quot;&#039;"},
		{"ampersand escaped once", "&amp;", "&amp;amp;"},
		{"tag", "<script>alert('x')</script>", "&lt;script&gt;alert(&#039;x&#039;)&lt;/script&gt;"},
		{"multibyte", "café < thé", "café &lt; thé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EscapeHTML(tt.input); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeHTML_InputUnchanged(t *testing.T) {
	t.Parallel()

	input := "a<b"
	_ = EscapeHTML(input)
	_ = EscapeHTML(input)
	if input != "a<b" {
		t.Errorf("input modified: %q", input)
	}
}
