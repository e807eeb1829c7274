package pipeline

import "go4.org/bytereplacer"

// htmlEscaper replaces the five HTML-special characters in a single scan.
// A single scan never re-reads its own output, so "&" cannot be double
// escaped regardless of the order the pairs are listed in.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML converts HTML-special characters to entities.
func EscapeHTML(s string) string {
	// Replace may rewrite its argument in place; the conversion copies s.
	return string(htmlEscaper.Replace([]byte(s)))
}
