package pipeline

import (
	"regexp"
	"strings"
)

// paragraphSeparator is the boundary used by WrapParagraphs.
const paragraphSeparator = "\n\n"

// blankLineRun matches one or more blank lines between two segments.
var blankLineRun = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// WrapParagraphs wraps every "\n\n"-separated segment that does not start
// with '<' in <p>...</p>. Segments are rejoined with "\n\n".
func WrapParagraphs(html string) string {
	segments := strings.Split(html, paragraphSeparator)
	for i, seg := range segments {
		segments[i] = wrapSegment(seg)
	}
	return strings.Join(segments, paragraphSeparator)
}

// SplitParagraphs is WrapParagraphs for buffers that still contain blank
// lines: any run of blank lines separates segments, and empty segments are
// dropped.
func SplitParagraphs(html string) string {
	parts := blankLineRun.Split(strings.Trim(html, "\n"), -1)
	segments := make([]string, 0, len(parts))
	for _, seg := range parts {
		if isBlankLine(seg) {
			continue
		}
		segments = append(segments, wrapSegment(seg))
	}
	return strings.Join(segments, paragraphSeparator)
}

func wrapSegment(seg string) string {
	if strings.HasPrefix(seg, "<") {
		return seg
	}
	return "<p>" + seg + "</p>"
}
