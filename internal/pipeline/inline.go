package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled inline patterns. RE2 has no backreferences, so each delimiter
// pair is spelled out as its own alternative; exactly one capture group is
// non-empty per match.
var (
	// ![alt](url)
	imagePattern = regexp.MustCompile(`!\[([^\]]+)\]\(([^)]+)\)`)

	// [text](url), the "!" guard is applied in ConvertLinks
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// **text** or __text__
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*|__(.*?)__`)

	// *text* or _text_
	italicPattern = regexp.MustCompile(`\*(.*?)\*|_(.*?)_`)

	// `text` on a single line. Empty spans are not code, which keeps
	// fence lines intact for ConvertCodeBlocks.
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")
)

// ConvertImages transforms ![alt](url) to <img src="url" alt="alt">.
func ConvertImages(content string) string {
	return imagePattern.ReplaceAllString(content, `<img src="${2}" alt="${1}">`)
}

// ConvertBold transforms **text** and __text__ to <strong>text</strong>.
func ConvertBold(content string) string {
	return boldPattern.ReplaceAllString(content, "<strong>${1}${2}</strong>")
}

// ConvertItalic transforms *text* and _text_ to <em>text</em>.
// Must run after ConvertBold.
func ConvertItalic(content string) string {
	return italicPattern.ReplaceAllString(content, "<em>${1}${2}</em>")
}

// ConvertLinks transforms [text](url) to <a href="url">text</a>.
// A candidate preceded by "!" is image syntax and is skipped; the scan then
// resumes one byte later, so a link nested inside the rejected text can
// still match.
func ConvertLinks(content string) string {
	var sb strings.Builder
	last, pos := 0, 0
	for pos < len(content) {
		m := linkPattern.FindStringSubmatchIndex(content[pos:])
		if m == nil {
			break
		}
		start, end := pos+m[0], pos+m[1]
		if start > 0 && content[start-1] == '!' {
			pos = start + 1
			continue
		}
		text := content[pos+m[2] : pos+m[3]]
		url := content[pos+m[4] : pos+m[5]]

		sb.WriteString(content[last:start])
		sb.WriteString(`<a href="`)
		sb.WriteString(url)
		sb.WriteString(`">`)
		sb.WriteString(text)
		sb.WriteString(`</a>`)
		last, pos = end, end
	}
	if last == 0 {
		return content
	}
	sb.WriteString(content[last:])
	return sb.String()
}

// ConvertInlineCode transforms `text` to <code>text</code> without escaping.
func ConvertInlineCode(content string) string {
	return inlineCodePattern.ReplaceAllString(content, "<code>${1}</code>")
}
