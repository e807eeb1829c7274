package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Precompiled block patterns. (?m) makes ^ and $ match at line boundaries.
var (
	// # Title .. ###### Title
	headerPattern = regexp.MustCompile(`(?m)^(#{1,6}) (.+)$`)

	// > quote
	blockquotePattern = regexp.MustCompile(`(?m)^> (.+)`)

	// ``` ... ``` across lines, shortest match
	codeBlockPattern = regexp.MustCompile("(?s)```(.*?)```")

	// ---, ***, ___, optionally space separated
	horizontalRulePattern = regexp.MustCompile(`(?m)^(?:[*\-_] *){3,}$`)
)

// ConvertHeaders transforms "## text" lines to <h2>text</h2>.
// The heading level is the number of leading '#' characters (1-6).
func ConvertHeaders(content string) string {
	return replaceAllSubmatchFunc(headerPattern, content, func(groups []string) string {
		level := strconv.Itoa(len(groups[1]))
		return "<h" + level + ">" + strings.TrimSpace(groups[2]) + "</h" + level + ">"
	})
}

// ConvertBlockquotes transforms each "> text" line to its own
// <blockquote>text</blockquote>. Consecutive lines are not merged.
func ConvertBlockquotes(content string) string {
	return blockquotePattern.ReplaceAllString(content, "<blockquote>${1}</blockquote>")
}

// ConvertCodeBlocks transforms fenced regions to <pre><code>...</code></pre>.
// The inner content is trimmed and HTML-escaped.
func ConvertCodeBlocks(content string) string {
	return replaceAllSubmatchFunc(codeBlockPattern, content, func(groups []string) string {
		return "<pre><code>" + EscapeHTML(strings.TrimSpace(groups[1])) + "</code></pre>"
	})
}

// ConvertHorizontalRules transforms rule lines to <hr />.
func ConvertHorizontalRules(content string) string {
	return horizontalRulePattern.ReplaceAllString(content, "<hr />")
}

// ConvertLineBreaks replaces every empty or whitespace-only line with <br />.
func ConvertLineBreaks(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if isBlankLine(line) {
			lines[i] = "<br />"
		}
	}
	return strings.Join(lines, "\n")
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
