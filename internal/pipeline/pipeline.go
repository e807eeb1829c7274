package pipeline

import (
	"regexp"
	"strings"
)

// Pass is a single text-rewriting step over the whole buffer.
type Pass struct {
	Name  string
	Apply func(string) string
}

// Options controls the behaviour of the two passes whose legacy output is
// questionable. The zero value keeps the legacy bytes for both.
type Options struct {
	// FlushTrailingLists closes and emits a list that is still open when the
	// buffer ends. When false the buffered list is dropped.
	FlushTrailingLists bool

	// SplitParagraphs skips the blank-line pass so paragraph wrapping can use
	// blank lines as segment boundaries.
	SplitParagraphs bool
}

// DefaultOptions returns the options used by the package-level converter.
func DefaultOptions() Options {
	return Options{FlushTrailingLists: true}
}

// PassConverter runs the ordered pass table followed by paragraph wrapping.
// It holds no mutable state and is safe for concurrent use.
type PassConverter struct {
	opts   Options
	passes []Pass
}

// NewPassConverter builds the pass table once for the given options.
func NewPassConverter(opts Options) *PassConverter {
	return &PassConverter{opts: opts, passes: Passes(opts)}
}

// Passes returns the ordered pass table. The final paragraph wrapping is not
// part of the table; it is applied by Run.
func Passes(opts Options) []Pass {
	passes := []Pass{
		{Name: "images", Apply: ConvertImages},
		{Name: "headers", Apply: ConvertHeaders},
		{Name: "blockquotes", Apply: ConvertBlockquotes},
		{Name: "bold", Apply: ConvertBold},
		{Name: "italic", Apply: ConvertItalic},
		{Name: "links", Apply: ConvertLinks},
		{Name: "inline-code", Apply: ConvertInlineCode},
		{Name: "code-blocks", Apply: ConvertCodeBlocks},
		{Name: "unordered-lists", Apply: func(s string) string {
			return ConvertUnorderedLists(s, opts.FlushTrailingLists)
		}},
		{Name: "ordered-lists", Apply: func(s string) string {
			return ConvertOrderedLists(s, opts.FlushTrailingLists)
		}},
		{Name: "horizontal-rules", Apply: ConvertHorizontalRules},
	}
	if !opts.SplitParagraphs {
		passes = append(passes, Pass{Name: "line-breaks", Apply: ConvertLineBreaks})
	}
	return passes
}

// Run converts markdown to an HTML fragment. It never fails.
func (c *PassConverter) Run(markdown string) string {
	html := markdown
	for _, p := range c.passes {
		html = p.Apply(html)
	}
	if c.opts.SplitParagraphs {
		return SplitParagraphs(html)
	}
	return WrapParagraphs(html)
}

// Names lists the pass names in execution order.
func (c *PassConverter) Names() []string {
	names := make([]string, len(c.passes))
	for i, p := range c.passes {
		names[i] = p.Name
	}
	return names
}

// replaceAllSubmatchFunc is ReplaceAllStringFunc with access to capture groups.
// Groups that did not participate in the match are empty strings.
func replaceAllSubmatchFunc(re *regexp.Regexp, s string, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	last := 0
	for _, m := range matches {
		sb.WriteString(s[last:m[0]])
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		sb.WriteString(repl(groups))
		last = m[1]
	}
	sb.WriteString(s[last:])
	return sb.String()
}
