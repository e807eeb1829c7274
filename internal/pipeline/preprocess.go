package pipeline

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// PreprocessOptions selects the preprocessing steps. All steps are off in
// the zero value, which leaves the input untouched.
type PreprocessOptions struct {
	NormalizeLineEndings bool
	NormalizeUnicode     bool
	FrontMatter          bool
}

// Source is preprocessed Markdown plus the metadata pulled out of it.
type Source struct {
	Markdown string
	Title    string // from front matter, empty if absent
}

// FrontMatter holds the front matter keys the converter understands.
// Other keys are ignored.
type FrontMatter struct {
	Title string `yaml:"title"`
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) Source
}

// Preprocessor applies the selected steps before the first pass.
type Preprocessor struct {
	opts PreprocessOptions
}

// NewPreprocessor creates a Preprocessor.
func NewPreprocessor(opts PreprocessOptions) *Preprocessor {
	return &Preprocessor{opts: opts}
}

// PreprocessMarkdown applies the enabled steps in order: line endings,
// Unicode normalization, front matter extraction.
func (p *Preprocessor) PreprocessMarkdown(ctx context.Context, content string) Source {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return Source{Markdown: content}
	}

	if p.opts.NormalizeLineEndings {
		content = normalizeLineEndings(content)
	}
	if p.opts.NormalizeUnicode {
		content = norm.NFC.String(content)
	}

	src := Source{Markdown: content}
	if p.opts.FrontMatter {
		src = extractFrontMatter(content)
	}
	return src
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// extractFrontMatter strips a leading YAML block and reads its title.
// Front matter that is not a YAML mapping is left in the Markdown.
func extractFrontMatter(content string) Source {
	meta, body, ok := yamlutil.SplitFrontMatter(content)
	if !ok {
		return Source{Markdown: content}
	}
	if strings.TrimSpace(string(meta)) == "" {
		return Source{Markdown: body}
	}

	var fm FrontMatter
	if err := yamlutil.Unmarshal(meta, &fm); err != nil {
		return Source{Markdown: content}
	}
	return Source{Markdown: body, Title: strings.TrimSpace(fm.Title)}
}
