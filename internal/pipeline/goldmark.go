package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion wraps a failure reported by the commonmark engine.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter turns a Markdown body into an HTML fragment.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// ToHTML adapts the pass pipeline to HTMLConverter. Only a done context
// makes it fail.
func (c *PassConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.Run(content), nil
}

// GoldmarkConverter is the "commonmark" engine: CommonMark plus GFM, with
// fenced code highlighted by chroma. Raw HTML in the input is omitted.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter builds the engine once; the result is safe for
// concurrent use.
func NewGoldmarkConverter() *GoldmarkConverter {
	highlight := highlighting.NewHighlighting(
		// Emit classes; the document stylesheet decides colors.
		highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
	)
	return &GoldmarkConverter{md: goldmark.New(
		goldmark.WithExtensions(extension.GFM, highlight),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)}
}

// ToHTML converts content in a separate goroutine so a cancelled ctx returns
// at once. goldmark itself takes no context; the goroutine finishes on its own.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		buf bytes.Buffer
		err error
	)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		err = c.md.Convert([]byte(content), &buf)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-finished:
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}
