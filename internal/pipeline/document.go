package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrDocumentRender indicates the document template failed to execute.
var ErrDocumentRender = errors.New("document template rendering failed")

// DefaultTitle is used when no title can be resolved.
const DefaultTitle = "Document"

// DocumentData holds everything the document template renders.
type DocumentData struct {
	Title string
	CSS   string
	Body  string // HTML fragment, inserted verbatim
}

// DocumentAssembler defines the contract for wrapping a fragment into a
// standalone HTML document.
type DocumentAssembler interface {
	Assemble(ctx context.Context, data *DocumentData) (string, error)
}

// DocumentTemplate renders a standalone document from an html/template.
type DocumentTemplate struct {
	tmpl *template.Template
}

// templateData is the view passed to the template. Body and CSS are typed
// so html/template inserts them without escaping.
type templateData struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// NewDocumentTemplate parses a document template.
// Returns error if the template cannot be parsed.
func NewDocumentTemplate(tmplContent string) (*DocumentTemplate, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &DocumentTemplate{tmpl: tmpl}, nil
}

// Assemble renders the document. An empty title falls back to DefaultTitle.
func (d *DocumentTemplate) Assemble(ctx context.Context, data *DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if data == nil {
		data = &DocumentData{}
	}

	view := templateData{
		Title: data.Title,
		CSS:   template.CSS(sanitizeCSS(data.CSS)), // #nosec G203 -- closing sequences escaped
		Body:  template.HTML(data.Body),            // #nosec G203 -- converter output
	}
	if view.Title == "" {
		view.Title = DefaultTitle
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// ResolveTitle picks the document title: explicit, then front matter, then
// the first <h1> of the body. Empty means none was found.
func ResolveTitle(explicit, frontMatter, body string) string {
	if t := strings.TrimSpace(explicit); t != "" {
		return t
	}
	if frontMatter != "" {
		return frontMatter
	}
	return FirstHeading(body)
}

// FirstHeading returns the text content of the first <h1> element in an
// HTML fragment, with inline tags stripped and entities decoded.
func FirstHeading(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	depth := 0
	var sb strings.Builder

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.H1 {
				depth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.H1 && depth > 0 {
				return strings.TrimSpace(sb.String())
			}
		case html.TextToken:
			if depth > 0 {
				sb.Write(z.Text())
			}
		}
	}
}
