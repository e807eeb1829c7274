// Package md2html converts a Markdown subset to HTML with an ordered set of
// text-rewriting passes.
//
// # Quick Start
//
// Convert a string with the default options:
//
//	html := md2html.Convert("# Hello\n\n- one\n- two\n")
//
// Convert never fails. Markup it does not recognize is passed through
// unchanged, and output is byte-for-byte stable for a given input.
//
// # Conversion Pipeline
//
// Passes run in a fixed order, each over the whole buffer:
//
//  1. images, headers, blockquotes
//  2. bold, italic, links, inline code
//  3. fenced code blocks (content HTML-escaped)
//  4. unordered lists, ordered lists (line state machines)
//  5. horizontal rules, blank lines
//  6. paragraph wrapping
//
// Order matters: bold runs before italic so "**" is consumed first, and
// images run before links so "![alt](src)" never becomes an anchor.
//
// # Configuration
//
// Use functional options to customize a Converter:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithParagraphSplitting(true),
//	    md2html.WithEngine(md2html.EngineCommonMark),
//	    md2html.WithStyle("plain"),
//	)
//
// Converter.Convert applies the list and paragraph options to the pass
// pipeline. Converter.Render also preprocesses the input (line endings,
// front matter, optional NFC), runs the selected engine and can wrap the
// result in a standalone document:
//
//	result, err := conv.Render(ctx, md2html.Input{
//	    Markdown:   content,
//	    CSS:        "body { max-width: 50rem; }",
//	    Standalone: true,
//	})
//
// # Custom Assets
//
// WithAssetPath points to a directory whose styles/<name>.css and
// templates/<name>.html files take precedence over the embedded ones.
// Templates receive .Title, .CSS and .Body.
package md2html
