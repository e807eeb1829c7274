// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The default engine is a fixed, ordered list of text-rewriting passes, each a
// pure string -> string function applied to the whole buffer:
//   - Inline passes (images, bold, italic, links, inline code)
//   - Block passes (headers, blockquotes, code blocks, horizontal rules, blank lines)
//   - List passes (unordered, ordered), the only passes that keep scan state
//   - Paragraph wrapping as the final stage
//
// Pass order is load-bearing: images run before links because image syntax is
// link syntax prefixed with "!", and bold runs before italic because the italic
// pattern would otherwise consume the double delimiters of bold.
//
// The package also holds the optional stages around the passes: input
// preprocessing (line endings, Unicode normalization, front matter), the
// CommonMark engine backed by Goldmark, and standalone document assembly.
package pipeline
