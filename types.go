package md2html

import (
	"fmt"
	"strings"
)

// Engine selects the Markdown to HTML implementation used by Render.
type Engine string

// Available engines.
const (
	// EnginePasses is the ordered regex pass pipeline. Output is byte-stable.
	EnginePasses Engine = "passes"

	// EngineCommonMark renders CommonMark with GFM extensions and
	// class-based syntax highlighting.
	EngineCommonMark Engine = "commonmark"
)

// Engines lists the accepted engine names.
func Engines() []string {
	return []string{string(EnginePasses), string(EngineCommonMark)}
}

// ParseEngine converts a name to an Engine. Matching is case-insensitive and
// an empty name selects EnginePasses.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EnginePasses:
		return EnginePasses, nil
	case EngineCommonMark:
		return EngineCommonMark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknownEngine, name, strings.Join(Engines(), ", "))
	}
}

// Input contains the data for one Render call.
type Input struct {
	Markdown   string // Markdown source (required, may be empty)
	Title      string // Document title, overrides front matter and the first <h1>
	CSS        string // Extra CSS appended after the configured style
	Standalone bool   // Wrap the fragment in a full HTML document
}

// Result is the output of Render.
type Result struct {
	HTML  []byte // HTML fragment, or a full document when Input.Standalone is set
	Title string // Resolved title; "Document" in standalone mode when none was found
}
