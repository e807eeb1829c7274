package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
// Convert never fails; these are returned by NewConverter and Render.
var (
	ErrUnknownEngine       = errors.New("unknown conversion engine")
	ErrInputTooLarge       = errors.New("markdown input exceeds maximum size")
	ErrInvalidMaxInputSize = errors.New("max input size must be >= 0")

	// Engine and document errors, shared with the pipeline so errors.Is
	// works on wrapped values from either layer.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrDocumentRender = pipeline.ErrDocumentRender

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid document template")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
