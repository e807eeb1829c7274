package md2html

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.Preprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.PassConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.DocumentAssembler    = (*pipeline.DocumentTemplate)(nil)
)

// defaultPasses backs the package-level Convert.
var defaultPasses = pipeline.NewPassConverter(pipeline.DefaultOptions())

// Convert converts Markdown to an HTML fragment with the default options.
// It never fails: malformed markup is passed through unchanged.
func Convert(markdown string) string {
	return defaultPasses.Run(markdown)
}

// Converter holds a configured pipeline. It keeps no per-call state and is
// safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.Loader
	preprocessor  pipeline.MarkdownPreprocessor
	passes        *pipeline.PassConverter
	htmlConverter pipeline.HTMLConverter
	assembler     pipeline.DocumentAssembler
	style         string // resolved CSS of the configured style
}

// converterConfig holds option values before they are resolved.
type converterConfig struct {
	engine       Engine
	pipeline     pipeline.Options
	preprocess   pipeline.PreprocessOptions
	maxInputSize int
	styleInput   string
	templateName string
	assetPath    string
}

// NewConverter creates a Converter. Options are applied in order, then the
// engine, style and document template are resolved.
// Returns error if an option value is invalid or an asset cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:   EnginePasses,
			pipeline: pipeline.DefaultOptions(),
			preprocess: pipeline.PreprocessOptions{
				NormalizeLineEndings: true,
				FrontMatter:          true,
			},
			maxInputSize: defaultMaxInputSize,
			templateName: assets.DefaultTemplateName,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.maxInputSize < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxInputSize, c.cfg.maxInputSize)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	loader, err := assets.New(c.cfg.assetPath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	c.assetLoader = loader

	c.preprocessor = pipeline.NewPreprocessor(c.cfg.preprocess)
	c.passes = pipeline.NewPassConverter(c.cfg.pipeline)

	switch c.cfg.engine {
	case EngineCommonMark:
		c.htmlConverter = pipeline.NewGoldmarkConverter()
	default:
		c.htmlConverter = c.passes
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the pass pipeline with the converter's list and paragraph
// options. Like the package-level Convert it never fails and skips
// preprocessing and the engine selection.
func (c *Converter) Convert(markdown string) string {
	return c.passes.Run(markdown)
}

// Render preprocesses the input, converts it with the configured engine and,
// when input.Standalone is set, wraps the result in a full HTML document.
// The context is checked before and between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Preprocess markdown
	src := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to HTML
	fragment, err := c.htmlConverter.ToHTML(ctx, src.Markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title := pipeline.ResolveTitle(input.Title, src.Title, fragment)
	if !input.Standalone {
		return &Result{HTML: []byte(fragment), Title: title}, nil
	}
	if title == "" {
		title = pipeline.DefaultTitle
	}

	// Configured style first (base), user CSS last (can override)
	css := c.style
	if input.CSS != "" {
		if css != "" {
			css += "\n"
		}
		css += input.CSS
	}

	doc, err := c.assembler.Assemble(ctx, &pipeline.DocumentData{
		Title: title,
		CSS:   css,
		Body:  fragment,
	})
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}

	return &Result{HTML: []byte(doc), Title: title}, nil
}

// validateInput checks the input against the converter limits.
func (c *Converter) validateInput(input Input) error {
	if c.cfg.maxInputSize > 0 && len(input.Markdown) > c.cfg.maxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input.Markdown), c.cfg.maxInputSize)
	}
	return nil
}

// MaxInputSize returns the Render input limit in bytes, 0 when unlimited.
func (c *Converter) MaxInputSize() int {
	return c.cfg.maxInputSize
}

// Engine returns the engine used by Render.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// resolveStyle resolves the style input (name or path) to CSS content.
// An empty style means no CSS.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrStyleNotFound, input)
			}
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.style = string(content)
		return nil
	}

	// Style name -> use asset loader
	css, err := c.assetLoader.Load(assets.Style, input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.style = css
	return nil
}

// resolveTemplate loads and parses the document template.
func (c *Converter) resolveTemplate() error {
	if c.assembler != nil {
		return nil
	}

	content, err := c.assetLoader.Load(assets.Template, c.cfg.templateName)
	if err != nil {
		return fmt.Errorf("loading template %q: %w", c.cfg.templateName, convertAssetError(err))
	}

	tmpl, err := pipeline.NewDocumentTemplate(content)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	c.assembler = tmpl
	return nil
}
