package md2html

// Option configures a Converter.
type Option func(*Converter)

// defaultMaxInputSize bounds Render input (10 MiB).
const defaultMaxInputSize = 10 << 20

// WithEngine selects the engine used by Render.
// NewConverter returns ErrUnknownEngine for names other than the Engine constants.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithTrailingListFlush controls whether a list still open at the end of the
// input is emitted (true, the default) or dropped (false, legacy output).
func WithTrailingListFlush(flush bool) Option {
	return func(c *Converter) {
		c.cfg.pipeline.FlushTrailingLists = flush
	}
}

// WithParagraphSplitting wraps each blank-line separated block in its own
// <p> instead of turning blank lines into <br />. Off by default.
func WithParagraphSplitting(split bool) Option {
	return func(c *Converter) {
		c.cfg.pipeline.SplitParagraphs = split
	}
}

// WithLineEndingNormalization converts \r\n and \r to \n before Render
// converts. On by default.
func WithLineEndingNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.preprocess.NormalizeLineEndings = enabled
	}
}

// WithUnicodeNormalization applies NFC normalization before Render converts.
// Off by default.
func WithUnicodeNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.preprocess.NormalizeUnicode = enabled
	}
}

// WithFrontMatter strips a leading YAML front matter block in Render and
// uses its title key. On by default.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.preprocess.FrontMatter = enabled
	}
}

// WithMaxInputSize limits the Markdown size accepted by Render, in bytes.
// Zero disables the limit. NewConverter returns ErrInvalidMaxInputSize for
// negative values.
func WithMaxInputSize(n int) Option {
	return func(c *Converter) {
		c.cfg.maxInputSize = n
	}
}

// WithStyle sets the stylesheet of standalone documents.
// Accepts a style name ("default", "plain") or a path to a CSS file.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithTemplate sets the document template name. Defaults to "default".
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath sets a directory searched for styles/<name>.css and
// templates/<name>.html before the embedded assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}
