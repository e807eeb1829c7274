package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/logger"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("no input specified")
	ErrReadCSS            = errors.New("failed to read CSS file")
	ErrReadMarkdown       = errors.New("failed to read markdown input")
	ErrWriteHTML          = errors.New("failed to write HTML output")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoMarkdownFiles    = errors.New("no markdown files found")
	ErrConversionsFailed  = errors.New("conversion(s) failed")
)

// stdinPath selects standard input as the markdown source.
const stdinPath = "-"

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Renderer is the conversion surface used by the CLI.
type Renderer interface {
	Render(ctx context.Context, input md2html.Input) (*md2html.Result, error)
	MaxInputSize() int
}

// Compile-time interface implementation check.
var _ Renderer = (*md2html.Converter)(nil)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	css        string // extra CSS from --css
	title      string
	standalone bool
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	log := logger.NewWithLevel(env.Stderr, logger.LevelFor(flags.common.quiet, flags.common.verbose))

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Environ(), log)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath, log)
	if err != nil {
		return err
	}

	// Env fills gaps, then CLI flags win
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if _, err := md2html.ParseEngine(cfg.Conversion.Engine); err != nil {
		return withHint(err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	converter, err := newConverter(cfg)
	if err != nil {
		return withHint(err)
	}

	css, err := readCSSFile(flags.assets.css)
	if err != nil {
		return err
	}

	params := &conversionParams{
		css:        css,
		title:      cfg.Document.Title,
		standalone: cfg.Document.Standalone,
	}

	inputPath := resolveInputPath(positionalArgs, cfg)
	if inputPath == stdinPath {
		if isTerminal(env.Stdin) {
			return fmt.Errorf("%w: pass a file, a directory or pipe markdown to stdin", ErrNoInput)
		}
		return convertStream(ctx, converter, env.Stdin, flags.output, env.Stdout, params)
	}

	extension := cfg.Output.Extension
	if extension == "" {
		extension = defaultExtension
	}
	if err := fileutil.ValidateExtension(extension); err != nil {
		return fmt.Errorf("output extension: %w", err)
	}

	// Discover files to convert
	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(inputPath, outputDir, extension, log)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoMarkdownFiles, inputPath, hints.ForNoMarkdownFiles())
	}

	workers := flags.workers
	if workers == 0 {
		workers = min(envCfg.Workers, md2html.MaxWorkers)
	}
	workers = md2html.ResolveWorkers(workers)

	start := env.Now()
	log.BatchStarted(len(files), workers)
	results := convertBatch(ctx, converter, files, params, workers)

	failedCount := reportResults(results, log, env.Now().Sub(start))
	if failedCount > 0 {
		return fmt.Errorf("%d %w", failedCount, ErrConversionsFailed)
	}

	return nil
}

// loadConfig loads the config named by the flag, falling back to
// MD2HTML_CONFIG, then to defaults.
func loadConfig(flagConfig, envConfigPath string, log *logger.Logger) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	engine, _ := md2html.ParseEngine(cfg.Conversion.Engine) // validated by LoadConfig
	log.ConfigLoaded(name, string(engine))
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Boolean flags only move a setting away from its default.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Conversion flags
	if flags.conversion.engine != "" {
		cfg.Conversion.Engine = strings.ToLower(flags.conversion.engine)
	}
	if flags.conversion.noTrailingListFlush {
		cfg.Conversion.FlushTrailingLists = false
	}
	if flags.conversion.splitParagraphs {
		cfg.Conversion.SplitParagraphs = true
	}
	if flags.conversion.normalizeUnicode {
		cfg.Conversion.NormalizeUnicode = true
	}
	if flags.conversion.noFrontMatter {
		cfg.Conversion.FrontMatter = false
	}
	if n := flags.conversion.maxInputSize; n != maxInputSizeUnset {
		cfg.Conversion.MaxInputSize = &n
	}

	// Document flags
	if flags.document.standalone {
		cfg.Document.Standalone = true
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}

	// Asset flags
	if flags.assets.style != "" {
		cfg.Document.Style = flags.assets.style
	}
	if flags.assets.template != "" {
		cfg.Document.Template = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Document.AssetPath = flags.assets.assetPath
	}
}

// newConverter builds a Converter from the merged config.
// An unset conversion.maxInputSize keeps the library default; 0 lifts the limit.
func newConverter(cfg *config.Config) (*md2html.Converter, error) {
	engine, err := md2html.ParseEngine(cfg.Conversion.Engine)
	if err != nil {
		return nil, err
	}

	opts := []md2html.Option{
		md2html.WithEngine(engine),
		md2html.WithTrailingListFlush(cfg.Conversion.FlushTrailingLists),
		md2html.WithParagraphSplitting(cfg.Conversion.SplitParagraphs),
		md2html.WithLineEndingNormalization(cfg.Conversion.NormalizeLineEndings),
		md2html.WithUnicodeNormalization(cfg.Conversion.NormalizeUnicode),
		md2html.WithFrontMatter(cfg.Conversion.FrontMatter),
		md2html.WithStyle(cfg.Document.Style),
		md2html.WithAssetPath(cfg.Document.AssetPath),
	}
	if n := cfg.Conversion.MaxInputSize; n != nil {
		opts = append(opts, md2html.WithMaxInputSize(*n))
	}
	if cfg.Document.Template != "" {
		opts = append(opts, md2html.WithTemplate(cfg.Document.Template))
	}

	return md2html.NewConverter(opts...)
}

// withHint appends an actionable hint to errors that have one.
func withHint(err error) error {
	switch {
	case errors.Is(err, md2html.ErrUnknownEngine):
		return fmt.Errorf("%w%s", err, hints.ForUnknownEngine(md2html.Engines()))
	case errors.Is(err, md2html.ErrStyleNotFound):
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(md2html.Styles()))
	case errors.Is(err, md2html.ErrTemplateNotFound):
		return fmt.Errorf("%w%s", err, hints.ForTemplateNotFound())
	default:
		return err
	}
}

// resolveInputPath determines the input path from args or config.
// Without either, markdown is read from stdin.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir
	}
	return stdinPath
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// readCSSFile reads the --css file. An empty path means no extra CSS.
func readCSSFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// convertStream converts markdown read from r. The result goes to
// outputPath when set, else to w.
func convertStream(ctx context.Context, r Renderer, in io.Reader, outputPath string, w io.Writer, params *conversionParams) error {
	content, err := readLimited(in, r.MaxInputSize())
	if err != nil {
		return err
	}

	res, err := r.Render(ctx, md2html.Input{
		Markdown:   content,
		Title:      params.title,
		CSS:        params.css,
		Standalone: params.standalone,
	})
	if err != nil {
		return renderError(err, r.MaxInputSize())
	}

	if outputPath == "" {
		if _, err := w.Write(res.HTML); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
		return nil
	}

	return writeOutput(outputPath, res.HTML)
}

// readLimited reads all of in, stopping one byte past limit so oversized
// input is rejected by Render without buffering all of it.
func readLimited(in io.Reader, limit int) (string, error) {
	if limit > 0 {
		in = io.LimitReader(in, int64(limit)+1)
	}
	content, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}

// renderError adds the size hint to ErrInputTooLarge.
func renderError(err error, limit int) error {
	if errors.Is(err, md2html.ErrInputTooLarge) {
		return fmt.Errorf("%w%s", err, hints.ForInputTooLarge(limit))
	}
	return err
}

// writeOutput creates the parent directory and writes data atomically.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
		}
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
