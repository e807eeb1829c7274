package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// maxInputSizeUnset detects if --max-input-size was explicitly set.
// Zero is a valid size (no limit), so an out-of-range sentinel is used.
const maxInputSizeUnset = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// conversionFlags holds flags selecting the engine and pass behaviour.
type conversionFlags struct {
	engine              string
	noTrailingListFlush bool
	splitParagraphs     bool
	normalizeUnicode    bool
	noFrontMatter       bool
	maxInputSize        int
}

// documentFlags holds standalone document flags.
type documentFlags struct {
	standalone bool
	title      string
}

// assetFlags holds asset-related flags (CSS, templates, custom asset path).
type assetFlags struct {
	style     string // Name or path of the base stylesheet
	css       string // Extra CSS file appended after the style
	template  string // Document template name
	assetPath string // Override asset directory
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	conversion conversionFlags
	document   documentFlags
	assets     assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addConversionFlags adds engine and pass flags to a FlagSet.
func addConversionFlags(fs *flag.FlagSet, f *conversionFlags) {
	fs.StringVar(&f.engine, "engine", "", "conversion engine: passes, commonmark")
	fs.BoolVar(&f.noTrailingListFlush, "no-trailing-list-flush", false, "drop a list left open at end of input")
	fs.BoolVar(&f.splitParagraphs, "split-paragraphs", false, "wrap blank-line separated blocks in <p>")
	fs.BoolVar(&f.normalizeUnicode, "normalize-unicode", false, "apply NFC normalization before converting")
	fs.BoolVar(&f.noFrontMatter, "no-front-matter", false, "keep a leading YAML front matter block")
	fs.IntVar(&f.maxInputSize, "max-input-size", maxInputSizeUnset, "max input size in bytes (0 = unlimited)")
}

// addDocumentFlags adds document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "write a full HTML document")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = front matter, then first H1)")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the style")
	fs.StringVar(&f.template, "template", "", "document template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newConvertFlagSet creates the convert FlagSet bound to a fresh convertFlags.
// Completion extracts its flag definitions from the same set.
func newConvertFlagSet() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addConversionFlags(fs, &f.conversion)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)

	return fs, f
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage is printed to stderr on parse errors and for --help.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs, f := newConvertFlagSet()
	fs.SetOutput(stderr)
	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
