package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown files to HTML")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A markdown file or '-' as first argument runs convert.")
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or '-' for stdin")
	fmt.Fprintln(w, "           (defaults to input.defaultDir, then stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output file or directory (stdin input: file, default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "      --engine <name>          passes (default) or commonmark")
	fmt.Fprintln(w, "      --no-trailing-list-flush Drop a list left open at end of input")
	fmt.Fprintln(w, "      --split-paragraphs       Wrap blank-line separated blocks in <p>")
	fmt.Fprintln(w, "      --normalize-unicode      Apply NFC normalization first")
	fmt.Fprintln(w, "      --no-front-matter        Keep a leading YAML front matter block")
	fmt.Fprintln(w, "      --max-input-size <n>     Max input size in bytes (0 = unlimited)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --standalone             Write a full HTML document")
	fmt.Fprintln(w, "      --title <s>              Document title (default: front matter, first H1)")
	fmt.Fprintln(w, "      --style <name|path>      Style name or CSS file")
	fmt.Fprintln(w, "      --css <path>             Extra CSS file appended after the style")
	fmt.Fprintln(w, "      --template <name>        Document template name")
	fmt.Fprintln(w, "      --asset-path <dir>       Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_ENGINE, MD2HTML_STYLE, MD2HTML_INPUT_DIR,")
	fmt.Fprintln(w, "  MD2HTML_OUTPUT_DIR, MD2HTML_WORKERS (flags take precedence)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2html convert README.md")
	fmt.Fprintln(w, "  md2html convert docs/ -o site/ --standalone --style default")
	fmt.Fprintln(w, "  cat notes.md | md2html convert - > notes.html")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdConvert:
		printConvertUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
