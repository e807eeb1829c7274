package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdConvert    = "convert"
	cmdVersion    = "version"
	cmdHelp       = "help"
	cmdCompletion = "completion"
)

func main() {
	// Configure GOMAXPROCS before workers are sized.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(maxprocsLogger(os.Args)))

	code := runMain(os.Args, DefaultEnv())
	undo()
	os.Exit(code)
}

// maxprocsLogger prints automaxprocs decisions only when --verbose is present.
func maxprocsLogger(args []string) func(string, ...interface{}) {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return func(format string, v ...interface{}) {
				fmt.Fprintf(os.Stderr, format+"\n", v...)
			}
		}
	}
	return func(string, ...interface{}) {}
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	// "md2html doc.md" and "md2html -" are shorthands for convert.
	if !isCommand(cmd) && (cmd == stdinPath || looksLikeMarkdown(cmd)) {
		cmd, rest = cmdConvert, args[1:]
	}

	var err error
	switch cmd {
	case cmdConvert:
		err = runConvertCmd(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "md2html %s\n", resolveVersion())
	case cmdHelp, "-h", "--help":
		err = runHelp(rest, env)
	case cmdCompletion:
		err = runCompletion(rest, env)
	default:
		printUsage(env.Stderr)
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvertCmd parses convert flags, installs signal handling and runs the
// conversion.
func runConvertCmd(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runConvert(ctx, positional, flags, env)
}

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	switch name {
	case cmdConvert, cmdVersion, cmdHelp, cmdCompletion:
		return true
	}
	return false
}

// looksLikeMarkdown reports whether arg names a markdown file.
func looksLikeMarkdown(arg string) bool {
	return fileutil.IsMarkdownFile(arg)
}

// resolveVersion prefers the ldflags version, then the module version
// recorded by go install.
func resolveVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
