package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Process exit codes. Anything not classified below is ExitGeneral.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2 // bad flags, config or option values
	ExitIO      = 3 // missing, unreadable or unwritable files
)

// exitClasses is checked in order; the first class holding a sentinel that
// matches errors.Is wins. I/O comes first so a wrapped os.ErrNotExist
// behind a usage error still reports as I/O.
var exitClasses = []struct {
	code      int
	sentinels []error
}{
	{ExitIO, []error{
		os.ErrNotExist, os.ErrPermission,
		ErrReadMarkdown, ErrReadCSS, ErrWriteHTML,
		ErrNoInput, ErrNoMarkdownFiles,
	}},
	{ExitUsage, []error{
		ErrUsage, ErrInvalidExtension, ErrInvalidWorkerCount, ErrUnsupportedShell,
		config.ErrConfigNotFound, config.ErrEmptyConfigName, config.ErrConfigParse,
		config.ErrFieldTooLong, config.ErrInvalidValue,
		fileutil.ErrExtensionEmpty, fileutil.ErrExtensionNoDot, fileutil.ErrExtensionPathTraversal,
		md2html.ErrUnknownEngine, md2html.ErrInputTooLarge, md2html.ErrInvalidMaxInputSize,
		md2html.ErrStyleNotFound, md2html.ErrTemplateNotFound, md2html.ErrInvalidTemplate,
		md2html.ErrInvalidAssetPath,
	}},
}

func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	for _, class := range exitClasses {
		for _, s := range class.sentinels {
			if errors.Is(err, s) {
				return class.code
			}
		}
	}
	return ExitGeneral
}
