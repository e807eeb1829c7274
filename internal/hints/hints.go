// Package hints appends short remedies to error messages. Every hint has
// the form "\n  hint: <text>"; an empty string means nothing useful to add.
package hints

import (
	"fmt"
	"strings"
)

const prefix = "\n  hint: "

func hint(text string) string {
	if text == "" {
		return ""
	}
	return prefix + text
}

func oneOf(label string, names []string) string {
	if len(names) == 0 {
		return ""
	}
	return hint(label + strings.Join(names, ", "))
}

// ForConfigNotFound points at --config and, when one of the searched paths
// is the per-user config directory, at creating the file there.
func ForConfigNotFound(searched []string) string {
	text := "use --config /path/to/file.yaml"
	for _, p := range searched {
		if strings.Contains(p, "go-md2html") {
			return hint(text + " or create " + p)
		}
	}
	return hint(text)
}

// ForOutputDirectory is appended when the output directory cannot be created.
func ForOutputDirectory() string {
	return hint("check parent directory exists and is writable")
}

// ForInputTooLarge names the active limit and the key that changes it.
func ForInputTooLarge(limit int) string {
	return hint(fmt.Sprintf("input limit is %d bytes; raise conversion.maxInputSize or set it to 0 to disable", limit))
}

// ForUnknownEngine lists the accepted engine names.
func ForUnknownEngine(engines []string) string {
	return oneOf("--engine accepts: ", engines)
}

// ForNoMarkdownFiles explains which files a directory walk picks up.
func ForNoMarkdownFiles() string {
	return hint("only .md and .markdown files are converted")
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	return oneOf("available: ", available)
}

// ForTemplateNotFound shows where custom templates are looked up.
func ForTemplateNotFound() string {
	return hint("custom templates go in <asset-path>/templates/<name>.html")
}
