// Package fileutil holds the small path and file helpers shared by the
// converter, the config loader and the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	ErrExtensionEmpty         = errors.New("output extension is empty")
	ErrExtensionNoDot         = errors.New("output extension must begin with a dot")
	ErrExtensionPathTraversal = errors.New("output extension may not contain separators or NUL")
)

// ValidateExtension accepts ".html"-like suffixes that cannot change the
// directory of the file they are appended to.
func ValidateExtension(ext string) error {
	switch {
	case ext == "":
		return ErrExtensionEmpty
	case ext[0] != '.':
		return ErrExtensionNoDot
	case strings.ContainsAny(ext, "/\\\x00"):
		return ErrExtensionPathTraversal
	}
	return nil
}

// IsMarkdownFile reports whether path ends in .md or .markdown, ignoring case.
func IsMarkdownFile(path string) bool {
	return slices.Contains([]string{".md", ".markdown"}, strings.ToLower(filepath.Ext(path)))
}

// ReplaceExtension swaps the extension of path for ext.
func ReplaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// WriteFileAtomic writes data to a temporary sibling of path and renames it
// into place, so path either keeps its old content or gets all of data.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".md2html-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmp := f.Name()

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, perm)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether path names something that is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsFilePath tells a path from a bare name: any / or \ makes it a path.
// "work" is a name; "./work.yaml", "sub/dir" and `C:\work.yaml` are paths.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`)
}
