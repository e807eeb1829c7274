package assets

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed styles/*.css templates/*.html
var builtinFS embed.FS

// Builtin returns the loader for assets compiled into the binary.
func Builtin() Loader {
	return fsLoader{fsys: builtinFS}
}

// BuiltinNames lists the compiled-in names of a kind in lexical order.
func BuiltinNames(kind Kind) []string {
	matches, err := fs.Glob(builtinFS, kind.dir()+"/*"+kind.ext())
	if err != nil {
		return nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(path.Base(m), kind.ext())
	}
	return names
}
