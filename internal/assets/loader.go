package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Loader returns the content of a named asset of the given kind.
// Missing assets yield ErrStyleNotFound or ErrTemplateNotFound.
type Loader interface {
	Load(kind Kind, name string) (string, error)
}

// ValidateName accepts bare names only: no separators, no dots.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// fsLoader reads "<kind dir>/<name><kind ext>" from an fs.FS.
type fsLoader struct {
	fsys fs.FS
}

func (l fsLoader) Load(kind Kind, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(l.fsys, kind.file(name))
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", kind.notFound(), name)
	default:
		return "", fmt.Errorf("%w: %s %q: %v", ErrRead, kind, name, err)
	}
}
