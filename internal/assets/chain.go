package assets

import "errors"

// Chain tries loaders in order. Only a not-found result moves on to the next
// loader; invalid names and read failures stop the lookup.
type Chain []Loader

// New builds the loader used for standalone documents: the directory at dir
// when one is given, backed by the built-in assets.
func New(dir string) (Chain, error) {
	if dir == "" {
		return Chain{Builtin()}, nil
	}
	d, err := OpenDir(dir)
	if err != nil {
		return nil, err
	}
	return Chain{d, Builtin()}, nil
}

// Load returns the first hit. With no loaders it reports not found.
func (c Chain) Load(kind Kind, name string) (string, error) {
	err := kind.notFound()
	for _, l := range c {
		var content string
		content, err = l.Load(kind, name)
		if err == nil {
			return content, nil
		}
		if !IsNotFound(err) {
			return "", err
		}
	}
	return "", err
}

// IsNotFound reports whether err means the asset does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}
