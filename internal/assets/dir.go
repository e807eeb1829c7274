package assets

import (
	"fmt"
	"os"
)

// DirLoader reads assets from a directory laid out like the built-in set.
// Reads go through an os.Root, so symlinks cannot lead outside the directory.
type DirLoader struct {
	root *os.Root
	fsLoader
}

// OpenDir opens dir for asset loading. The directory stays open for the
// lifetime of the process unless Close is called.
func OpenDir(dir string) (*DirLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidDir)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidDir, dir)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDir, err)
	}
	return &DirLoader{root: root, fsLoader: fsLoader{fsys: root.FS()}}, nil
}

// Close releases the directory handle.
func (d *DirLoader) Close() error {
	return d.root.Close()
}
