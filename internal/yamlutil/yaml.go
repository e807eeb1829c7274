// Package yamlutil keeps goccy/go-yaml behind two decode functions and
// splits YAML front matter off Markdown documents.
package yamlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps the bytes accepted by Unmarshal and UnmarshalStrict.
const MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// Unmarshal decodes data into v, ignoring keys v has no field for.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict decodes data into v and fails on unknown keys.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// SplitFrontMatter cuts a leading front matter block off content. The block
// opens with a "---" line and closes with the next "---" or "..." line.
// Without both delimiters ok is false and body is content unchanged.
// content must use "\n" line endings.
func SplitFrontMatter(content string) (meta []byte, body string, ok bool) {
	rest, found := strings.CutPrefix(content, "---\n")
	if !found {
		return nil, content, false
	}

	for pos := 0; pos <= len(rest); {
		line, after, more := strings.Cut(rest[pos:], "\n")
		if line == "---" || line == "..." {
			return []byte(rest[:pos]), after, true
		}
		if !more {
			break
		}
		pos += len(line) + 1
	}
	return nil, content, false
}
