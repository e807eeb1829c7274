// Package config loads and validates the YAML configuration file of the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxTitleLength     = 200  // Document title
	MaxNameLength      = 100  // Style or template name
	MaxExtensionLength = 16   // ".html", ".xhtml"
)

// Engine names accepted in conversion.engine.
const (
	EnginePasses     = "passes"
	EngineCommonMark = "commonmark"
)

// configDirName is the directory searched under the user config directory.
const configDirName = "go-md2html"

// Config holds all configuration for a conversion run.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Conversion ConversionConfig `yaml:"conversion"`
	Document   DocumentConfig   `yaml:"document"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = stdin or argument)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Extension  string `yaml:"extension"`  // Output file extension (default: ".html")
}

// ConversionConfig defines how Markdown becomes HTML.
type ConversionConfig struct {
	Engine               string `yaml:"engine"`               // "passes" or "commonmark"; empty = not set, passes
	FlushTrailingLists   bool   `yaml:"flushTrailingLists"`   // Close a list still open at end of input
	SplitParagraphs      bool   `yaml:"splitParagraphs"`      // Wrap paragraphs on blank lines
	NormalizeLineEndings bool   `yaml:"normalizeLineEndings"` // \r\n and \r to \n
	NormalizeUnicode     bool   `yaml:"normalizeUnicode"`     // NFC
	FrontMatter          bool   `yaml:"frontMatter"`          // Strip leading YAML block
	MaxInputSize         *int   `yaml:"maxInputSize"`         // Bytes, 0 = unlimited, nil = library default
}

// DocumentConfig defines standalone document output.
type DocumentConfig struct {
	Standalone bool   `yaml:"standalone"` // Wrap output in a full HTML document
	Title      string `yaml:"title"`      // Empty = front matter title, then first H1
	Style      string `yaml:"style"`      // Style name (empty = no CSS)
	Template   string `yaml:"template"`   // Template name (empty = default)
	AssetPath  string `yaml:"assetPath"`  // Custom asset directory (empty = embedded only)
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.extension", c.Output.Extension, MaxExtensionLength); err != nil {
		return err
	}
	if c.Output.Extension != "" {
		if !strings.HasPrefix(c.Output.Extension, ".") || strings.ContainsAny(c.Output.Extension, "/\\") {
			return fmt.Errorf("%w: output.extension %q (must start with '.' and contain no separator)", ErrInvalidValue, c.Output.Extension)
		}
	}

	switch strings.ToLower(c.Conversion.Engine) {
	case "", EnginePasses, EngineCommonMark:
		// valid
	default:
		return fmt.Errorf("%w: conversion.engine %q (must be %s or %s)", ErrInvalidValue, c.Conversion.Engine, EnginePasses, EngineCommonMark)
	}
	if n := c.Conversion.MaxInputSize; n != nil && *n < 0 {
		return fmt.Errorf("%w: conversion.maxInputSize must be >= 0, got %d", ErrInvalidValue, *n)
	}

	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.style", c.Document.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.template", c.Document.Template, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.assetPath", c.Document.AssetPath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
// Legacy output bytes are kept except for trailing lists, which are flushed.
// Engine and MaxInputSize stay unset so lower-priority sources can fill them.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Extension: ".html"},
		Conversion: ConversionConfig{
			FlushTrailingLists:   true,
			NormalizeLineEndings: true,
			FrontMatter:          true,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.Conversion.Engine = strings.ToLower(strings.TrimSpace(cfg.Conversion.Engine))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in order.
// Tries the current directory first, then the user config directory,
// each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
