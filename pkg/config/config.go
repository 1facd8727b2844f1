// Package config defines core configuration types for gofasta.
// These types are pure data structures, decoupled from the loader
// that discovers and populates them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultExtensions are the file extensions treated as FASTA during
// directory discovery. Each also matches its .gz-compressed double.
var DefaultExtensions = []string{".fasta", ".fa", ".fna", ".faa", ".fas"}

// Config is the root configuration structure for gofasta.
type Config struct {
	// Extensions lists the file extensions discovered as FASTA.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to skip during
	// discovery. ** matches across directory separators.
	Ignore []string `yaml:"ignore"`

	// Jobs is the number of parallel workers. 0 means one per CPU.
	Jobs int `yaml:"jobs"`

	// Format selects the report rendering: text, table, or json.
	Format OutputFormat `yaml:"format"`

	// Color controls styled output: auto, always, or never.
	Color ColorMode `yaml:"color"`

	// Charset is the IANA name of the input encoding. Empty means
	// UTF-8 passthrough.
	Charset string `yaml:"charset"`

	// Detect enables content sniffing for files whose extension is
	// not listed in Extensions.
	Detect bool `yaml:"detect"`

	// CLI-level options (not persisted to config files).

	// Quiet suppresses non-essential output.
	Quiet bool `yaml:"-"`

	// LogLevel sets the logger threshold (debug, info, warn, error).
	LogLevel string `yaml:"-"`

	// LogFormat selects the log rendering (text or json).
	LogFormat string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: append([]string(nil), DefaultExtensions...),
		Ignore:     nil,
		Jobs:       0, // 0 means one worker per CPU
		Format:     FormatText,
		Color:      ColorAuto,
		Charset:    "",
		Detect:     false,
	}
}

// Validate checks the configuration for values no component can act
// on. All failures wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative, got %d", ErrInvalidConfig, c.Jobs)
	}

	if !c.Format.IsValid() {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	if !c.Color.IsValid() {
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalidConfig, c.Color)
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}

	if c.Charset != "" {
		enc, err := ianaindex.IANA.Encoding(c.Charset)
		if err != nil || enc == nil {
			return fmt.Errorf("%w: unknown charset %q", ErrInvalidConfig, c.Charset)
		}
	}

	return nil
}
