package config

import "fmt"

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat converts a flag or file value into an
// OutputFormat. Empty input selects text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatText, nil
	}
	f := OutputFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, s)
	}
	return f, nil
}

// ColorMode controls when styled output is used.
type ColorMode string

const (
	// ColorAuto styles output only when it goes to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ParseColorMode converts a flag or file value into a ColorMode.
// Empty input selects auto.
func ParseColorMode(s string) (ColorMode, error) {
	if s == "" {
		return ColorAuto, nil
	}
	m := ColorMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: unknown color mode %q", ErrInvalidConfig, s)
	}
	return m, nil
}
