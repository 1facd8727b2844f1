package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gofasta/pkg/config"
)

// ErrConfigNotFound indicates an explicitly requested config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []error

	// Warnings are non-fatal issues (e.g., duplicate extensions).
	Warnings []string
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w)
	}
	return messages
}

// Validate checks a merged configuration for errors and warnings.
// Scalar fields are checked by config.Validate; the loader adds the
// checks only it can make, such as glob syntax for ignore patterns.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	if err := cfg.Validate(); err != nil {
		result.Errors = append(result.Errors, err)
	}

	validateIgnorePatterns(cfg, result)
	warnDuplicateExtensions(cfg, result)

	return result
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns
		_, err := filepath.Match(pattern, "")
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Errorf("%w: ignore[%d]: malformed glob %q: %v", config.ErrInvalidConfig, i, pattern, err))
		}
	}
}

// warnDuplicateExtensions warns about extensions listed more than once.
func warnDuplicateExtensions(cfg *config.Config, result *ValidationResult) {
	seen := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		key := strings.ToLower(ext)
		if seen[key] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("extension %q is listed more than once", ext))
			continue
		}
		seen[key] = true
	}
}
