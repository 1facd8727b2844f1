package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/gofasta/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized output.
	Color config.ColorMode

	// ShowSequences includes per-sequence detail under each file.
	ShowSequences bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses compact/minified output where applicable.
	Compact bool

	// PerFile outputs a separate table for each file (table format only).
	PerFile bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:        os.Stdout,
		ErrorWriter:   os.Stderr,
		Format:        config.FormatText,
		Color:         config.ColorAuto,
		ShowSequences: true,
		ShowSummary:   true,
		Compact:       false,
	}
}
