// Package cli provides the Cobra command structure for gofasta.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofasta/internal/configloader"
	"github.com/yaklabco/gofasta/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gofasta command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var configPath string
	var logLevel string
	var logFormat string
	var quiet bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "gofasta",
		Short: "A streaming toolkit for FASTA sequence files",
		Long: `gofasta reads, rewrites, and summarizes FASTA sequence files as
character streams. Descriptions and comments travel with every code
character, input is consumed lazily in a single pass, and output is
reflowed to the canonical 80-column layout.

Plain files, gzip-compressed files, and standard streams all work as
sources and sinks, and non-UTF-8 inputs can be decoded by IANA charset
name.

Environment:
` + envVarHelp(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := logLevel
			if quiet {
				level = "error"
			}
			logging.SetDefault(logging.NewWithFormat(level, logFormat))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress summaries and non-essential logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of parallel workers (0 = one per CPU)")

	// Surface flag parse failures as usage errors for exit-code mapping.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newCatCommand())
	rootCmd.AddCommand(newStatCommand())
	rootCmd.AddCommand(newHeadCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// envVarHelp renders the supported environment variables as indented
// help lines in a stable order.
func envVarHelp() string {
	vars := configloader.ListEnvVars()

	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, vars[name])
	}
	return strings.TrimRight(b.String(), "\n")
}
