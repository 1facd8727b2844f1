package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofasta/internal/logging"
	"github.com/yaklabco/gofasta/pkg/config"
	"github.com/yaklabco/gofasta/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gofasta configuration file",
		Long: `Create a new .gofasta.yml configuration file in the current directory
with sensible defaults. The file can be customized to change discovered
extensions, ignore patterns, output format, and other options.

Examples:
  gofasta init                    Create minimal .gofasta.yml
  gofasta init --full             Create full config with every field spelled out
  gofasta init --output etc/gofasta.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(commandContext(cmd), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every field documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", ".gofasta.yml", "Output file path")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	// Make path absolute
	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})

	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)

	if flags.full {
		logger.Info("full template lists every field at its default value")
	}

	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'gofasta stat' to scan with the new settings")

	return nil
}
