package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofasta/internal/configloader"
	"github.com/yaklabco/gofasta/internal/logging"
	"github.com/yaklabco/gofasta/pkg/config"
)

// loadConfig resolves the effective configuration for a subcommand.
// cliCfg carries only the values the user set explicitly on the
// command line; the loader merges it over environment variables and
// discovered config files. The returned working directory anchors
// path discovery and display.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.Default()

	// Global flags join the CLI layer of the merge. Only values the
	// user changed may override config files and environment.
	if cmd.Flags().Changed("color") {
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, "", fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(colorMode)
	}
	if cmd.Flags().Changed("jobs") {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return nil, "", fmt.Errorf("get jobs flag: %w", err)
		}
		cliCfg.Jobs = jobs
	}
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil && quiet {
		cliCfg.Quiet = true
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

// commandContext returns the command's context, falling back to a
// background context when the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
