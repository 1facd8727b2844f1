// Package main is the entry point for the gofasta CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gofasta/internal/cli"
	"github.com/yaklabco/gofasta/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil {
		// ErrFilesFailed is just a signal for the exit code; the
		// reporter has already rendered the per-file failures.
		if !errors.Is(err, cli.ErrFilesFailed) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
	}

	return cli.ExitCodeForError(err)
}
