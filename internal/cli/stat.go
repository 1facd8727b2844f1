package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofasta/internal/logging"
	"github.com/yaklabco/gofasta/pkg/config"
	"github.com/yaklabco/gofasta/pkg/fasta"
	"github.com/yaklabco/gofasta/pkg/reporter"
	"github.com/yaklabco/gofasta/pkg/runner"
	"github.com/yaklabco/gofasta/pkg/seqio"
	"github.com/yaklabco/gofasta/pkg/seqstat"
)

type statFlags struct {
	format      string
	charset     string
	ignore      []string
	detect      bool
	perFile     bool
	compact     bool
	noSequences bool
}

func newStatCommand() *cobra.Command {
	flags := &statFlags{}

	cmd := &cobra.Command{
		Use:   "stat [paths...]",
		Short: "Report sequence statistics for FASTA files",
		Long:  statLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(cmd, args, flags)
		},
	}

	addStatFlags(cmd, flags)

	return cmd
}

const statLongDescription = `Report per-file sequence statistics: sequence count, code totals,
length minimum/maximum/mean, GC fraction, and comment count.

By default, scans FASTA files in the current directory and
subdirectories. Specify paths to scan specific files or directories.
Files are streamed in a single pass; even multi-gigabyte inputs use
constant memory.

Examples:
  gofasta stat                     # Scan current directory
  gofasta stat genomes/            # Scan a directory
  gofasta stat chr1.fasta.gz       # Scan a single compressed file
  gofasta stat --format json       # Output as JSON for pipelines
  gofasta stat --format table      # Render an aligned table
  gofasta stat --detect data/      # Sniff files with unlisted extensions`

func runStat(cmd *cobra.Command, args []string, flags *statFlags) error {
	logger := logging.Default()

	// Only forward values the user set explicitly, so config files and
	// environment variables keep their say for the rest.
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("charset") {
		cliCfg.Charset = flags.charset
	}
	if cmd.Flags().Changed("detect") {
		cliCfg.Detect = flags.detect
	}
	cliCfg.Ignore = flags.ignore

	ctx := commandContext(cmd)

	finalCfg, workDir, err := loadConfig(ctx, cmd, cliCfg)
	if err != nil {
		return err
	}

	statRunner := runner.New(statProcess(finalCfg.Charset))

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   finalCfg.Extensions,
		ExcludeGlobs: finalCfg.Ignore,
		Detect:       finalCfg.Detect,
		Jobs:         finalCfg.Jobs,
	}

	logger.Debug("starting stat run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := statRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("stat run failed"), err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:        cmd.OutOrStdout(),
		ErrorWriter:   cmd.ErrOrStderr(),
		Format:        finalCfg.Format,
		Color:         finalCfg.Color,
		ShowSequences: !flags.noSequences,
		ShowSummary:   !finalCfg.Quiet,
		Compact:       flags.compact,
		PerFile:       flags.perFile,
		WorkingDir:    workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	failed, err := rep.Report(ctx, result)
	if err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if failed > 0 {
		return ErrFilesFailed
	}

	return nil
}

// statProcess builds the per-file work: open the source, stream it
// through a scanner, and fold every record into a report.
func statProcess(charset string) runner.ProcessFunc {
	return func(ctx context.Context, path string) (*runner.FileResult, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rc, err := seqio.OpenCharset(path, charset)
		if err != nil {
			return nil, err
		}

		sc := fasta.NewScanCloser(rc)

		report, err := seqstat.Collect(path, sc.All())
		if err != nil {
			return nil, err
		}

		return &runner.FileResult{Report: report}, nil
	}
}

func addStatFlags(cmd *cobra.Command, flags *statFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json")
	cmd.Flags().StringVar(&flags.charset, "charset", "", "IANA name of the input encoding")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.detect, "detect", false,
		"sniff files whose extension is not configured")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false,
		"output a separate table for each file (table format)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON output")
	cmd.Flags().BoolVar(&flags.noSequences, "no-sequences", false,
		"hide per-sequence detail, totals only")
}
