package cli

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofasta/internal/logging"
	"github.com/yaklabco/gofasta/pkg/config"
	"github.com/yaklabco/gofasta/pkg/fasta"
	"github.com/yaklabco/gofasta/pkg/fsutil"
	"github.com/yaklabco/gofasta/pkg/reporter"
	"github.com/yaklabco/gofasta/pkg/runner"
	"github.com/yaklabco/gofasta/pkg/seqio"
	"github.com/yaklabco/gofasta/pkg/seqstat"
)

type catFlags struct {
	output  string
	write   bool
	backup  bool
	charset string
	ignore  []string
	detect  bool
}

func newCatCommand() *cobra.Command {
	flags := &catFlags{}

	cmd := &cobra.Command{
		Use:   "cat [paths...]",
		Short: "Rewrite FASTA input in canonical 80-column form",
		Long:  catLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(cmd, args, flags)
		},
	}

	addCatFlags(cmd, flags)

	return cmd
}

const catLongDescription = `Parse FASTA input and re-serialize it canonically: code characters
reflowed to 80 columns, metadata blocks emitted once at each
transition, blank lines dropped.

By default the canonical stream goes to standard output, and reading
standard input when no paths are given makes cat usable in shell
pipelines. Directories expand to the FASTA files inside them, in a
stable order.

Examples:
  gofasta cat genome.fasta               # Canonical form to stdout
  gofasta cat a.fasta b.fasta            # Concatenate two files
  cat raw.txt | gofasta cat              # Filter a pipeline
  gofasta cat -o clean.fasta.gz genome/  # Write a compressed sink
  gofasta cat -w genomes/                # Rewrite files in place
  gofasta cat -w --backup genomes/       # Keep .gofasta.bak originals`

func runCat(cmd *cobra.Command, args []string, flags *catFlags) error {
	if flags.write && cmd.Flags().Changed("output") {
		return fmt.Errorf("%w: --write and --output are mutually exclusive", ErrUsage)
	}

	// Only forward values the user set explicitly, so config files and
	// environment variables keep their say for the rest.
	cliCfg := &config.Config{}
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

	if flags.write {
		return runCatRewrite(ctx, cmd, args, flags, finalCfg, workDir)
	}

	return runCatStream(ctx, cmd, args, flags, finalCfg, workDir)
}

// runCatStream concatenates every input into one canonical FASTA
// stream. The writer is shared across inputs, so the 80-column layout
// continues uninterrupted over file boundaries.
func runCatStream(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	flags *catFlags,
	cfg *config.Config,
	workDir string,
) (err error) {
	logger := logging.Default()

	var dst io.Writer = cmd.OutOrStdout()
	if flags.output != seqio.StdStream {
		sink, createErr := seqio.Create(flags.output)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if closeErr := sink.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("%w: %w", fasta.ErrSinkWrite, closeErr)
			}
		}()
		dst = sink
	}

	w := fasta.NewWriter(dst)

	if len(args) == 0 {
		if err := streamStdin(ctx, cmd, cfg.Charset, w); err != nil {
			return err
		}
		return w.Flush()
	}

	inputs, err := expandArgs(ctx, args, workDir, cfg)
	if err != nil {
		return err
	}

	var failed int
	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := streamFile(ctx, path, cfg.Charset, w); err != nil {
			// A broken sink ends the run; a broken source only loses
			// that one input.
			if errors.Is(err, fasta.ErrSinkWrite) {
				return err
			}
			logger.Error("skipping input", logging.FieldPath, path, logging.FieldError, err)
			failed++
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return ErrFilesFailed
	}

	return nil
}

// streamStdin copies records from standard input into w, sniffing gzip
// and decoding the configured charset like any file source.
func streamStdin(ctx context.Context, cmd *cobra.Command, charset string, w *fasta.Writer) error {
	src, err := seqio.NewReader(cmd.InOrStdin())
	if err != nil {
		return err
	}
	decoded, err := seqio.DecodeReader(src, charset)
	if err != nil {
		return err
	}
	return copyRecords(ctx, fasta.NewScanner(decoded), w)
}

// streamFile copies every record of one source into w, releasing the
// source on all paths.
func streamFile(ctx context.Context, path, charset string, w *fasta.Writer) error {
	rc, err := seqio.OpenCharset(path, charset)
	if err != nil {
		return err
	}
	sc := fasta.NewScanCloser(rc)
	defer sc.Close()

	return copyRecords(ctx, sc, w)
}

// copyRecords drains sc into w.
func copyRecords(ctx context.Context, sc *fasta.Scanner, w *fasta.Writer) error {
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.WriteRecord(sc.Record()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// expandArgs resolves each argument in order: files pass through,
// directories expand through discovery. Argument order is preserved so
// concatenated output is reproducible.
func expandArgs(ctx context.Context, args []string, workDir string, cfg *config.Config) ([]string, error) {
	seen := make(map[string]struct{})
	var inputs []string

	for _, arg := range args {
		found, err := runner.Discover(ctx, runner.Options{
			Paths:        []string{arg},
			WorkingDir:   workDir,
			Extensions:   cfg.Extensions,
			ExcludeGlobs: cfg.Ignore,
			Detect:       cfg.Detect,
		})
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			inputs = append(inputs, path)
		}
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: %v", runner.ErrNoInputs, args)
	}

	return inputs, nil
}

// runCatRewrite reflows the discovered files in place through the
// worker pool and reports what changed.
func runCatRewrite(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	flags *catFlags,
	cfg *config.Config,
	workDir string,
) error {
	logger := logging.Default()

	catRunner := runner.New(rewriteProcess(cfg.Charset, flags.backup))

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Detect:       cfg.Detect,
		Jobs:         cfg.Jobs,
	}

	logger.Debug("starting rewrite run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := catRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("rewrite run failed"), err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:        cmd.OutOrStdout(),
		ErrorWriter:   cmd.ErrOrStderr(),
		Format:        cfg.Format,
		Color:         cfg.Color,
		ShowSequences: false,
		ShowSummary:   !cfg.Quiet,
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

// rewriteProcess builds the per-file rewrite: read, reflow into memory,
// and atomically replace the file when the canonical form differs.
// Inputs that are already canonical are left untouched, timestamps
// included.
func rewriteProcess(charset string, backup bool) runner.ProcessFunc {
	return func(ctx context.Context, path string) (*runner.FileResult, error) {
		if path == seqio.StdStream {
			return nil, errors.New("cannot rewrite standard input in place")
		}

		content, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return nil, err
		}

		out, report, err := reflow(ctx, path, content, charset)
		if err != nil {
			return nil, err
		}

		// Refuse to clobber edits that landed between read and write.
		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			return nil, err
		}
		if modified {
			return nil, fmt.Errorf("file changed during processing: %s", path)
		}

		if bytes.Equal(content, out) {
			return &runner.FileResult{Report: report, Written: false}, nil
		}

		if backup {
			if _, err := fsutil.CreateBackup(ctx, path); err != nil {
				return nil, err
			}
		}

		if err := fsutil.WriteAtomic(ctx, path, out, info.Mode); err != nil {
			return nil, err
		}

		return &runner.FileResult{Report: report, Written: true}, nil
	}
}

// reflow renders content in canonical form, compressing the result
// again when the path names a gzip file, and collects statistics along
// the way.
func reflow(ctx context.Context, path string, content []byte, charset string) ([]byte, *seqstat.Report, error) {
	src, err := seqio.NewReader(bytes.NewReader(content))
	if err != nil {
		return nil, nil, err
	}
	decoded, err := seqio.DecodeReader(src, charset)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	var gz *gzip.Writer
	if seqio.IsGzipPath(path) {
		gz = gzip.NewWriter(&buf)
		dst = gz
	}

	sc := fasta.NewScanner(decoded)
	acc := seqstat.NewAccumulator(path)
	w := fasta.NewWriter(dst)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		rec := sc.Record()
		acc.Add(rec)
		if err := w.WriteRecord(rec); err != nil {
			return nil, nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, nil, err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", fasta.ErrSinkWrite, err)
		}
	}

	return buf.Bytes(), acc.Stats(), nil
}

func addCatFlags(cmd *cobra.Command, flags *catFlags) {
	cmd.Flags().StringVarP(&flags.output, "output", "o", seqio.StdStream,
		"output path (- for stdout, .gz for compression)")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false,
		"rewrite input files in place instead of writing a stream")
	cmd.Flags().BoolVar(&flags.backup, "backup", false,
		"keep a .gofasta.bak copy of each rewritten file")
	cmd.Flags().StringVar(&flags.charset, "charset", "", "IANA name of the input encoding")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.detect, "detect", false,
		"sniff files whose extension is not configured")
}
