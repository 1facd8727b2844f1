package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofasta/internal/logging"
	"github.com/yaklabco/gofasta/pkg/config"
	"github.com/yaklabco/gofasta/pkg/fasta"
	"github.com/yaklabco/gofasta/pkg/seqio"
)

// defaultHeadCount is one canonical output line worth of codes.
const defaultHeadCount = fasta.Columns

type headFlags struct {
	count   int
	charset string
	ignore  []string
	detect  bool
}

func newHeadCommand() *cobra.Command {
	flags := &headFlags{}

	cmd := &cobra.Command{
		Use:   "head [paths...]",
		Short: "Print the first codes of each FASTA input",
		Long:  headLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHead(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.count, "count", "n", defaultHeadCount,
		"number of codes to print per input")
	cmd.Flags().StringVar(&flags.charset, "charset", "", "IANA name of the input encoding")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.detect, "detect", false,
		"sniff files whose extension is not configured")

	return cmd
}

const headLongDescription = `Print the first N code characters of each input as canonical FASTA,
with the metadata in effect at those positions. Reading stops as soon
as the count is reached; the remainder of the input is never touched,
so previewing the start of a multi-gigabyte file costs nothing.

With no paths, reads standard input.

Examples:
  gofasta head genome.fasta          # First 80 codes
  gofasta head -n 500 genome.fa.gz   # First 500 codes, decompressed
  cat data.txt | gofasta head -n 10  # Peek at a pipeline`

func runHead(cmd *cobra.Command, args []string, flags *headFlags) error {
	if flags.count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrUsage, flags.count)
	}

	logger := logging.Default()

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

	w := fasta.NewWriter(cmd.OutOrStdout())

	if len(args) == 0 {
		if err := headStdin(ctx, cmd, finalCfg.Charset, flags.count, w); err != nil {
			return err
		}
		return w.Flush()
	}

	inputs, err := expandArgs(ctx, args, workDir, finalCfg)
	if err != nil {
		return err
	}

	var failed int
	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := headFile(ctx, path, finalCfg.Charset, flags.count, w); err != nil {
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

// headFile copies at most count records from one source into w. The
// source is released as soon as the count is reached, leaving the rest
// of the stream unread.
func headFile(ctx context.Context, path, charset string, count int, w *fasta.Writer) error {
	rc, err := seqio.OpenCharset(path, charset)
	if err != nil {
		return err
	}
	sc := fasta.NewScanCloser(rc)
	defer sc.Close()

	return copyHead(ctx, sc, w, count)
}

// headStdin copies at most count records from standard input into w.
func headStdin(ctx context.Context, cmd *cobra.Command, charset string, count int, w *fasta.Writer) error {
	src, err := seqio.NewReader(cmd.InOrStdin())
	if err != nil {
		return err
	}
	decoded, err := seqio.DecodeReader(src, charset)
	if err != nil {
		return err
	}
	return copyHead(ctx, fasta.NewScanner(decoded), w, count)
}

// copyHead copies at most count records from sc into w. The count is
// checked before each Scan, so the scanner never reads past the last
// wanted record.
func copyHead(ctx context.Context, sc *fasta.Scanner, w *fasta.Writer, count int) error {
	for n := 0; n < count && sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.WriteRecord(sc.Record()); err != nil {
			return err
		}
	}
	return sc.Err()
}
