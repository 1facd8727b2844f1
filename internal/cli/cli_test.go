package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/yaklabco/gofasta/internal/cli"
	"github.com/yaklabco/gofasta/pkg/config"
	"github.com/yaklabco/gofasta/pkg/runner"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "gofasta" {
		t.Errorf("expected Use to be 'gofasta', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{"cat", "stat", "head", "init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestStatCommandFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	statCmd, _, err := cmd.Find([]string{"stat"})
	if err != nil {
		t.Fatalf("stat command not found: %v", err)
	}

	expectedFlags := []string{
		"format",
		"charset",
		"ignore",
		"detect",
		"per-file",
		"compact",
		"no-sequences",
	}

	for _, flagName := range expectedFlags {
		flag := statCmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on stat command", flagName)
		}
	}
}

func TestCatCommandFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	catCmd, _, err := cmd.Find([]string{"cat"})
	if err != nil {
		t.Fatalf("cat command not found: %v", err)
	}

	expectedFlags := []string{
		"output",
		"write",
		"backup",
		"charset",
		"ignore",
		"detect",
	}

	for _, flagName := range expectedFlags {
		flag := catCmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on cat command", flagName)
		}
	}
}

func TestHeadCommandCountDefault(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	headCmd, _, err := cmd.Find([]string{"head"})
	if err != nil {
		t.Fatalf("head command not found: %v", err)
	}

	flag := headCmd.Flags().Lookup("count")
	if flag == nil {
		t.Fatal("expected flag 'count' to exist on head command")
	}

	if flag.DefValue != "80" {
		t.Errorf("expected count default to be 80, got %q", flag.DefValue)
	}

	if flag.Shorthand != "n" {
		t.Errorf("expected count shorthand to be 'n', got %q", flag.Shorthand)
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{"config", "log-level", "log-format", "quiet", "color", "jobs"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	// Text output goes through charmbracelet/log straight to stdout,
	// so success is all this path can verify.
}

func TestVersionCommandJSON(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version", "--json"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version --json failed: %v", err)
	}

	for _, want := range []string{`"version": "1.2.3"`, `"commit": "abc123"`, `"built": "2024-01-01"`} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("expected JSON output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestStatCommandAcceptsArbitraryArgs(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	statCmd, _, err := cmd.Find([]string{"stat"})
	if err != nil {
		t.Fatalf("stat command not found: %v", err)
	}

	err = statCmd.Args(statCmd, []string{"a.fasta", "b.fa.gz", "genomes/"})
	if err != nil {
		t.Errorf("stat command should accept arbitrary args, got error: %v", err)
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "files failed", err: cli.ErrFilesFailed, want: cli.ExitFailedFiles},
		{name: "wrapped files failed", err: fmt.Errorf("run: %w", cli.ErrFilesFailed), want: cli.ExitFailedFiles},
		{name: "usage", err: cli.ErrUsage, want: cli.ExitUsageError},
		{name: "invalid config", err: fmt.Errorf("load: %w", config.ErrInvalidConfig), want: cli.ExitUsageError},
		{name: "no inputs", err: fmt.Errorf("run: %w", runner.ErrNoInputs), want: cli.ExitUsageError},
		{name: "missing path", err: fmt.Errorf("stat: %w", fs.ErrNotExist), want: cli.ExitUsageError},
		{name: "anything else", err: errors.New("disk on fire"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cli.ExitCodeForError(tt.err)
			if got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestCatRejectsWriteWithOutput(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"cat", "--write", "--output", "out.fasta"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected --write with --output to fail")
	}

	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestHeadRejectsNegativeCount(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"head", "-n", "-5"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected negative count to fail")
	}

	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"stat", "--definitely-not-a-flag"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected unknown flag to fail")
	}

	if cli.ExitCodeForError(err) != cli.ExitUsageError {
		t.Errorf("expected exit code %d for unknown flag, got %d",
			cli.ExitUsageError, cli.ExitCodeForError(err))
	}
}
