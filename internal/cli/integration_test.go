package cli_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofasta/internal/cli"
	"github.com/yaklabco/gofasta/pkg/fsutil"
)

// testInput is a small FASTA file with one header and two code lines.
const testInput = ">Example header\nACGT\nACGT\n"

// testCanonical is the canonical serialization of testInput: paragraph
// break, header line, then the codes reflowed onto one line.
const testCanonical = "\n\n>Example header\nACGTACGT"

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestIntegration_CatFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "example.fasta")
	require.NoError(t, os.WriteFile(path, []byte(testInput), 0o644))

	stdout, _, err := execute(t, nil, "cat", "--quiet", path)
	require.NoError(t, err)

	assert.Equal(t, testCanonical, stdout)
}

func TestIntegration_CatStdinPipeline(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, strings.NewReader(testInput), "cat", "--quiet")
	require.NoError(t, err)

	assert.Equal(t, testCanonical, stdout)
}

func TestIntegration_CatNormalizesMessyInput(t *testing.T) {
	t.Parallel()

	// CRLF line endings, blank lines, and padding whitespace must not
	// change the code stream.
	messy := ">Example header\r\n\r\n  ACGT  \r\n\r\nACGT\r\n"

	stdout, _, err := execute(t, strings.NewReader(messy), "cat", "--quiet")
	require.NoError(t, err)

	assert.Equal(t, testCanonical, stdout)
}

func TestIntegration_CatWrapsAtEightyColumns(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("A", 81) + "\n"

	stdout, _, err := execute(t, strings.NewReader(input), "cat", "--quiet")
	require.NoError(t, err)

	want := strings.Repeat("A", 80) + "\n" + "A"
	assert.Equal(t, want, stdout)
}

func TestIntegration_CatConcatenatesInputsInOrder(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "first.fasta")
	second := filepath.Join(tmpDir, "second.fasta")
	require.NoError(t, os.WriteFile(first, []byte(">one\nAC\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(">two\nGT\n"), 0o644))

	stdout, _, err := execute(t, nil, "cat", "--quiet", second, first)
	require.NoError(t, err)

	// Argument order wins over lexical order.
	assert.Equal(t, "\n\n>two\nGT\n\n>one\nAC", stdout)
}

func TestIntegration_CatGzipOutput(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "example.fasta")
	dst := filepath.Join(tmpDir, "canonical.fasta.gz")
	require.NoError(t, os.WriteFile(src, []byte(testInput), 0o644))

	_, _, err := execute(t, nil, "cat", "--quiet", "-o", dst, src)
	require.NoError(t, err)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	content, err := io.ReadAll(gz)
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	assert.Equal(t, testCanonical, string(content))
}

func TestIntegration_CatGzipInputSniffedOnStdin(t *testing.T) {
	t.Parallel()

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write([]byte(testInput))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	stdout, _, err := execute(t, &compressed, "cat", "--quiet")
	require.NoError(t, err)

	assert.Equal(t, testCanonical, stdout)
}

func TestIntegration_CatRewriteInPlace(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "example.fasta")
	require.NoError(t, os.WriteFile(path, []byte(testInput), 0o644))

	_, _, err := execute(t, nil, "cat", "--quiet", "-w", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testCanonical, string(content))

	// A second pass sees canonical input and leaves the file alone.
	before, err := os.Stat(path)
	require.NoError(t, err)

	_, _, err = execute(t, nil, "cat", "--quiet", "-w", path)
	require.NoError(t, err)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime(),
		"canonical file should not be rewritten")
}

func TestIntegration_CatRewriteWithBackup(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "example.fasta")
	require.NoError(t, os.WriteFile(path, []byte(testInput), 0o644))

	_, _, err := execute(t, nil, "cat", "--quiet", "-w", "--backup", path)
	require.NoError(t, err)

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, testInput, string(backup), "backup should hold the original bytes")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testCanonical, string(content))
}

func TestIntegration_CatDirectoryDiscovery(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tmpDir, "a.fasta"), []byte(">a\nAC\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(tmpDir, "b.fa"), []byte(">b\nGT\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(tmpDir, "notes.txt"), []byte("not fasta\n"), 0o644))

	stdout, _, err := execute(t, nil, "cat", "--quiet", tmpDir)
	require.NoError(t, err)

	assert.Contains(t, stdout, ">a\nAC")
	assert.Contains(t, stdout, ">b\nGT")
	assert.NotContains(t, stdout, "not fasta")
}

func TestIntegration_CatCharsetDecoding(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "latin1.fasta")
	// "Pénélope" in ISO-8859-1: é is the single byte 0xE9.
	latin1 := []byte{'>', 'P', 0xE9, 'n', 0xE9, 'l', 'o', 'p', 'e', '\n', 'A', 'C', 'G', 'T', '\n'}
	require.NoError(t, os.WriteFile(path, latin1, 0o644))

	stdout, _, err := execute(t, nil, "cat", "--quiet", "--charset", "ISO-8859-1", path)
	require.NoError(t, err)

	assert.Equal(t, "\n\n>Pénélope\nACGT", stdout)
}

func TestIntegration_HeadStopsAtCount(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, strings.NewReader(testInput), "head", "--quiet", "-n", "4")
	require.NoError(t, err)

	assert.Equal(t, "\n\n>Example header\nACGT", stdout)
}

func TestIntegration_StatJSON(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "example.fasta")
	require.NoError(t, os.WriteFile(path, []byte(testInput), 0o644))

	stdout, _, err := execute(t, nil, "stat", "--quiet", "--format", "json", path)
	require.NoError(t, err)

	for _, want := range []string{
		`"version": "1.0.0"`,
		`"filesScanned": 1`,
		`"filesFailed": 0`,
		`"totalCodes": 8`,
		`"Example header"`,
	} {
		assert.Contains(t, stdout, want)
	}
}

func TestIntegration_ExplicitConfigFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Only .seq is configured, so the .fasta file must be skipped
	// during directory discovery.
	cfgFile := filepath.Join(tmpDir, "gofasta.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("extensions:\n  - .seq\njobs: 1\n"), 0o644))

	dataDir := filepath.Join(tmpDir, "data")
	require.NoError(t, os.Mkdir(dataDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dataDir, "kept.seq"), []byte(">kept\nAC\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dataDir, "skipped.fasta"), []byte(">skipped\nGT\n"), 0o644))

	stdout, _, err := execute(t, nil, "cat", "--quiet", "--config", cfgFile, dataDir)
	require.NoError(t, err)

	assert.Contains(t, stdout, ">kept")
	assert.NotContains(t, stdout, ">skipped")
}

func TestIntegration_MissingConfigIsUsageError(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, strings.NewReader(testInput),
		"cat", "--quiet", "--config", "/does/not/exist.yml")
	require.Error(t, err)

	assert.Equal(t, cli.ExitUsageError, cli.ExitCodeForError(err))
}

func TestIntegration_MissingInputIsUsageError(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	_, _, err := execute(t, nil, "cat", "--quiet", filepath.Join(tmpDir, "missing.fasta"))
	require.Error(t, err)

	assert.Equal(t, cli.ExitUsageError, cli.ExitCodeForError(err))
}

func TestIntegration_InitWritesStarterConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	_, _, err := execute(t, nil, "init")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(tmpDir, ".gofasta.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "extensions")

	// Refuses to clobber without --force.
	_, _, err = execute(t, nil, "init")
	require.Error(t, err)

	_, _, err = execute(t, nil, "init", "--force")
	require.NoError(t, err)
}
