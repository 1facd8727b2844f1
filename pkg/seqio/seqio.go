// Package seqio opens FASTA sources and sinks for gofasta.
// It layers transparent gzip compression, charset decoding, and
// stdin/stdout selection over plain files, so the streaming core in
// pkg/fasta only ever sees clean UTF-8 readers and writers.
package seqio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdStream is the path that selects standard input or output.
const StdStream = "-"

// gzipSuffix on a path selects compression, matching the conventional
// double extension (sample.fasta.gz).
const gzipSuffix = ".gz"

// IsGzipPath reports whether path names a gzip-compressed file.
func IsGzipPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), gzipSuffix)
}

// Open opens path for reading. StdStream selects standard input with
// gzip sniffing; a .gz suffix selects gzip decompression. The returned
// ReadCloser closes the whole chain, but never standard input itself.
func Open(path string) (io.ReadCloser, error) {
	if path == StdStream {
		r, err := NewReader(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("open stdin: %w", err)
		}
		return io.NopCloser(r), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if !IsGzipPath(path) {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &chainReadCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
}

// NewReader wraps r, transparently decompressing gzip streams. The
// format is detected from the two magic bytes, so callers can feed
// pipes and sockets without knowing how the data was produced.
func NewReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err != nil || len(magic) < 2 || magic[0] != 0x1f || magic[1] != 0x8b {
		// Too short or not gzip. Read errors surface on the first read.
		return br, nil
	}

	gz, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("gzip header: %w", err)
	}
	return gz, nil
}

// Create opens path for writing, creating missing parent directories.
// StdStream selects standard output; a .gz suffix selects gzip
// compression. Close flushes the compressor before the file, but never
// closes standard output itself.
func Create(path string) (io.WriteCloser, error) {
	if path == StdStream {
		return nopWriteCloser{os.Stdout}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	if !IsGzipPath(path) {
		return f, nil
	}
	gz := gzip.NewWriter(f)
	return &chainWriteCloser{Writer: gz, closers: []io.Closer{gz, f}}, nil
}

// chainReadCloser reads from the head of a decompression chain and
// closes every layer in order.
type chainReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *chainReadCloser) Close() error {
	return closeAll(c.closers)
}

// chainWriteCloser writes to the head of a compression chain and
// closes every layer in order, so the compressor flushes before the
// file underneath it goes away.
type chainWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (c *chainWriteCloser) Close() error {
	return closeAll(c.closers)
}

// closeAll closes every layer even after a failure and reports the
// first error.
func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
