package seqio

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset indicates a charset name the IANA index cannot
// resolve to a usable encoding.
var ErrUnknownCharset = errors.New("unknown charset")

// Charset resolves an IANA charset name, such as ISO-8859-1 or
// windows-1252. An empty name resolves to nil, meaning UTF-8
// passthrough.
func Charset(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownCharset, name, err)
	}
	if enc == nil {
		// The index knows the name but carries no implementation.
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, name)
	}
	return enc, nil
}

// DecodeReader wraps r so text in the named charset arrives as UTF-8.
// An empty name returns r unchanged.
func DecodeReader(r io.Reader, charset string) (io.Reader, error) {
	enc, err := Charset(charset)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// OpenCharset opens path like Open and decodes it from the named
// charset. The returned closer releases the underlying chain.
func OpenCharset(path, charset string) (io.ReadCloser, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	decoded, err := DecodeReader(rc, charset)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	if decoded == rc {
		return rc, nil
	}
	return &chainReadCloser{Reader: decoded, closers: []io.Closer{rc}}, nil
}
