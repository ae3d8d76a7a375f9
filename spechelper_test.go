package textline_test

import (
	"errors"
	"io"
	"strings"

	"github.com/adamluzsi/textline"
)

// ReadCloser wraps a reader and makes the close state observable for the tests.
type ReadCloser struct {
	IsClosed bool
	CloseErr error
	io       io.Reader
}

func NewReadCloser(r io.Reader) *ReadCloser {
	return &ReadCloser{io: r}
}

func (rc *ReadCloser) Read(p []byte) (n int, err error) {
	if rc.IsClosed {
		return 0, errors.New(`read on closed stream`)
	}
	return rc.io.Read(p)
}

func (rc *ReadCloser) Close() error {
	if rc.IsClosed {
		return errors.New(`already closed`)
	}
	rc.IsClosed = true
	return rc.CloseErr
}

type BrokenReader struct{}

func (b *BrokenReader) Read(p []byte) (n int, err error) { return 0, io.ErrUnexpectedEOF }

// FlakyReader serves the wrapped content, then fails with Failure instead of io.EOF.
type FlakyReader struct {
	io      io.Reader
	Failure error
}

func NewFlakyReader(content string, failure error) *FlakyReader {
	return &FlakyReader{io: strings.NewReader(content), Failure: failure}
}

func (r *FlakyReader) Read(p []byte) (int, error) {
	n, err := r.io.Read(p)
	if errors.Is(err, io.EOF) {
		return n, r.Failure
	}
	return n, err
}

// SourceFunc lets a test supply a textline.Source as a plain function.
type SourceFunc func() (io.ReadCloser, error)

func (fn SourceFunc) Open() (io.ReadCloser, error) { return fn() }

var _ textline.Source = SourceFunc(nil)
