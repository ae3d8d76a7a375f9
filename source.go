// Package textline provides memory-bounded iteration over the lines of a text source.
//
// Memory use is proportional to the length of the longest line,
// not to the total size of the source.
// A single line may grow up to 64 MiB.
// The produced iterators are backed by open streams,
// and they are tracked by their parent Iterable,
// so closing the Iterable closes every iterator that is still open.
package textline

import (
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Source is a re-openable provider of text content,
// independent of any particular open stream.
// Each Open call must yield a fresh, independently positioned stream;
// opening one stream must not consume or invalidate another.
type Source interface {
	Open() (io.ReadCloser, error)
}

// TextSource adapts an in-memory text as a Source.
// The text is wrapped, not copied.
func TextSource(text string) Source {
	return textSource(text)
}

type textSource string

func (src textSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(src))), nil
}

// FileSource adapts a file path and a character encoding as a Source.
// The binding is lazy: the file is only touched when Open is called,
// so a missing or unreadable file surfaces as an Open-time error.
// A nil encoding means the file content is used as is (UTF-8 / raw bytes).
func FileSource(path string, enc encoding.Encoding) Source {
	return fileSource{Path: path, Encoding: enc}
}

type fileSource struct {
	Path     string
	Encoding encoding.Encoding
}

func (src fileSource) Open() (io.ReadCloser, error) {
	file, err := os.Open(src.Path)
	if err != nil {
		return nil, err
	}
	if src.Encoding == nil {
		return file, nil
	}
	return &decodedStream{
		Reader: transform.NewReader(file, src.Encoding.NewDecoder()),
		Closer: file,
	}, nil
}

// decodedStream reads through a character decoder while closing the underlying file.
type decodedStream struct {
	Reader io.Reader
	Closer io.Closer
}

func (s *decodedStream) Read(p []byte) (int, error) { return s.Reader.Read(p) }

func (s *decodedStream) Close() error { return s.Closer.Close() }
