package textline

import (
	"bufio"
	"io"

	"github.com/adamluzsi/textline/iterators"
	"github.com/adamluzsi/textline/pkg/errorkit"
)

const ErrRemoveNotSupported errorkit.Error = "textline: removing lines through iteration is not supported"

var _ iterators.Iterator[string] = (*LineIterator)(nil)

// LineIterator is a resource backed, forward-only iterator
// over the lines of a single open character stream.
// It keeps a one line lookahead,
// so end of input is known without an extra read on the consumer side.
// The iterator closes itself the moment its stream reports end of input;
// partially consumed instances must be closed explicitly,
// or transitively through their parent Iterable's Close.
// A single LineIterator is not safe for concurrent use.
type LineIterator struct {
	parent *Iterable
	id     string // registration key in the parent's live set

	stream  io.ReadCloser
	scanner *bufio.Scanner

	peek    *string // nil iff the iterator is exhausted or closed
	value   string
	lastErr error
	closed  bool // guarded by the parent's mutex
}

// maxLineSize caps how far a single line may grow.
// Memory use scales with the longest line, not with the source,
// so the cap sits well above bufio's default token limit.
const maxLineSize = 64 * 1024 * 1024

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	s.Split(scanLines)
	return s
}

// prime reads the first line into the lookahead buffer.
// On a read failure the stream is released quietly
// and the failure is returned,
// leaving nothing behind for the parent to track.
func (li *LineIterator) prime() error {
	// a failing read can still leave salvaged buffer content behind as a token;
	// data produced by a failed read is not a line
	if li.scanner.Scan() && li.scanner.Err() == nil {
		line := li.scanner.Text()
		li.peek = &line
		return nil
	}
	if err := li.scanner.Err(); err != nil {
		closeQuietly(li.stream)
		return err
	}
	return nil
}

// Next advances the iterator to the next line.
// It reports false once the iterator is exhausted or closed,
// in which case Err tells whether a read failure caused the exhaustion.
func (li *LineIterator) Next() bool {
	if li.peek == nil {
		return false
	}
	li.value = *li.peek
	li.readAhead()
	return true
}

// readAhead refills the lookahead buffer from the stream.
// A read failure closes the iterator and is recorded for Err,
// while the already buffered line is still delivered by the Next call in flight,
// so the failure only becomes visible one call later.
func (li *LineIterator) readAhead() {
	// Scan reports true even when it only salvaged buffer content
	// from a failed read; such data is not a line
	if li.scanner.Scan() && li.scanner.Err() == nil {
		line := li.scanner.Text()
		li.peek = &line
		return
	}
	li.peek = nil
	readErr := li.scanner.Err()
	closeErr := li.Close()
	if readErr != nil {
		// the close failure, if any, is secondary to the read failure
		li.lastErr = readErr
		return
	}
	li.lastErr = closeErr
}

// Value returns the current line, without its line terminator.
func (li *LineIterator) Value() string { return li.value }

// Err returns the read failure that exhausted the iterator, if there was one.
func (li *LineIterator) Err() error { return li.lastErr }

// Close releases the iterator's stream
// and removes the iterator from its parent's bookkeeping.
// It is idempotent: closing an already closed iterator is a no-op.
// Deregistration and the lookahead clear happen
// even when closing the stream fails,
// and that failure is the returned one.
func (li *LineIterator) Close() error {
	if !li.parent.claimClose(li) {
		return nil
	}
	li.peek = nil
	return li.stream.Close()
}

// Remove is the mutation half of the classic iterator protocol.
// Text sources cannot be mutated through their line iterator,
// so it fails unconditionally with ErrRemoveNotSupported.
func (li *LineIterator) Remove() error { return ErrRemoveNotSupported }

func closeQuietly(c io.Closer) { _ = c.Close() }
