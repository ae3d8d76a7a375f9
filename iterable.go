package textline

import (
	"sync"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/text/encoding"

	"github.com/adamluzsi/textline/pkg/errorkit"
)

const ErrLeakedIterator errorkit.Error = "textline: iterator still registered after closing all"

// New returns an Iterable over the lines of the given Source.
// Construction is pure setup: the source is not touched
// and I/O failures only surface once iteration begins.
func New(src Source) *Iterable {
	return &Iterable{
		source:        src,
		awaitingClose: make(map[string]*LineIterator),
	}
}

// NewFromFile returns an Iterable over the lines of the file at the given path,
// decoded with the given character encoding (nil for raw UTF-8).
// A missing file is not an error here, only at iteration time.
func NewFromFile(path string, enc encoding.Encoding) *Iterable {
	return New(FileSource(path, enc))
}

// NewFromText returns an Iterable over the lines of the in-memory text.
func NewFromText(text string) *Iterable {
	return New(TextSource(text))
}

// Iterable represents all lines of a character source.
// It hands out any number of independent LineIterator values
// and keeps track of the ones that are still open,
// so a single Close call can release all of them.
type Iterable struct {
	source Source

	mutex sync.Mutex
	// awaitingClose holds the iterators created by this Iterable
	// that were not closed yet, keyed by their registration id.
	awaitingClose map[string]*LineIterator
}

// Iterate opens a fresh stream over the source
// and returns a primed iterator over its lines.
// Every call yields an independent iterator with its own stream position,
// so multiple passes over the same source never interfere.
func (i *Iterable) Iterate() (*LineIterator, error) {
	stream, err := i.source.Open()
	if err != nil {
		return nil, err
	}
	li := &LineIterator{
		parent:  i,
		id:      uuid.NewV4().String(),
		stream:  stream,
		scanner: newLineScanner(stream),
	}
	if err := li.prime(); err != nil {
		// the stream is already released and the iterator was never registered
		return nil, err
	}
	i.register(li)
	if li.peek == nil {
		// empty source: the iterator starts out exhausted, release it right away;
		// a close failure surfaces through Err, same as the end-of-input self-close
		li.lastErr = li.Close()
		return li, nil
	}
	return li, nil
}

// Close closes every iterator created by this Iterable that is still open.
// Each child is attempted even when an earlier one fails to close cleanly;
// the collected failures are reported together once all attempts finished.
// Afterwards the bookkeeping is guaranteed to be empty.
func (i *Iterable) Close() error {
	var errs []error
	// each child close removes itself from the live set as a side effect,
	// so the loop must run over a point-in-time snapshot
	for _, li := range i.snapshot() {
		if err := li.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	i.mutex.Lock()
	leaked := len(i.awaitingClose)
	i.mutex.Unlock()
	if leaked != 0 {
		errs = append(errs, ErrLeakedIterator)
	}
	return errorkit.Merge(errs...)
}

func (i *Iterable) register(li *LineIterator) {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	i.awaitingClose[li.id] = li
}

// claimClose flips the iterator into closed state
// and removes it from the live set in one critical section.
// It reports whether the caller won the close,
// which makes LineIterator.Close idempotent
// even when the parent and the child race on it.
func (i *Iterable) claimClose(li *LineIterator) bool {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	if li.closed {
		return false
	}
	li.closed = true
	delete(i.awaitingClose, li.id)
	return true
}

func (i *Iterable) snapshot() []*LineIterator {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	lis := make([]*LineIterator, 0, len(i.awaitingClose))
	for _, li := range i.awaitingClose {
		lis = append(lis, li)
	}
	return lis
}
