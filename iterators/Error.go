package iterators

// Error returns an iterator that yields no value and reports the given error.
// This can be used when an external resource encounters
// an unrecoverable failure during query construction.
func Error[T any](err error) Iterator[T] {
	return &errIter[T]{err: err}
}

type errIter[T any] struct {
	err error
}

func (i *errIter[T]) Close() error {
	return nil
}

func (i *errIter[T]) Next() bool {
	return false
}

func (i *errIter[T]) Err() error {
	return i.err
}

func (i *errIter[T]) Value() T {
	var v T
	return v
}
