package iterators

// Slice returns an iterator that yields the elements of the given slice.
// There is no resource behind it, so Close is a no-op.
func Slice[T any](vs []T) Iterator[T] {
	return &sliceIter[T]{Slice: vs}
}

type sliceIter[T any] struct {
	Slice []T

	index int
	value T
}

func (i *sliceIter[T]) Close() error {
	return nil
}

func (i *sliceIter[T]) Err() error {
	return nil
}

func (i *sliceIter[T]) Next() bool {
	if len(i.Slice) <= i.index {
		return false
	}
	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *sliceIter[T]) Value() T {
	return i.value
}
