package iterators

import "github.com/adamluzsi/textline/pkg/errorkit"

// Collect drains the iterator into a slice, then closes it.
// A close failure is reported only when the iteration itself succeeded.
func Collect[T any](i Iterator[T]) (vs []T, rErr error) {
	defer errorkit.Finish(&rErr, i.Close)
	vs = make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}
