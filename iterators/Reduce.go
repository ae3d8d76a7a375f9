package iterators

import "github.com/adamluzsi/textline/pkg/errorkit"

// Reduce folds the iterator's values into a single result, then closes it.
func Reduce[R, T any](i Iterator[T], initial R, blk func(R, T) R) (result R, rErr error) {
	defer errorkit.Finish(&rErr, i.Close)
	result = initial
	for i.Next() {
		result = blk(result, i.Value())
	}
	return result, i.Err()
}
