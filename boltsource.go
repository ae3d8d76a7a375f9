package textline

import (
	"bytes"
	"io"

	"github.com/boltdb/bolt"

	"github.com/adamluzsi/textline/pkg/errorkit"
)

const (
	ErrBucketNotFound errorkit.Error = "textline: bolt bucket not found"
	ErrKeyNotFound    errorkit.Error = "textline: bolt key not found"
)

// BoltSource adapts a text blob stored in a BoltDB bucket as a Source.
// Each Open copies the value out of a read transaction,
// so the returned streams stay valid and independent of each other
// and of any later write to the same key.
func BoltSource(db *bolt.DB, bucket, key []byte) Source {
	return boltSource{DB: db, Bucket: bucket, Key: key}
}

type boltSource struct {
	DB     *bolt.DB
	Bucket []byte
	Key    []byte
}

func (src boltSource) Open() (io.ReadCloser, error) {
	var text []byte
	err := src.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(src.Bucket)
		if bucket == nil {
			return ErrBucketNotFound
		}
		value := bucket.Get(src.Key)
		if value == nil {
			return ErrKeyNotFound
		}
		// the value is only valid for the duration of the transaction
		text = append([]byte(nil), value...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(text)), nil
}
