// Package storage keeps uploaded file contents, either on the local disk or in
// an S3 bucket
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotExist = errors.New("stored object does not exist")

type Storage interface {
	// Put stores r under key
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Open returns the content stored under key. Callers close the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// ReadAll returns the whole object stored under key
func ReadAll(ctx context.Context, s Storage, key string) ([]byte, error) {
	rc, err := s.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
