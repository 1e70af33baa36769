package service

import (
	"context"
	"errors"
	"io"
)

// ErrFileNotFound is returned by FileStorage when a key has no blob.
var ErrFileNotFound = errors.New("file not found")

// FileStorage abstracts the blob store that keeps uploaded image files. The
// domain only needs to write bytes and obtain an opaque key it can persist on
// a PropertyImage record.
type FileStorage interface {
	// Save writes the content under a generated key derived from filename and
	// returns that key.
	Save(ctx context.Context, filename string, contentType string, content io.Reader) (key string, err error)

	// Open streams a stored blob back, together with its content type. The
	// caller owns closing the reader.
	Open(ctx context.Context, key string) (content io.ReadCloser, contentType string, err error)

	// URL resolves a stored key to a URL clients can fetch.
	URL(ctx context.Context, key string) (string, error)
}
