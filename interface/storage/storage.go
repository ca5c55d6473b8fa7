package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrFileNotFound = errors.New("file not found")
)

// ReaderAtCloser gives positional access to a file held open
type ReaderAtCloser interface {
	io.ReaderAt
	io.Closer
}

// Strategy fetches the grid files
type Strategy interface {
	Download(ctx context.Context, uri string) ([]byte, error)
	Upload(ctx context.Context, uri string, data []byte) error
	Exist(ctx context.Context, uri string) (bool, error)
	GetAttrs(ctx context.Context, uri string) (Attrs, error)
	// OpenReaderAt opens the file for random access. The caller must close it.
	OpenReaderAt(ctx context.Context, uri string) (ReaderAtCloser, error)
}

type Attrs struct {
	ContentType  string
	StorageClass string
	Size         int64
}
