package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/airbusgeo/geoshift/interface/storage"
)

type fileSystemStrategy struct {
}

func NewFileSystemStrategy(ctx context.Context) (storage.Strategy, error) {
	return fileSystemStrategy{}, nil
}

func formatError(err error) error {
	var epath *os.PathError
	if errors.As(err, &epath) && os.IsNotExist(epath) {
		return fmt.Errorf("%w: %s", storage.ErrFileNotFound, epath.Path)
	}
	return err
}

func localPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

func (s fileSystemStrategy) Download(ctx context.Context, uri string) ([]byte, error) {
	f, err := os.Open(localPath(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", formatError(err))
	}

	defer f.Close()
	return io.ReadAll(f)
}

func (s fileSystemStrategy) Upload(ctx context.Context, uri string, data []byte) error {
	uri = localPath(uri)

	if _, err := os.Stat(filepath.Dir(uri)); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(uri), os.ModePerm); err != nil {
			return err
		}
	}

	f, err := os.Create(uri)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	defer f.Close()

	_, err = io.Copy(f, bytes.NewReader(data))
	return err
}

func (s fileSystemStrategy) Exist(ctx context.Context, uri string) (bool, error) {
	if _, err := os.Stat(localPath(uri)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s fileSystemStrategy) GetAttrs(ctx context.Context, uri string) (storage.Attrs, error) {
	f, err := os.Open(localPath(uri))
	if err != nil {
		return storage.Attrs{}, fmt.Errorf("failed to open file: %w", formatError(err))
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return storage.Attrs{}, err
	}

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	b, err := f.Read(buffer)
	if err != nil && err != io.EOF {
		return storage.Attrs{}, err
	}

	buffer = buffer[:b]

	// Always returns a valid content-type and "application/octet-stream"
	// if no others seemed to match.
	contentType := http.DetectContentType(buffer)
	return storage.Attrs{
		ContentType:  contentType,
		StorageClass: "filesystem",
		Size:         fi.Size(),
	}, nil
}

func (s fileSystemStrategy) OpenReaderAt(ctx context.Context, uri string) (storage.ReaderAtCloser, error) {
	f, err := os.Open(localPath(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", formatError(err))
	}
	return f, nil
}
