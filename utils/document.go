package utils

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"
)

type Book struct {
	Path string
	Text string
	ID   int
}

// LoadBook reads the whole book at path. Paths ending in .gz are
// decompressed on the fly.
func LoadBook(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// StreamBooks loads each path in order and sends it on the returned channel.
// Loading stops at the first error or when ctx is cancelled.
func StreamBooks(ctx context.Context, paths []string) (<-chan Book, <-chan error) {
	out := make(chan Book, len(paths))
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		for id, path := range paths {
			if ctx.Err() != nil {
				return
			}
			text, err := LoadBook(path)
			if err != nil {
				errCh <- err
				return
			}

			select {
			case out <- Book{Path: path, Text: text, ID: id}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, errCh
}
