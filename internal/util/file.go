package util

import (
	"context"
	"os"
	"strings"
)

type readResult struct {
	data []byte
	err  error
}

// ReadFileContext reads the whole file at path. It returns ctx.Err() as soon as ctx is done,
// a wedged read keeps its goroutine until the kernel returns.
func ReadFileContext(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := make(chan readResult, 1)
	go func() {
		data, err := os.ReadFile(path)
		ch <- readResult{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.data, r.err
	}
}

// ReadLineFromFile reads a single line text file, stripping the trailing line ending.
func ReadLineFromFile(ctx context.Context, path string) (string, error) {
	data, err := ReadFileContext(ctx, path)
	if err != nil {
		return "", err
	}
	return TrimLineEnding(string(data)), nil
}

// TrimLineEnding removes any trailing '\n' and '\r' characters
func TrimLineEnding(text string) string {
	return strings.TrimRight(text, "\r\n")
}
