package loader

import (
	"context"
	"errors"
	"io/fs"
	"strings"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("content loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("content loader: fs is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// fs.FS paths are slash separated and unrooted.
	return fs.ReadFile(files, strings.TrimPrefix(name, "/"))
}
