package fetch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileResolver reads file: URIs and bare paths from the local filesystem.
type FileResolver struct {
	// Root, when set, anchors relative paths.
	Root string
	// MaxSize caps the resource size; zero means DefaultMaxSize.
	MaxSize int64
}

func (f *FileResolver) Fetch(_ context.Context, uri string) ([]byte, error) {
	p := strings.TrimPrefix(uri, "file://")
	if f.Root != "" && !filepath.IsAbs(p) {
		p = filepath.Join(f.Root, p)
	}
	fh, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return readAll(fh, f.MaxSize)
}
