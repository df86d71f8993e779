package blob

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FS writes objects to a local directory. The router serves the directory
// read-only under the configured base URL, so the returned links work
// without auth just like the bucket-backed store.
type FS struct {
	dir     string
	baseURL string
}

func NewFS(dir, baseURL string) (*FS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &FS{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (f *FS) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	clean := filepath.Clean("/" + localKey(key))
	path := filepath.Join(f.dir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, r); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return err
	}
	return dst.Close()
}

func (f *FS) PublicURL(key string) string {
	return f.baseURL + "/" + localKey(key)
}

// localKey drops the shared object prefix: the base URL already mounts the
// directory there, so keeping it would double the path segment.
func localKey(key string) string {
	return strings.TrimPrefix(key, "media/")
}

// Handler serves the stored files; mount it under the media base path.
func (f *FS) Handler() http.Handler {
	return http.FileServer(http.Dir(f.dir))
}
