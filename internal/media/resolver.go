// Package media turns batches of uploaded files into durable public URLs
// for photo and video activity drafts.
package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thecheetosfingers/Childmanagement/internal/blob"
)

const defaultTimeout = 60 * time.Second

// File is one selection from an upload batch. Size and type are not
// constrained at this layer.
type File struct {
	Name        string
	ContentType string
	Data        io.Reader
}

// UploadResult reports the batch outcome. URLs holds only the files that
// succeeded, in input order; FailedCount makes the silent drops countable
// so callers can surface partial failure if they choose to.
type UploadResult struct {
	URLs        []string `json:"urls"`
	FailedCount int      `json:"failed_count"`
}

type Resolver struct {
	Store blob.Store
	Log   *zap.SugaredLogger

	// Timeout bounds each upload. A hung store call fails that file
	// instead of blocking the batch forever.
	Timeout time.Duration
}

// ResolveBatch uploads every file concurrently and joins before returning;
// the caller never observes a partially settled batch. Failed files are
// logged, counted and dropped from URLs.
func (r *Resolver) ResolveBatch(ctx context.Context, childID string, files []File) UploadResult {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	urls := make([]string, len(files))
	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int, f File) {
			defer wg.Done()

			key := objectKey(childID, f.Name)
			uctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			if err := r.Store.Put(uctx, key, f.Data, f.ContentType); err != nil {
				if r.Log != nil {
					r.Log.Warnw("media upload failed", "child_id", childID, "file", f.Name, "err", err)
				}
				return
			}
			urls[i] = r.Store.PublicURL(key)
		}(i, files[i])
	}
	wg.Wait()

	var res UploadResult
	for _, u := range urls {
		if u == "" {
			res.FailedCount++
			continue
		}
		res.URLs = append(res.URLs, u)
	}
	return res
}

// objectKey lays files out as media/{childID}/{token}.{ext} so one child's
// uploads stay grouped and names never collide.
func objectKey(childID, name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("media/%s/%s.%s", childID, uuid.NewString(), ext)
}
