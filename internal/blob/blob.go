// Package blob abstracts where uploaded media bytes live. Keys are
// slash-separated paths under a "media/" prefix and the returned URLs must
// be fetchable without authentication.
package blob

import (
	"context"
	"io"
)

type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	PublicURL(key string) string
}
