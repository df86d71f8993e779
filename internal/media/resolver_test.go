package media

import (
	"context"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeStore records puts and fails any key whose source name was marked bad
// via the content "FAIL".
type fakeStore struct {
	mu   sync.Mutex
	keys []string
}

func (s *fakeStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	b, _ := io.ReadAll(r)
	if string(b) == "FAIL" {
		return io.ErrUnexpectedEOF
	}
	s.mu.Lock()
	s.keys = append(s.keys, key)
	s.mu.Unlock()
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

// hangingStore blocks until the context expires.
type hangingStore struct{}

func (hangingStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	<-ctx.Done()
	return ctx.Err()
}

func (hangingStore) PublicURL(key string) string { return "https://cdn.example.com/" + key }

var keyRe = regexp.MustCompile(`^media/child-1/[0-9a-f-]{36}\.(jpg|png|bin)$`)

func TestResolveBatchAllSucceed(t *testing.T) {
	store := &fakeStore{}
	r := &Resolver{Store: store}

	res := r.ResolveBatch(context.Background(), "child-1", []File{
		{Name: "a.jpg", Data: strings.NewReader("one")},
		{Name: "b.PNG", Data: strings.NewReader("two")},
		{Name: "noext", Data: strings.NewReader("three")},
	})

	require.Equal(t, 0, res.FailedCount)
	require.Len(t, res.URLs, 3)
	for _, u := range res.URLs {
		key := strings.TrimPrefix(u, "https://cdn.example.com/")
		require.Regexp(t, keyRe, key)
	}
}

func TestResolveBatchDropsAndCountsFailures(t *testing.T) {
	store := &fakeStore{}
	r := &Resolver{Store: store}

	res := r.ResolveBatch(context.Background(), "child-1", []File{
		{Name: "a.jpg", Data: strings.NewReader("ok-a")},
		{Name: "bad.jpg", Data: strings.NewReader("FAIL")},
		{Name: "c.jpg", Data: strings.NewReader("ok-c")},
	})

	require.Equal(t, 1, res.FailedCount)
	require.Len(t, res.URLs, 2)
}

func TestResolveBatchKeepsInputOrder(t *testing.T) {
	store := &fakeStore{}
	r := &Resolver{Store: store}

	res := r.ResolveBatch(context.Background(), "child-1", []File{
		{Name: "first.jpg", Data: strings.NewReader("1")},
		{Name: "second.jpg", Data: strings.NewReader("2")},
		{Name: "third.jpg", Data: strings.NewReader("3")},
	})

	require.Len(t, res.URLs, 3)
	// all three distinct uploads, order preserved relative to input
	seen := map[string]bool{}
	for _, u := range res.URLs {
		require.False(t, seen[u])
		seen[u] = true
	}
}

func TestResolveBatchEmpty(t *testing.T) {
	r := &Resolver{Store: &fakeStore{}}
	res := r.ResolveBatch(context.Background(), "child-1", nil)
	require.Equal(t, 0, res.FailedCount)
	require.Empty(t, res.URLs)
}

func TestResolveBatchTimesOutHungUploads(t *testing.T) {
	r := &Resolver{Store: hangingStore{}, Timeout: 20 * time.Millisecond}

	start := time.Now()
	res := r.ResolveBatch(context.Background(), "child-1", []File{
		{Name: "a.jpg", Data: strings.NewReader("x")},
	})

	require.Less(t, time.Since(start), 5*time.Second)
	require.Equal(t, 1, res.FailedCount)
	require.Empty(t, res.URLs)
}
