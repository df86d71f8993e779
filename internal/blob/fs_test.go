package blob

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFSPutAndServe(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFS(dir, "http://localhost:8080/media/")
	require.NoError(t, err)

	key := "media/child-1/token.jpg"
	err = store.Put(context.Background(), key, strings.NewReader("jpeg bytes"), "image/jpeg")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "child-1", "token.jpg"))
	require.NoError(t, err)
	require.Equal(t, "jpeg bytes", string(b))

	require.Equal(t, "http://localhost:8080/media/child-1/token.jpg", store.PublicURL(key))

	srv := httptest.NewServer(store.Handler())
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL + "/child-1/token.jpg")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)
}

func TestFSPublicURLDoesNotDoubleMediaSegment(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFS(dir, "http://localhost:8080/media")
	require.NoError(t, err)

	url := store.PublicURL("media/child-9/pic.png")
	require.Equal(t, "http://localhost:8080/media/child-9/pic.png", url)
	require.NotContains(t, url, "/media/media/")
}

func TestFSPutRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFS(dir, "http://localhost:8080/media")
	require.NoError(t, err)

	err = store.Put(context.Background(), "../escape.txt", strings.NewReader("x"), "")
	require.NoError(t, err)

	// the cleaned key lands inside the media dir, not beside it
	_, statErr := os.Stat(filepath.Join(dir, "escape.txt"))
	require.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt"))
	require.True(t, os.IsNotExist(statErr))
}
