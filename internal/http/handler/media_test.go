package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thecheetosfingers/Childmanagement/internal/media"
)

type stubStore struct{}

func (stubStore) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	_, _ = io.Copy(io.Discard, r)
	return nil
}

func (stubStore) PublicURL(key string) string { return "https://cdn.example.com/" + key }

func TestMediaUploadBatch(t *testing.T) {
	h := &MediaHandler{Resolver: &media.Resolver{Store: stubStore{}}}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("child_id", "child-1"))
	for _, name := range []string{"a.jpg", "b.jpg"} {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/activities/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.Upload(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res media.UploadResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.URLs, 2)
	require.Equal(t, 0, res.FailedCount)
}

func TestMediaUploadRequiresChildAndFiles(t *testing.T) {
	h := &MediaHandler{Resolver: &media.Resolver{Store: stubStore{}}}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("files", "a.jpg")
	require.NoError(t, err)
	_, _ = part.Write([]byte("bytes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/activities/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.Upload(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code) // no child_id

	var buf2 bytes.Buffer
	mw2 := multipart.NewWriter(&buf2)
	require.NoError(t, mw2.WriteField("child_id", "child-1"))
	require.NoError(t, mw2.Close())

	req = httptest.NewRequest(http.MethodPost, "/activities/media", &buf2)
	req.Header.Set("Content-Type", mw2.FormDataContentType())
	w = httptest.NewRecorder()
	h.Upload(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code) // no files
}
