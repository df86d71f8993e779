package handler

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/thecheetosfingers/Childmanagement/internal/media"
)

const maxUploadMemory = 32 << 20

type MediaHandler struct {
	Resolver *media.Resolver
	Log      *zap.SugaredLogger
}

// Upload takes a multipart batch for one child and answers with the public
// URLs that made it plus a count of the ones that did not.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "bad multipart form", http.StatusBadRequest)
		return
	}
	childID := strings.TrimSpace(r.FormValue("child_id"))
	if childID == "" {
		http.Error(w, "child_id required", http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		http.Error(w, "no files", http.StatusBadRequest)
		return
	}

	files := make([]media.File, 0, len(headers))
	var closers []func() error
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			http.Error(w, "bad upload", http.StatusBadRequest)
			return
		}
		closers = append(closers, f.Close)
		files = append(files, media.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        f,
		})
	}
	defer func() {
		for _, c := range closers {
			_ = c()
		}
	}()

	res := h.Resolver.ResolveBatch(r.Context(), childID, files)
	if res.FailedCount > 0 && h.Log != nil {
		h.Log.Warnw("upload batch partially failed",
			"child_id", childID, "failed", res.FailedCount, "ok", len(res.URLs))
	}
	writeJSON(w, http.StatusOK, res)
}
