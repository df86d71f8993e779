package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/thecheetosfingers/Childmanagement/internal/activity"
	"github.com/thecheetosfingers/Childmanagement/internal/auth"
)

type ActivitiesHandler struct {
	Gateway activity.Gateway
}

type createActivityReq struct {
	ChildID   string          `json:"child_id"`
	Type      string          `json:"type"`
	Caption   string          `json:"caption"`
	MediaURLs []string        `json:"media_urls"`
	Details   json.RawMessage `json:"details"`
}

// Create drives one composer draft through its whole lifecycle: select the
// kind, lay in the detail fields, attach resolved media, submit.
func (h *ActivitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	staffID, _ := auth.StaffIDFromContext(r.Context())

	var req createActivityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	kind := activity.Kind(strings.TrimSpace(req.Type))
	if !kind.Valid() {
		http.Error(w, "invalid activity type", http.StatusBadRequest)
		return
	}

	comp, err := activity.NewComposer(strings.TrimSpace(req.ChildID))
	if err != nil {
		http.Error(w, "child_id required", http.StatusBadRequest)
		return
	}
	if err := comp.SelectKind(kind); err != nil {
		http.Error(w, "invalid activity type", http.StatusBadRequest)
		return
	}

	if len(req.Details) > 0 {
		d, err := activity.DecodeDetail(kind, req.Details)
		if err != nil {
			http.Error(w, "bad details payload", http.StatusBadRequest)
			return
		}
		if err := comp.SetDetail(d); err != nil {
			http.Error(w, "bad details payload", http.StatusBadRequest)
			return
		}
	}
	if kind.HasMedia() {
		if req.Caption != "" {
			_ = comp.SetCaption(req.Caption)
		}
		if len(req.MediaURLs) > 0 {
			_ = comp.AppendMedia(req.MediaURLs...)
		}
	}

	rec, err := comp.Submit(r.Context(), h.Gateway, staffID)
	if err != nil {
		if errors.Is(err, activity.ErrNotConfigured) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "backend not configured"})
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *ActivitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	f := activity.Filter{
		ChildID: strings.TrimSpace(r.URL.Query().Get("child_id")),
		Search:  strings.TrimSpace(r.URL.Query().Get("q")),
	}
	if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" && t != "all" {
		kind := activity.Kind(t)
		if !kind.Valid() {
			http.Error(w, "invalid activity type", http.StatusBadRequest)
			return
		}
		f.Kind = kind
	}

	rows, err := h.Gateway.ListActivities(r.Context(), f)
	if err != nil {
		if errors.Is(err, activity.ErrNotConfigured) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "backend not configured"})
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []activity.Record{}
	}
	writeJSON(w, http.StatusOK, rows)
}
