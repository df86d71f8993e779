package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thecheetosfingers/Childmanagement/internal/attendance"
	"github.com/thecheetosfingers/Childmanagement/internal/auth"
)

type AttendanceHandler struct {
	Svc *attendance.Service
}

func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	staffID, _ := auth.StaffIDFromContext(r.Context())
	childID := chi.URLParam(r, "childID")

	rec, err := h.Svc.CheckIn(r.Context(), childID, staffID)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			http.Error(w, "already checked in", http.StatusConflict)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	staffID, _ := auth.StaffIDFromContext(r.Context())
	childID := chi.URLParam(r, "childID")

	rec, err := h.Svc.CheckOut(r.Context(), childID, staffID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotCheckedIn) {
			http.Error(w, "not checked in", http.StatusConflict)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	classroom := strings.TrimSpace(r.URL.Query().Get("classroom"))

	rows, err := h.Svc.ListForDay(r.Context(), day, classroom)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []attendance.Record{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *AttendanceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}
	classroom := strings.TrimSpace(r.URL.Query().Get("classroom"))

	stats, err := h.Svc.StatsForDay(r.Context(), day, classroom)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func dayParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return time.Now().UTC(), true
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		http.Error(w, "invalid date (YYYY-MM-DD)", http.StatusBadRequest)
		return time.Time{}, false
	}
	return day, true
}
