package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/thecheetosfingers/Childmanagement/internal/message"
)

type MessagesHandler struct {
	Svc *message.Service
}

func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	f := message.ListFilter{
		UnreadOnly: strings.TrimSpace(r.URL.Query().Get("unread")) == "true",
		Search:     strings.TrimSpace(r.URL.Query().Get("q")),
	}

	rows, err := h.Svc.List(r.Context(), f)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []message.Message{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *MessagesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, message.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type sendMessageReq struct {
	Sender  string `json:"sender"`
	Role    string `json:"role"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (h *MessagesHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.Sender = strings.TrimSpace(req.Sender)
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Sender == "" || req.Subject == "" {
		http.Error(w, "sender and subject required", http.StatusBadRequest)
		return
	}
	role := message.Role(strings.TrimSpace(strings.ToLower(req.Role)))
	if role != message.RoleStaff && role != message.RoleParent {
		role = message.RoleStaff
	}

	m, err := h.Svc.Send(r.Context(), req.Sender, role, req.Subject, req.Body)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MessagesHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.UnreadCount(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unread": n})
}
