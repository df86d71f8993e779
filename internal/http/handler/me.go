package handler

import (
	"net/http"

	"github.com/thecheetosfingers/Childmanagement/internal/auth"
)

type MeHandler struct{}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	sid, _ := auth.StaffIDFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"staff_id": sid})
}
