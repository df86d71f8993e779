package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thecheetosfingers/Childmanagement/internal/child"
	"github.com/thecheetosfingers/Childmanagement/internal/jobs"
)

type ChildrenHandler struct {
	Svc  *child.Service
	Jobs *jobs.Repo
}

type createChildReq struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	DateOfBirth string   `json:"date_of_birth"` // YYYY-MM-DD
	Classroom   string   `json:"classroom"`
	Allergies   []string `json:"allergies"`
	PhotoURL    string   `json:"photo_url"`
}

func (h *ChildrenHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createChildReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		http.Error(w, "invalid date_of_birth (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	c, err := h.Svc.Create(r.Context(), child.CreateChildInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Classroom:   strings.TrimSpace(req.Classroom),
		Allergies:   req.Allergies,
		PhotoURL:    strings.TrimSpace(req.PhotoURL),
	})
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ChildrenHandler) List(w http.ResponseWriter, r *http.Request) {
	classroom := strings.TrimSpace(r.URL.Query().Get("classroom"))
	rows, err := h.Svc.List(r.Context(), classroom)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []child.Child{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *ChildrenHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, child.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type updateChildReq struct {
	FirstName *string  `json:"first_name"`
	LastName  *string  `json:"last_name"`
	Classroom *string  `json:"classroom"`
	Allergies []string `json:"allergies"`
	PhotoURL  *string  `json:"photo_url"`
}

func (h *ChildrenHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateChildReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	c, err := h.Svc.Update(r.Context(), id, child.UpdateChildInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Classroom: req.Classroom,
		Allergies: req.Allergies,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, child.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type addGuardianReq struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Relationship       string `json:"relationship"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	IsEmergencyContact bool   `json:"is_emergency_contact"`
}

func (h *ChildrenHandler) AddGuardian(w http.ResponseWriter, r *http.Request) {
	childID := chi.URLParam(r, "id")

	var req addGuardianReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	created, err := h.Svc.AddGuardian(r.Context(), child.Guardian{
		ChildID:            childID,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Relationship:       strings.TrimSpace(req.Relationship),
		Phone:              strings.TrimSpace(req.Phone),
		Email:              strings.TrimSpace(strings.ToLower(req.Email)),
		IsEmergencyContact: req.IsEmergencyContact,
	})
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type addMedicationReq struct {
	Name         string  `json:"name"`
	Dosage       string  `json:"dosage"`
	Frequency    string  `json:"frequency"`
	StartDate    *string `json:"start_date"` // RFC3339 optional
	EndDate      *string `json:"end_date"`
	Instructions string  `json:"instructions"`
}

func (h *ChildrenHandler) AddMedication(w http.ResponseWriter, r *http.Request) {
	childID := chi.URLParam(r, "id")

	var req addMedicationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	med := child.Medication{
		ChildID:      childID,
		Name:         req.Name,
		Dosage:       strings.TrimSpace(req.Dosage),
		Frequency:    strings.TrimSpace(req.Frequency),
		Instructions: strings.TrimSpace(req.Instructions),
	}
	for _, p := range []struct {
		raw *string
		dst **time.Time
	}{
		{req.StartDate, &med.StartDate},
		{req.EndDate, &med.EndDate},
	} {
		if p.raw == nil || strings.TrimSpace(*p.raw) == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, *p.raw)
		if err != nil {
			http.Error(w, "invalid date (RFC3339)", http.StatusBadRequest)
			return
		}
		*p.dst = &t
	}

	created, err := h.Svc.AddMedication(r.Context(), med)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	// Schedule the first reminder when the course has a start date.
	if created.StartDate != nil && h.Jobs != nil {
		if err := h.Jobs.EnqueueMedReminder(created.ID, *created.StartDate); err != nil {
			http.Error(w, "failed enqueue reminder", http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusCreated, created)
}

// MarkAdministered records that a dose of a standing medication was given.
func (h *ChildrenHandler) MarkAdministered(w http.ResponseWriter, r *http.Request) {
	medID := chi.URLParam(r, "medicationID")

	at := time.Now().UTC()
	if err := h.Svc.MarkAdministered(r.Context(), medID, at); err != nil {
		if errors.Is(err, child.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"administered_at": at})
}
