package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/thecheetosfingers/Childmanagement/internal/child"
)

func newChildrenRouter(t *testing.T) http.Handler {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&child.Child{}, &child.Guardian{}, &child.Medication{}))

	h := &ChildrenHandler{Svc: &child.Service{DB: gdb}}
	r := chi.NewRouter()
	r.Post("/children", h.Create)
	r.Get("/children/{id}", h.Get)
	r.Post("/children/{id}/guardians", h.AddGuardian)
	r.Post("/children/{id}/medications", h.AddMedication)
	r.Post("/children/{id}/medications/{medicationID}/administered", h.MarkAdministered)
	return r
}

func post(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createChildViaAPI(t *testing.T, r http.Handler) string {
	t.Helper()
	w := post(t, r, "/children", `{"first_name":"Mia","last_name":"Santos","date_of_birth":"2022-03-14","classroom":"toddlers"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var c child.Child
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	return c.ID
}

func TestAddGuardianRoute(t *testing.T) {
	r := newChildrenRouter(t)
	id := createChildViaAPI(t, r)

	w := post(t, r, "/children/"+id+"/guardians",
		`{"first_name":"Rosa","last_name":"Santos","relationship":"mother","phone":"555-0101","email":"ROSA@Example.com","is_emergency_contact":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var g child.Guardian
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	require.Equal(t, id, g.ChildID)
	require.Equal(t, "rosa@example.com", g.Email)

	// shows up on the profile
	req := httptest.NewRequest(http.MethodGet, "/children/"+id, nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)
	require.Equal(t, http.StatusOK, got.Code)
	var c child.Child
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &c))
	require.Len(t, c.Guardians, 1)
}

func TestAddGuardianRequiresName(t *testing.T) {
	r := newChildrenRouter(t)
	id := createChildViaAPI(t, r)

	w := post(t, r, "/children/"+id+"/guardians", `{"first_name":"  ","last_name":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkAdministeredRoute(t *testing.T) {
	r := newChildrenRouter(t)
	id := createChildViaAPI(t, r)

	w := post(t, r, "/children/"+id+"/medications", `{"name":"Amoxicillin","dosage":"5ml"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var med child.Medication
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &med))

	w = post(t, r, "/children/"+id+"/medications/"+med.ID+"/administered", "")
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/children/"+id, nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)
	var c child.Child
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &c))
	require.Len(t, c.Medications, 1)
	require.NotNil(t, c.Medications[0].LastAdministered)
}

func TestMarkAdministeredUnknown(t *testing.T) {
	r := newChildrenRouter(t)
	id := createChildViaAPI(t, r)

	w := post(t, r, "/children/"+id+"/medications/nope/administered", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
