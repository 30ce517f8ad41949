package encounter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

func TestHandler_CreateEncounter(t *testing.T) {
	h, e := newTestHandler()

	companyID := uuid.New()
	patientID := uuid.New()
	body := `{"company_id":"` + companyID.String() + `","patient_id":"` + patientID.String() + `","department":"Almacén"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/encounters", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateEncounter(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var enc Encounter
	json.Unmarshal(rec.Body.Bytes(), &enc)
	if enc.Department != "Almacén" {
		t.Errorf("expected Almacén, got %s", enc.Department)
	}
	if DecodeAntecedents(enc.AntecedentesJSON) == nil {
		t.Error("created encounter should carry a checklist blob")
	}
}

func TestHandler_CreateEncounter_BadRequest(t *testing.T) {
	h, e := newTestHandler()

	body := `{"department":"Almacén"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/encounters", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateEncounter(c)
	if err == nil {
		t.Error("expected error for missing company_id/patient_id")
	}
}

func TestHandler_GetEncounter(t *testing.T) {
	h, e := newTestHandler()

	enc := &Encounter{CompanyID: uuid.New(), PatientID: uuid.New()}
	h.svc.CreateEncounter(context.Background(), enc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(enc.ID.String())

	err := h.GetEncounter(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetEncounter_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.GetEncounter(c)
	if err == nil {
		t.Error("expected error for not found")
	}
}

func TestHandler_DeleteEncounter(t *testing.T) {
	h, e := newTestHandler()

	enc := &Encounter{CompanyID: uuid.New(), PatientID: uuid.New()}
	h.svc.CreateEncounter(context.Background(), enc)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(enc.ID.String())

	err := h.DeleteEncounter(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_CompleteEncounter(t *testing.T) {
	h, e := newTestHandler()

	enc := &Encounter{CompanyID: uuid.New(), PatientID: uuid.New()}
	h.svc.CreateEncounter(context.Background(), enc)

	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(enc.ID.String())

	err := h.CompleteEncounter(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	got, _ := h.svc.GetEncounter(context.Background(), enc.ID)
	if got.CompletedAt == nil {
		t.Error("expected completed_at to be set")
	}
}

func TestHandler_ListEncounters(t *testing.T) {
	h, e := newTestHandler()

	h.svc.CreateEncounter(context.Background(), &Encounter{CompanyID: uuid.New(), PatientID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/encounters", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListEncounters(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_ListEncounters_ByCompany(t *testing.T) {
	h, e := newTestHandler()

	companyID := uuid.New()
	h.svc.CreateEncounter(context.Background(), &Encounter{CompanyID: companyID, PatientID: uuid.New()})
	h.svc.CreateEncounter(context.Background(), &Encounter{CompanyID: uuid.New(), PatientID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/encounters?company_id="+companyID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListEncounters(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Total int `json:"total"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 1 {
		t.Errorf("expected total 1, got %d", resp.Total)
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h, e := newTestHandler()
	api := e.Group("/api/v1")

	h.RegisterRoutes(api)

	routes := e.Routes()
	routePaths := make(map[string]bool)
	for _, r := range routes {
		routePaths[r.Method+":"+r.Path] = true
	}

	expected := []string{
		"POST:/api/v1/encounters",
		"GET:/api/v1/encounters",
		"GET:/api/v1/encounters/:id",
		"PUT:/api/v1/encounters/:id",
		"PATCH:/api/v1/encounters/:id/complete",
		"DELETE:/api/v1/encounters/:id",
	}
	for _, path := range expected {
		if !routePaths[path] {
			t.Errorf("missing expected route: %s", path)
		}
	}
}
