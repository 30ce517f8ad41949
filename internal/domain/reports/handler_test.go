package reports

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestContext(method, path string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_GetSummary(t *testing.T) {
	fx := newFixture(t)
	h := NewHandler(fx.svc)

	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(fx.company.ID.String())

	if err := h.GetSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":1`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandler_GetSummary_BadID(t *testing.T) {
	fx := newFixture(t)
	h := NewHandler(fx.svc)

	c, _ := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetSummary(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_GenerateReport(t *testing.T) {
	fx := newFixture(t)
	h := NewHandler(fx.svc)

	c, rec := newTestContext(http.MethodPost, "/", `{"format":"pdf"}`)
	c.SetParamNames("id")
	c.SetParamValues(fx.company.ID.String())

	if err := h.GenerateReport(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "application/pdf" {
		t.Errorf("content type = %q", got)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "Reporte-Aceros del Norte-") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("body is not a PDF")
	}
}

func TestHandler_GenerateEncounterDocument(t *testing.T) {
	fx := newFixture(t)
	h := NewHandler(fx.svc)

	c, rec := newTestContext(http.MethodPost, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(fx.encounter.ID.String())

	if err := h.GenerateEncounterDocument(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "VisionWow_María_Gómez_") {
		t.Errorf("content disposition = %q", cd)
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	fx := newFixture(t)
	h := NewHandler(fx.svc)

	e := echo.New()
	h.RegisterRoutes(e.Group("/api/v1"))

	want := map[string]bool{
		"GET /api/v1/companies/:id/report/summary": false,
		"POST /api/v1/companies/:id/report":        false,
		"POST /api/v1/encounters/:id/document":     false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, found := range want {
		if !found {
			t.Errorf("route %s not registered", key)
		}
	}
}
