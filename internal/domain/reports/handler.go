package reports

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/visionwow/visionwow/internal/platform/auth"
	"github.com/visionwow/visionwow/internal/report"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "optometrist"))
	g.GET("/companies/:id/report/summary", h.GetSummary)
	g.POST("/companies/:id/report", h.GenerateReport)
	g.POST("/encounters/:id/document", h.GenerateEncounterDocument)
}

type generateRequest struct {
	Filters
	Format   string          `json:"format,omitempty"`
	Sections report.Sections `json:"sections,omitempty"`
}

func (h *Handler) GetSummary(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	f, err := filtersFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sum, err := h.svc.Summary(c.Request().Context(), id, f)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) GenerateReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	doc, err := h.svc.GenerateReport(c.Request().Context(), id, req.Filters, req.Format, req.Sections)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return sendDocument(c, doc)
}

func (h *Handler) GenerateEncounterDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	doc, err := h.svc.GenerateEncounterDocument(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return sendDocument(c, doc)
}

func sendDocument(c echo.Context, doc *Document) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.FileName+`"`)
	return c.Blob(http.StatusOK, doc.MIME, doc.Data)
}

func filtersFromQuery(c echo.Context) (Filters, error) {
	var f Filters
	if from := c.QueryParam("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return f, err
		}
		f.From = &t
	}
	if to := c.QueryParam("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return f, err
		}
		f.To = &t
	}
	if keys := c.QueryParam("keys"); keys != "" {
		for _, key := range strings.Split(keys, ",") {
			if key = strings.TrimSpace(key); key != "" {
				f.Keys = append(f.Keys, key)
			}
		}
	}
	return f, nil
}
