package projects

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kentsel/kentsel/internal/logging"
	"github.com/kentsel/kentsel/internal/metrics"
	"github.com/kentsel/kentsel/internal/validation"
)

// ReportRenderer writes an HTML report for a project.
type ReportRenderer interface {
	Render(w io.Writer, p *Project) error
}

// Handler provides HTTP endpoints for projects
type Handler struct {
	service  *Service
	renderer ReportRenderer
}

// NewHandler creates a new project handler
func NewHandler(service *Service, renderer ReportRenderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// RegisterRoutes sets up project routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/projects", h.CreateProject)
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
	r.GET("/projects/:id/report", h.GetReport)
	r.GET("/compare-projects", h.CompareProjects)
}

// CreateProjectRequest is the body of POST /projects
type CreateProjectRequest struct {
	Name        *string         `json:"name" binding:"required"`
	Scenario    *string         `json:"scenario" binding:"required"`
	TargetGreen *validation.Int `json:"target_green" binding:"required"`
	Notes       *string         `json:"notes"`
}

// CreateProject handles POST /projects
func (h *Handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "name, scenario and target_green are required",
		})
		return
	}

	p, err := h.service.Create(c.Request.Context(), *req.Name, *req.Scenario, int(*req.TargetGreen), req.Notes)
	if err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"project": p,
	})
}

// ListProjects handles GET /projects
func (h *Handler) ListProjects(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.storageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"projects": list,
	})
}

// GetProject handles GET /projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	id, ok := idParam(c, c.Param("id"))
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"project": p,
	})
}

// GetReport handles GET /projects/:id/report
func (h *Handler) GetReport(c *gin.Context) {
	id, ok := idParam(c, c.Param("id"))
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, err)
		return
	}

	// Render into a buffer so a template failure can still produce a JSON 500.
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, p); err != nil {
		logging.L(c.Request.Context()).Error("failed to render report", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "render_error",
			"message": "Failed to render report",
		})
		return
	}

	metrics.ReportsRenderedTotal.Inc()
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// CompareProjects handles GET /compare-projects?a=&b=
func (h *Handler) CompareProjects(c *gin.Context) {
	a, ok := idParam(c, c.Query("a"))
	if !ok {
		return
	}
	b, ok := idParam(c, c.Query("b"))
	if !ok {
		return
	}

	cmp, err := h.service.Compare(c.Request.Context(), a, b)
	if err != nil {
		h.lookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"a":      cmp.A,
		"b":      cmp.B,
	})
}

// idParam parses a project id, writing a 400 response on failure.
func idParam(c *gin.Context, raw string) (int64, bool) {
	id, err := validation.ParseID(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_id",
			"message": "Project id must be an integer",
		})
		return 0, false
	}
	return id, true
}

func (h *Handler) lookupError(c *gin.Context, err error) {
	if errors.Is(err, ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": NotFoundMessage,
		})
		return
	}
	h.storageError(c, err)
}

func (h *Handler) storageError(c *gin.Context, err error) {
	logging.L(c.Request.Context()).Error("project store failure", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "storage_error",
		"message": "Project storage is unavailable",
	})
}
