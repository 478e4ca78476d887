package scenario

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kentsel/kentsel/internal/metrics"
)

// Handler provides HTTP endpoints for the scenario catalog
type Handler struct {
	catalog *Catalog
}

// NewHandler creates a new scenario handler
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes sets up scenario routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/analyze", h.Analyze)
	r.GET("/predict", h.Predict)
	r.GET("/scenarios", h.ListScenarios)
	r.GET("/scenarios/:key/heat", h.GetHeat)
	r.GET("/simulate-green", h.SimulateGreen)
}

// Analyze handles GET /analyze
func (h *Handler) Analyze(c *gin.Context) {
	key := h.scenarioQuery(c, "analyze")

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"scenario": key,
		"analysis": h.catalog.Analysis(key),
	})
}

// Predict handles GET /predict
func (h *Handler) Predict(c *gin.Context) {
	key := h.scenarioQuery(c, "predict")

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"scenario":   key,
		"prediction": h.catalog.Prediction(key),
	})
}

// ListScenarios handles GET /scenarios
func (h *Handler) ListScenarios(c *gin.Context) {
	regions := h.catalog.Regions()
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"default":   h.catalog.Fallback(),
		"scenarios": regions,
		"count":     len(regions),
	})
}

// GetHeat handles GET /scenarios/:key/heat
func (h *Handler) GetHeat(c *gin.Context) {
	key := c.Param("key")
	if _, ok := h.catalog.Resolve(key); !ok {
		metrics.ScenarioFallbacksTotal.WithLabelValues("heat").Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"scenario": key,
		"points":   h.catalog.Heat(key),
	})
}

// SimulateGreen handles GET /simulate-green
func (h *Handler) SimulateGreen(c *gin.Context) {
	key := h.scenarioQuery(c, "simulate")

	target, err := strconv.Atoi(c.Query("target"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "target must be an integer percentage",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"simulation": h.catalog.SimulateGreen(key, target),
	})
}

// scenarioQuery reads ?scenario= and records whether it fell back.
func (h *Handler) scenarioQuery(c *gin.Context, view string) string {
	key := c.DefaultQuery("scenario", h.catalog.Fallback().String())
	if _, ok := h.catalog.Resolve(key); !ok {
		metrics.ScenarioFallbacksTotal.WithLabelValues(view).Inc()
	}
	return key
}
