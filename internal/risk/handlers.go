package risk

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kentsel/kentsel/internal/metrics"
	"github.com/kentsel/kentsel/internal/traces"
	"github.com/kentsel/kentsel/internal/validation"
)

// EventEmitter is notified after every successful score.
type EventEmitter interface {
	EmitRiskScored(in Input, a Assessment)
}

// Handler provides HTTP endpoints for risk scoring
type Handler struct {
	events EventEmitter
}

// NewHandler creates a new risk handler. events may be nil.
func NewHandler(events EventEmitter) *Handler {
	return &Handler{events: events}
}

// RegisterRoutes sets up risk routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/ai/risk-score", h.ScoreRisk)
}

// ScoreRequest is the body of POST /ai/risk-score. Every field must be
// present; integers may arrive as whole numbers or numeric strings and are
// not range-checked.
type ScoreRequest struct {
	Scenario            *string         `json:"scenario" binding:"required"`
	GreenRatio          *validation.Int `json:"green_ratio" binding:"required"`
	PopulationDensity   *string         `json:"population_density" binding:"required"`
	FloodRisk           *validation.Int `json:"flood_risk" binding:"required"`
	InfrastructureScore *validation.Int `json:"infrastructure_score" binding:"required"`
}

// Input converts a bound request into scorer input.
func (r *ScoreRequest) Input() Input {
	return Input{
		Scenario:            *r.Scenario,
		GreenRatio:          int(*r.GreenRatio),
		PopulationDensity:   *r.PopulationDensity,
		FloodRisk:           int(*r.FloodRisk),
		InfrastructureScore: int(*r.InfrastructureScore),
	}
}

// ScoreRisk handles POST /ai/risk-score
func (h *Handler) ScoreRisk(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "scenario, green_ratio, population_density, flood_risk and infrastructure_score are required",
		})
		return
	}

	in := req.Input()
	_, span := traces.StartSpan(c.Request.Context(), "risk.Score",
		traces.Scenario(in.Scenario),
		traces.Density(in.PopulationDensity),
	)
	result := Score(in)
	span.SetAttributes(traces.RiskScore(result.Score))
	span.End()

	metrics.RiskScoresTotal.WithLabelValues(string(result.Level)).Inc()
	if h.events != nil {
		h.events.EmitRiskScored(in, result)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"score":       result.Score,
		"level":       result.Level,
		"explanation": result.Explanation,
	})
}
