package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kentsel/kentsel/internal/projects"
	"github.com/kentsel/kentsel/internal/risk"
	"github.com/kentsel/kentsel/internal/scenario"
)

// Handlers holds the handler functions for each MCP tool.
type Handlers struct {
	client *Client
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(client *Client) *Handlers {
	return &Handlers{client: client}
}

// HandleAnalyzeScenario returns the analysis view of a scenario.
func (h *Handlers) HandleAnalyzeScenario(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, a, err := h.client.Analyze(ctx, req.GetString("scenario", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze scenario: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analysis for scenario %q:\n", key)
	writeAnalysis(&sb, a, "  ")
	return mcp.NewToolResultText(sb.String()), nil
}

// HandlePredictScenario returns the 2030 projection of a scenario.
func (h *Handlers) HandlePredictScenario(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, p, err := h.client.Predict(ctx, req.GetString("scenario", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get prediction: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "2030 projection for scenario %q:\n", key)
	writePrediction(&sb, p, "  ")
	return mcp.NewToolResultText(sb.String()), nil
}

// HandleListScenarios lists the scenario regions.
func (h *Handlers) HandleListScenarios(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	regions, err := h.client.ListScenarios(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list scenarios: %v", err)), nil
	}
	if len(regions) == 0 {
		return mcp.NewToolResultText("No scenarios available."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d scenario(s):\n", len(regions))
	for _, r := range regions {
		fmt.Fprintf(&sb, "- %s: %s", r.Key, r.Label)
		if len(r.Center) == 2 {
			fmt.Fprintf(&sb, " (center %.3f, %.3f)", r.Center[0], r.Center[1])
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// HandleSimulateGreen runs the green-space simulation.
func (h *Handlers) HandleSimulateGreen(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := req.RequireInt("target_green")
	if err != nil {
		return mcp.NewToolResultError("target_green is required"), nil
	}

	sim, err := h.client.SimulateGreen(ctx, req.GetString("scenario", ""), target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to simulate: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Green-space simulation for %q:\n", sim.Scenario)
	fmt.Fprintf(&sb, "  Current: %%%d\n", sim.CurrentGreen)
	fmt.Fprintf(&sb, "  Target: %%%d (%+d)\n", sim.TargetGreen, sim.Difference)
	fmt.Fprintf(&sb, "  Level: %s\n", sim.Level)
	fmt.Fprintf(&sb, "  Effect: %s\n", sim.Effect)
	return mcp.NewToolResultText(sb.String()), nil
}

// HandleListProjects lists saved projects.
func (h *Handlers) HandleListProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := h.client.ListProjects(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list projects: %v", err)), nil
	}
	return mcp.NewToolResultText(formatProjectList(list)), nil
}

// HandleGetProject returns one project.
func (h *Handlers) HandleGetProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	p, err := h.client.GetProject(ctx, int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get project: %v", err)), nil
	}

	var sb strings.Builder
	writeProject(&sb, p)
	return mcp.NewToolResultText(sb.String()), nil
}

// HandleCreateProject saves a new project.
func (h *Handlers) HandleCreateProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	key, err := req.RequireString("scenario")
	if err != nil {
		return mcp.NewToolResultError("scenario is required"), nil
	}
	target, err := req.RequireInt("target_green")
	if err != nil {
		return mcp.NewToolResultError("target_green is required"), nil
	}
	var notes *string
	if n, ok := req.GetArguments()["notes"].(string); ok {
		notes = &n
	}

	p, err := h.client.CreateProject(ctx, name, key, target, notes)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create project: %v", err)), nil
	}

	var sb strings.Builder
	sb.WriteString("Project saved.\n")
	writeProject(&sb, p)
	fmt.Fprintf(&sb, "Report: %s/projects/%d/report\n", h.client.cfg.APIURL, p.ID)
	return mcp.NewToolResultText(sb.String()), nil
}

// HandleCompareProjects compares two projects.
func (h *Handlers) HandleCompareProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, errA := req.RequireInt("a")
	b, errB := req.RequireInt("b")
	if errA != nil || errB != nil {
		return mcp.NewToolResultError("a and b are required"), nil
	}

	cmp, err := h.client.CompareProjects(ctx, int64(a), int64(b))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to compare projects: %v", err)), nil
	}

	var sb strings.Builder
	for i, s := range []*projects.Summary{cmp.A, cmp.B} {
		if i > 0 {
			sb.WriteString("\n")
		}
		if s == nil {
			continue
		}
		writeProject(&sb, &s.Project)
		writeAnalysis(&sb, s.Analysis, "  ")
		writePrediction(&sb, s.Prediction, "  ")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// HandleScoreRisk computes a risk score.
func (h *Handlers) HandleScoreRisk(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("scenario")
	if err != nil {
		return mcp.NewToolResultError("scenario is required"), nil
	}
	density, err := req.RequireString("population_density")
	if err != nil {
		return mcp.NewToolResultError("population_density is required"), nil
	}
	green, err1 := req.RequireInt("green_ratio")
	flood, err2 := req.RequireInt("flood_risk")
	infra, err3 := req.RequireInt("infrastructure_score")
	if err1 != nil || err2 != nil || err3 != nil {
		return mcp.NewToolResultError("green_ratio, flood_risk and infrastructure_score are required"), nil
	}

	a, err := h.client.ScoreRisk(ctx, risk.Input{
		Scenario:            key,
		GreenRatio:          green,
		PopulationDensity:   density,
		FloodRisk:           flood,
		InfrastructureScore: infra,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to score risk: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Risk score: %d/100 (%s)\n%s\n", a.Score, a.Level, a.Explanation)), nil
}

func formatProjectList(list []*projects.Project) string {
	if len(list) == 0 {
		return "No projects saved yet."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d project(s):\n", len(list))
	for _, p := range list {
		fmt.Fprintf(&sb, "- #%d %s [%s] target green %%%d\n", p.ID, p.Name, p.Scenario, p.TargetGreen)
	}
	return sb.String()
}

func writeProject(sb *strings.Builder, p *projects.Project) {
	if p == nil {
		return
	}
	fmt.Fprintf(sb, "Project #%d: %s\n", p.ID, p.Name)
	fmt.Fprintf(sb, "  Scenario: %s\n", p.Scenario)
	fmt.Fprintf(sb, "  Target green: %%%d\n", p.TargetGreen)
	if p.Notes != nil && *p.Notes != "" {
		fmt.Fprintf(sb, "  Notes: %s\n", *p.Notes)
	}
}

func writeAnalysis(sb *strings.Builder, a scenario.Analysis, indent string) {
	fmt.Fprintf(sb, "%sGreen ratio: %s\n", indent, a.GreenRatio)
	fmt.Fprintf(sb, "%sPopulation density: %s\n", indent, a.PopulationDensity)
	if len(a.Risks) > 0 {
		fmt.Fprintf(sb, "%sRisks:\n", indent)
		for _, r := range a.Risks {
			fmt.Fprintf(sb, "%s  - %s\n", indent, r)
		}
	}
	fmt.Fprintf(sb, "%sRecommendation: %s\n", indent, a.Recommendation)
}

func writePrediction(sb *strings.Builder, p scenario.Prediction, indent string) {
	fmt.Fprintf(sb, "%sHousing need 2030: %s\n", indent, p.HousingNeed2030)
	fmt.Fprintf(sb, "%sTransport load increase: %s\n", indent, p.TransportLoadIncrease)
	fmt.Fprintf(sb, "%sOutlook: %s\n", indent, p.Recommendation)
}
