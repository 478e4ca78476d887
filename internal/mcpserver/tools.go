package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the kentsel MCP server.
// Descriptions are what the model reads to decide which tool to use.

var ToolAnalyzeScenario = mcp.NewTool("analyze_scenario",
	mcp.WithDescription(
		"Get the urban analysis for a planning scenario: green-space ratio, population density, "+
			"detected risks and a recommendation. Unknown scenarios fall back to 'merkez'."),
	mcp.WithString("scenario",
		mcp.Description("Scenario key"),
		mcp.Enum("merkez", "gelisen", "yesil")),
)

var ToolPredictScenario = mcp.NewTool("predict_scenario",
	mcp.WithDescription(
		"Get the 2030 projection for a planning scenario: housing need, transport load increase "+
			"and a recommendation."),
	mcp.WithString("scenario",
		mcp.Description("Scenario key"),
		mcp.Enum("merkez", "gelisen", "yesil")),
)

var ToolListScenarios = mcp.NewTool("list_scenarios",
	mcp.WithDescription("List the available planning scenarios with their labels and map centers."),
)

var ToolSimulateGreen = mcp.NewTool("simulate_green",
	mcp.WithDescription(
		"Estimate the effect of changing a scenario's green-space share to a target percentage."),
	mcp.WithString("scenario",
		mcp.Description("Scenario key"),
		mcp.Enum("merkez", "gelisen", "yesil")),
	mcp.WithNumber("target_green",
		mcp.Required(),
		mcp.Description("Target green-space percentage (e.g. 25)")),
)

var ToolListProjects = mcp.NewTool("list_projects",
	mcp.WithDescription("List saved planning projects, newest first."),
)

var ToolGetProject = mcp.NewTool("get_project",
	mcp.WithDescription("Get one saved planning project by id."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Project id")),
)

var ToolCreateProject = mcp.NewTool("create_project",
	mcp.WithDescription(
		"Save a new planning project. The returned id can be used with get_project, "+
			"compare_projects, or opened as an HTML report at /projects/{id}/report."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Project name")),
	mcp.WithString("scenario",
		mcp.Required(),
		mcp.Description("Scenario key (merkez, gelisen or yesil)")),
	mcp.WithNumber("target_green",
		mcp.Required(),
		mcp.Description("Target green-space percentage")),
	mcp.WithString("notes",
		mcp.Description("Optional free-text notes")),
)

var ToolCompareProjects = mcp.NewTool("compare_projects",
	mcp.WithDescription(
		"Compare two saved projects side by side, including the analysis and 2030 projection "+
			"of each project's scenario."),
	mcp.WithNumber("a",
		mcp.Required(),
		mcp.Description("First project id")),
	mcp.WithNumber("b",
		mcp.Required(),
		mcp.Description("Second project id")),
)

var ToolScoreRisk = mcp.NewTool("score_risk",
	mcp.WithDescription(
		"Compute a 0-100 urban risk score from green ratio, population density, flood risk "+
			"and infrastructure quality. Returns the score, a Low/Medium/High tier and an explanation."),
	mcp.WithString("scenario",
		mcp.Required(),
		mcp.Description("Scenario key; merkez adds 5 points, yesil subtracts 5")),
	mcp.WithNumber("green_ratio",
		mcp.Required(),
		mcp.Description("Green-space percentage, 0-100")),
	mcp.WithString("population_density",
		mcp.Required(),
		mcp.Description("Density class"),
		mcp.Enum("dusuk", "orta", "yuksek", "cok_yuksek")),
	mcp.WithNumber("flood_risk",
		mcp.Required(),
		mcp.Description("Flood risk, 0-10")),
	mcp.WithNumber("infrastructure_score",
		mcp.Required(),
		mcp.Description("Infrastructure quality, 0-10 where 10 is best")),
)
