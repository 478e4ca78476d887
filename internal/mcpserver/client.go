package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kentsel/kentsel/internal/projects"
	"github.com/kentsel/kentsel/internal/risk"
	"github.com/kentsel/kentsel/internal/scenario"
)

// Config holds the configuration for connecting to a kentsel API.
type Config struct {
	APIURL string // Base URL, e.g. "http://localhost:8001"
}

// Client is a plain HTTP client for the kentsel API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// apiError represents an error response from the API.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doRequest sends a request and decodes a successful JSON response into out.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u, err := url.Parse(c.cfg.APIURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("API error (%d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func scenarioQuery(key string) url.Values {
	if key == "" {
		return nil
	}
	return url.Values{"scenario": {key}}
}

// Analyze fetches the analysis view for a scenario.
func (c *Client) Analyze(ctx context.Context, key string) (string, scenario.Analysis, error) {
	var resp struct {
		Scenario string            `json:"scenario"`
		Analysis scenario.Analysis `json:"analysis"`
	}
	err := c.doRequest(ctx, http.MethodGet, "/analyze", scenarioQuery(key), nil, &resp)
	return resp.Scenario, resp.Analysis, err
}

// Predict fetches the 2030 prediction view for a scenario.
func (c *Client) Predict(ctx context.Context, key string) (string, scenario.Prediction, error) {
	var resp struct {
		Scenario   string              `json:"scenario"`
		Prediction scenario.Prediction `json:"prediction"`
	}
	err := c.doRequest(ctx, http.MethodGet, "/predict", scenarioQuery(key), nil, &resp)
	return resp.Scenario, resp.Prediction, err
}

// ListScenarios returns every scenario region.
func (c *Client) ListScenarios(ctx context.Context) ([]scenario.Region, error) {
	var resp struct {
		Scenarios []scenario.Region `json:"scenarios"`
	}
	err := c.doRequest(ctx, http.MethodGet, "/scenarios", nil, nil, &resp)
	return resp.Scenarios, err
}

// SimulateGreen runs the green-space simulation for a target percentage.
func (c *Client) SimulateGreen(ctx context.Context, key string, target int) (scenario.Simulation, error) {
	q := url.Values{"target": {strconv.Itoa(target)}}
	if key != "" {
		q.Set("scenario", key)
	}
	var resp struct {
		Simulation scenario.Simulation `json:"simulation"`
	}
	err := c.doRequest(ctx, http.MethodGet, "/simulate-green", q, nil, &resp)
	return resp.Simulation, err
}

// ListProjects returns saved projects, newest first.
func (c *Client) ListProjects(ctx context.Context) ([]*projects.Project, error) {
	var resp struct {
		Projects []*projects.Project `json:"projects"`
	}
	err := c.doRequest(ctx, http.MethodGet, "/projects", nil, nil, &resp)
	return resp.Projects, err
}

// GetProject fetches one project.
func (c *Client) GetProject(ctx context.Context, id int64) (*projects.Project, error) {
	var resp struct {
		Project *projects.Project `json:"project"`
	}
	err := c.doRequest(ctx, http.MethodGet, "/projects/"+strconv.FormatInt(id, 10), nil, nil, &resp)
	return resp.Project, err
}

// CreateProject saves a new project.
func (c *Client) CreateProject(ctx context.Context, name, key string, targetGreen int, notes *string) (*projects.Project, error) {
	body := map[string]any{
		"name":         name,
		"scenario":     key,
		"target_green": targetGreen,
		"notes":        notes,
	}
	var resp struct {
		Project *projects.Project `json:"project"`
	}
	err := c.doRequest(ctx, http.MethodPost, "/projects", nil, body, &resp)
	return resp.Project, err
}

// CompareProjects fetches side-by-side summaries of two projects.
func (c *Client) CompareProjects(ctx context.Context, a, b int64) (*projects.Comparison, error) {
	q := url.Values{
		"a": {strconv.FormatInt(a, 10)},
		"b": {strconv.FormatInt(b, 10)},
	}
	var cmp projects.Comparison
	if err := c.doRequest(ctx, http.MethodGet, "/compare-projects", q, nil, &cmp); err != nil {
		return nil, err
	}
	return &cmp, nil
}

// ScoreRisk computes a risk score on the server.
func (c *Client) ScoreRisk(ctx context.Context, in risk.Input) (risk.Assessment, error) {
	var out risk.Assessment
	err := c.doRequest(ctx, http.MethodPost, "/ai/risk-score", nil, in, &out)
	return out, err
}
