// Package report renders stored projects as standalone HTML documents.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/kentsel/kentsel/internal/projects"
	"github.com/kentsel/kentsel/internal/scenario"
)

const (
	// Title is the product name printed in the report header.
	Title = "AI Kentsel Dönüşüm Mimarı"
	// Version is the report format version shown on the chip.
	Version = "v1.1"
)

//go:embed report.html.tmpl
var reportTemplate string

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

type view struct {
	Title      string
	Version    string
	Project    *projects.Project
	Notes      string
	Analysis   scenario.Analysis
	Prediction scenario.Prediction
}

// Renderer writes HTML reports. Every interpolated value is escaped by
// html/template, so project names, scenarios and notes cannot inject markup.
type Renderer struct {
	catalog *scenario.Catalog
}

// NewRenderer creates a renderer that resolves scenarios through catalog.
func NewRenderer(catalog *scenario.Catalog) *Renderer {
	return &Renderer{catalog: catalog}
}

var _ projects.ReportRenderer = (*Renderer)(nil)

// Render writes the report for p to w. Unknown scenarios use the fallback
// scenario's analysis and prediction.
func (r *Renderer) Render(w io.Writer, p *projects.Project) error {
	v := view{
		Title:      Title,
		Version:    Version,
		Project:    p,
		Analysis:   r.catalog.Analysis(p.Scenario),
		Prediction: r.catalog.Prediction(p.Scenario),
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("render report %d: %w", p.ID, err)
	}
	return nil
}
