// Package projects stores user-created planning projects.
//
// A project pairs a name with a scenario key and a target green-space
// percentage. Projects are append-only: once created they can be listed,
// fetched, compared and rendered as a report, but never updated or removed.
package projects

import (
	"context"
	"errors"

	"github.com/kentsel/kentsel/internal/scenario"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

// NotFoundMessage is the user-facing text returned for missing projects.
const NotFoundMessage = "Proje bulunamadı"

// Project is a saved planning project. Scenario and TargetGreen are stored
// as given; unknown scenario keys are resolved only when analysis is needed.
type Project struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Scenario    string  `json:"scenario"`
	TargetGreen int     `json:"target_green"`
	Notes       *string `json:"notes"`
}

// Summary is a project together with the analysis and prediction of the
// scenario it resolves to. Used by the compare endpoint.
type Summary struct {
	Project
	Analysis   scenario.Analysis   `json:"analysis"`
	Prediction scenario.Prediction `json:"prediction"`
}

// Comparison holds the two sides of a project comparison.
type Comparison struct {
	A *Summary `json:"a"`
	B *Summary `json:"b"`
}

// Store persists projects
type Store interface {
	// Create assigns the next id to p and saves it.
	Create(ctx context.Context, p *Project) error
	// List returns every project, newest id first.
	List(ctx context.Context) ([]*Project, error)
	Get(ctx context.Context, id int64) (*Project, error)
	Ping(ctx context.Context) error
	// Backend names the implementation ("memory", "postgres").
	Backend() string
}
