package projects

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/codes"

	"github.com/kentsel/kentsel/internal/logging"
	"github.com/kentsel/kentsel/internal/metrics"
	"github.com/kentsel/kentsel/internal/scenario"
	"github.com/kentsel/kentsel/internal/traces"
)

// EventEmitter is notified when a project is created.
type EventEmitter interface {
	EmitProjectCreated(p *Project)
}

// Service implements project business logic on top of a Store.
type Service struct {
	store   Store
	catalog *scenario.Catalog
	events  EventEmitter
}

// NewService creates a new project service
func NewService(store Store, catalog *scenario.Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

// WithEvents adds an event emitter
func (s *Service) WithEvents(events EventEmitter) *Service {
	s.events = events
	return s
}

// Catalog returns the scenario catalog used to resolve project scenarios.
func (s *Service) Catalog() *scenario.Catalog {
	return s.catalog
}

// Create saves a new project. Name, scenario and target are not validated.
func (s *Service) Create(ctx context.Context, name, scenarioKey string, targetGreen int, notes *string) (*Project, error) {
	ctx, span := traces.StartSpan(ctx, "projects.Create",
		traces.Scenario(scenarioKey), traces.StoreBackend(s.store.Backend()))
	defer span.End()

	p := &Project{
		Name:        name,
		Scenario:    scenarioKey,
		TargetGreen: targetGreen,
		Notes:       notes,
	}
	if err := s.store.Create(ctx, p); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create project")
		metrics.StoreErrorsTotal.WithLabelValues("create").Inc()
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	span.SetAttributes(traces.ProjectID(p.ID))

	metrics.ProjectsCreatedTotal.WithLabelValues(s.store.Backend()).Inc()
	logging.L(ctx).Info("project created", "id", p.ID, "scenario", p.Scenario)

	if s.events != nil {
		s.events.EmitProjectCreated(p)
	}
	return p, nil
}

// List returns all projects, newest first.
func (s *Service) List(ctx context.Context) ([]*Project, error) {
	ctx, span := traces.StartSpan(ctx, "projects.List", traces.StoreBackend(s.store.Backend()))
	defer span.End()

	list, err := s.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list projects")
		metrics.StoreErrorsTotal.WithLabelValues("list").Inc()
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return list, nil
}

// Get returns one project or ErrProjectNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	ctx, span := traces.StartSpan(ctx, "projects.Get",
		traces.ProjectID(id), traces.StoreBackend(s.store.Backend()))
	defer span.End()

	p, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrProjectNotFound) {
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get project")
		metrics.StoreErrorsTotal.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// Summarize attaches the resolved scenario analysis and prediction.
func (s *Service) Summarize(p *Project) *Summary {
	return &Summary{
		Project:    *p,
		Analysis:   s.catalog.Analysis(p.Scenario),
		Prediction: s.catalog.Prediction(p.Scenario),
	}
}

// Compare returns summaries for projects a and b. If either is missing the
// result is ErrProjectNotFound; partial comparisons are never returned.
func (s *Service) Compare(ctx context.Context, a, b int64) (*Comparison, error) {
	ctx, span := traces.StartSpan(ctx, "projects.Compare")
	defer span.End()

	pa, err := s.Get(ctx, a)
	if err != nil {
		return nil, err
	}
	pb, err := s.Get(ctx, b)
	if err != nil {
		return nil, err
	}
	return &Comparison{A: s.Summarize(pa), B: s.Summarize(pb)}, nil
}

// Ping checks the underlying store.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Backend names the underlying store implementation.
func (s *Service) Backend() string {
	return s.store.Backend()
}
