package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresStore implements Store with PostgreSQL. The projects table is
// created by the goose migrations in migrations/.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL-backed project store
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var _ Store = (*PostgresStore)(nil)

// Create inserts a project and sets p.ID from the BIGSERIAL sequence.
func (p *PostgresStore) Create(ctx context.Context, proj *Project) error {
	err := p.db.QueryRowContext(ctx, `
		INSERT INTO projects (name, scenario, target_green, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, proj.Name, proj.Scenario, proj.TargetGreen, nullString(proj.Notes)).Scan(&proj.ID)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// List returns all projects, newest first
func (p *PostgresStore) List(ctx context.Context) ([]*Project, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, name, scenario, target_green, notes
		FROM projects
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []*Project{}
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// Get retrieves a project by id
func (p *PostgresStore) Get(ctx context.Context, id int64) (*Project, error) {
	row := p.db.QueryRowContext(ctx, `
		SELECT id, name, scenario, target_green, notes
		FROM projects WHERE id = $1
	`, id)
	proj, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return proj, nil
}

// Ping checks database connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Backend returns "postgres".
func (p *PostgresStore) Backend() string { return "postgres" }

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*Project, error) {
	var (
		proj  Project
		notes sql.NullString
	)
	if err := s.Scan(&proj.ID, &proj.Name, &proj.Scenario, &proj.TargetGreen, &notes); err != nil {
		return nil, err
	}
	if notes.Valid {
		proj.Notes = &notes.String
	}
	return &proj, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
