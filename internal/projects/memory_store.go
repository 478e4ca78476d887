package projects

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory implementation of Store. Contents are lost on
// restart; ids start at 1 and are never reused within a process.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[int64]*Project
	nextID   int64
}

// NewMemoryStore creates a new in-memory project store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		projects: make(map[int64]*Project),
	}
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)

// Create saves a copy of p under the next id and writes the id back to p.
func (m *MemoryStore) Create(ctx context.Context, p *Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	p.ID = m.nextID
	m.projects[p.ID] = clone(p)
	return nil
}

// List returns all projects, newest first
func (m *MemoryStore) List(ctx context.Context) ([]*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, clone(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Get retrieves a project by id
func (m *MemoryStore) Get(ctx context.Context, id int64) (*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, ErrProjectNotFound
	}
	return clone(p), nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(ctx context.Context) error { return nil }

// Backend returns "memory".
func (m *MemoryStore) Backend() string { return "memory" }

func clone(p *Project) *Project {
	cp := *p
	if p.Notes != nil {
		notes := *p.Notes
		cp.Notes = &notes
	}
	return &cp
}
