// Package store holds the canonical in-memory collections for both trackers
// and persists each tracker's whole state as one JSON payload in the kvstore.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/renewal"
)

// KV is the persistence collaborator. Write failures are swallowed by the
// stores; the in-memory state stays authoritative either way.
type KV interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
}

// RenewalKey is the storage key holding the renewal tracker's state.
const RenewalKey = "urban-renewal-pm-v1"

type renewalState struct {
	Projects []renewal.Project `json:"projects"`
	Tenants  []renewal.Tenant  `json:"tenants"`
	Tasks    []renewal.Task    `json:"tasks"`
}

// CascadeResult reports what a project delete removed.
type CascadeResult struct {
	Deleted        bool `json:"deleted"`
	TenantsRemoved int  `json:"tenants_removed"`
	TasksRemoved   int  `json:"tasks_removed"`
}

// RenewalStore owns the renewal tracker's collections.
type RenewalStore struct {
	kv     KV
	logger *slog.Logger

	mu       sync.Mutex
	state    renewalState
	revision int64

	dashCache struct {
		revision int64
		day      string
		valid    bool
		dash     renewal.Dashboard
	}
}

// NewRenewalStore creates a store over the given persistence collaborator.
func NewRenewalStore(kv KV, logger *slog.Logger) *RenewalStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RenewalStore{kv: kv, logger: logger}
}

// Load reads the persisted state. A missing or unparseable payload falls back
// to the built-in sample dataset, which is not persisted until the first
// mutation (mirrors the original app's load behavior).
func (s *RenewalStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok, err := s.kv.Read(ctx, RenewalKey)
	if err != nil {
		return err
	}
	if !ok {
		s.state = seedRenewalState()
		return nil
	}

	var state renewalState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		s.logger.Warn("unparseable renewal payload, falling back to sample data", "error", err)
		s.state = seedRenewalState()
		return nil
	}
	s.state = state
	return nil
}

// Snapshot returns copies of the current collections.
func (s *RenewalStore) Snapshot() (projects []renewal.Project, tenants []renewal.Tenant, tasks []renewal.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySlice(s.state.Projects), copySlice(s.state.Tenants), copySlice(s.state.Tasks)
}

// GetProject returns a project by identity.
func (s *RenewalStore) GetProject(id string) (renewal.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return renewal.Project{}, ErrNotFound
}

// CreateProject adds a project, assigning identity and creation timestamp when absent.
func (s *RenewalStore) CreateProject(ctx context.Context, p renewal.Project) renewal.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.state.Projects = append(s.state.Projects, p)
	s.commit(ctx)
	return p
}

// UpdateProject replaces a project in place, preserving identity and creation timestamp.
func (s *RenewalStore) UpdateProject(ctx context.Context, p renewal.Project) (renewal.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.state.Projects {
		if existing.ID != p.ID {
			continue
		}
		p.CreatedAt = existing.CreatedAt
		s.state.Projects[i] = p
		s.commit(ctx)
		return p, nil
	}
	return renewal.Project{}, ErrNotFound
}

// DeleteProject removes a project together with every tenant and task that
// references it. All three collections are swapped in one step so no partial
// state is observable. Deleting an unknown identity is a no-op.
func (s *RenewalStore) DeleteProject(ctx context.Context, id string) CascadeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	projects := make([]renewal.Project, 0, len(s.state.Projects))
	for _, p := range s.state.Projects {
		if p.ID == id {
			found = true
			continue
		}
		projects = append(projects, p)
	}
	if !found {
		return CascadeResult{}
	}

	result := CascadeResult{Deleted: true}
	tenants := make([]renewal.Tenant, 0, len(s.state.Tenants))
	for _, t := range s.state.Tenants {
		if t.ProjectID == id {
			result.TenantsRemoved++
			continue
		}
		tenants = append(tenants, t)
	}
	tasks := make([]renewal.Task, 0, len(s.state.Tasks))
	for _, t := range s.state.Tasks {
		if t.ProjectID == id {
			result.TasksRemoved++
			continue
		}
		tasks = append(tasks, t)
	}

	s.state = renewalState{Projects: projects, Tenants: tenants, Tasks: tasks}
	s.commit(ctx)
	return result
}

// CreateTenant adds a tenant to an existing project.
func (s *RenewalStore) CreateTenant(ctx context.Context, t renewal.Tenant) (renewal.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.projectExists(t.ProjectID) {
		return renewal.Tenant{}, ErrNotFound
	}
	if strings.TrimSpace(t.ID) == "" {
		t.ID = uuid.NewString()
	}
	s.state.Tenants = append(s.state.Tenants, t)
	s.commit(ctx)
	return t, nil
}

// UpdateTenant replaces a tenant in place.
func (s *RenewalStore) UpdateTenant(ctx context.Context, t renewal.Tenant) (renewal.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.state.Tenants {
		if existing.ID != t.ID {
			continue
		}
		t.ProjectID = existing.ProjectID
		s.state.Tenants[i] = t
		s.commit(ctx)
		return t, nil
	}
	return renewal.Tenant{}, ErrNotFound
}

// DeleteTenant removes a tenant by identity; unknown identities are a no-op.
func (s *RenewalStore) DeleteTenant(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.Tenants {
		if t.ID == id {
			s.state.Tenants = append(s.state.Tenants[:i:i], s.state.Tenants[i+1:]...)
			s.commit(ctx)
			return true
		}
	}
	return false
}

// CreateTask adds a task to an existing project.
func (s *RenewalStore) CreateTask(ctx context.Context, t renewal.Task) (renewal.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.projectExists(t.ProjectID) {
		return renewal.Task{}, ErrNotFound
	}
	if strings.TrimSpace(t.ID) == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	s.state.Tasks = append(s.state.Tasks, t)
	s.commit(ctx)
	return t, nil
}

// UpdateTask replaces a task in place, preserving identity and creation timestamp.
func (s *RenewalStore) UpdateTask(ctx context.Context, t renewal.Task) (renewal.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.state.Tasks {
		if existing.ID != t.ID {
			continue
		}
		t.ProjectID = existing.ProjectID
		t.CreatedAt = existing.CreatedAt
		s.state.Tasks[i] = t
		s.commit(ctx)
		return t, nil
	}
	return renewal.Task{}, ErrNotFound
}

// DeleteTask removes a task by identity; unknown identities are a no-op.
func (s *RenewalStore) DeleteTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.state.Tasks {
		if t.ID == id {
			s.state.Tasks = append(s.state.Tasks[:i:i], s.state.Tasks[i+1:]...)
			s.commit(ctx)
			return true
		}
	}
	return false
}

// Dashboard returns the derived dashboard view, memoized per store revision
// and calendar day so repeated reads between mutations reuse the computation.
func (s *RenewalStore) Dashboard(today time.Time) renewal.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := today.Format("2006-01-02")
	if s.dashCache.valid && s.dashCache.revision == s.revision && s.dashCache.day == day {
		return s.dashCache.dash
	}

	dash := renewal.BuildDashboard(s.state.Projects, s.state.Tenants, s.state.Tasks, today)
	s.dashCache.revision = s.revision
	s.dashCache.day = day
	s.dashCache.valid = true
	s.dashCache.dash = dash
	return dash
}

// Revision reports the mutation counter; it changes whenever state changes.
func (s *RenewalStore) Revision() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *RenewalStore) projectExists(id string) bool {
	for _, p := range s.state.Projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

// commit bumps the revision and persists the whole state. Persistence failures
// are logged and swallowed so the tracker stays usable without durable storage.
// Callers must hold the mutex.
func (s *RenewalStore) commit(ctx context.Context) {
	s.revision++
	payload, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Warn("failed to serialize renewal state", "error", err)
		return
	}
	if err := s.kv.Write(ctx, RenewalKey, string(payload)); err != nil {
		s.logger.Debug("failed to persist renewal state", "error", err)
	}
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
