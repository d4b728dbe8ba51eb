package listings

import (
	"context"
	"sync"

	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/server/models"
)

// InMemoryRepository serves a fixed set of listings from memory. Used by
// tests and demo wiring without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	jobs    []*models.Job
	courses []*models.Course
}

func NewInMemoryRepository(jobs []*models.Job, courses []*models.Course) *InMemoryRepository {
	return &InMemoryRepository{jobs: jobs, courses: courses}
}

func (r *InMemoryRepository) ListJobs(context.Context) ([]*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *InMemoryRepository) GetJob(_ context.Context, id string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) ListCourses(context.Context) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

func (r *InMemoryRepository) GetCourse(_ context.Context, id string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}
