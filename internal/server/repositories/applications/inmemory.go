package applications

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used by tests and handler
// wiring without a database.
type InMemoryRepository struct {
	mu          sync.RWMutex
	apps        []*models.Application
	enrollments []*models.Enrollment
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) CreateApplication(_ context.Context, userID, jobID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.UserID == userID && a.JobID == jobID {
			return nil, common.ErrorAlreadyExists
		}
	}
	app := &models.Application{
		ID:        uuid.NewString(),
		UserID:    userID,
		JobID:     jobID,
		Status:    "submitted",
		AppliedAt: time.Now(),
	}
	r.apps = append(r.apps, app)
	return app, nil
}

func (r *InMemoryRepository) ListApplications(_ context.Context, userID string) ([]*models.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Application
	for i := len(r.apps) - 1; i >= 0; i-- {
		if r.apps[i].UserID == userID {
			out = append(out, r.apps[i])
		}
	}
	return out, nil
}

func (r *InMemoryRepository) CreateEnrollment(_ context.Context, userID, courseID string) (*models.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return nil, common.ErrorAlreadyExists
		}
	}
	enr := &models.Enrollment{
		ID:         uuid.NewString(),
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	r.enrollments = append(r.enrollments, enr)
	return enr, nil
}

func (r *InMemoryRepository) ListEnrollments(_ context.Context, userID string) ([]*models.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Enrollment
	for i := len(r.enrollments) - 1; i >= 0; i-- {
		if r.enrollments[i].UserID == userID {
			out = append(out, r.enrollments[i])
		}
	}
	return out, nil
}
