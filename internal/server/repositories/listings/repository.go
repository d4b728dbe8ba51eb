// Package listings declares the repository contract for the published job
// and course collections.
package listings

import (
	"context"

	"github.com/srstalent/talentconnect/internal/server/models"
)

type Repository interface {
	// ListJobs returns all published jobs, newest first.
	ListJobs(ctx context.Context) ([]*models.Job, error)

	// GetJob returns one job by id, or common.ErrorNotFound.
	GetJob(ctx context.Context, id string) (*models.Job, error)

	// ListCourses returns all published courses.
	ListCourses(ctx context.Context) ([]*models.Course, error)

	// GetCourse returns one course by id, or common.ErrorNotFound.
	GetCourse(ctx context.Context, id string) (*models.Course, error)
}
