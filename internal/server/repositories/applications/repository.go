// Package applications declares the repository contract for job
// applications and course enrollments.
package applications

import (
	"context"

	"github.com/srstalent/talentconnect/internal/server/models"
)

type Repository interface {
	// CreateApplication records a user's application for a job. Applying
	// twice for the same job yields common.ErrorAlreadyExists.
	CreateApplication(ctx context.Context, userID, jobID string) (*models.Application, error)

	// ListApplications returns the user's applications, newest first.
	ListApplications(ctx context.Context, userID string) ([]*models.Application, error)

	// CreateEnrollment records a user's enrollment into a course. Enrolling
	// twice yields common.ErrorAlreadyExists.
	CreateEnrollment(ctx context.Context, userID, courseID string) (*models.Enrollment, error)

	// ListEnrollments returns the user's enrollments, newest first.
	ListEnrollments(ctx context.Context, userID string) ([]*models.Enrollment, error)
}
