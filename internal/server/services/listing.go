package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/server/models"
	"github.com/srstalent/talentconnect/internal/server/repositories/repomanager"
)

// ListingService serves the published job and course collections and
// records applications and enrollments against them.
type ListingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewListingService(db *sql.DB, m repomanager.RepositoryManager) *ListingService {
	return &ListingService{db: db, repomanager: m}
}

func (s *ListingService) ListJobs(ctx context.Context) ([]*models.Job, error) {
	return s.repomanager.Listings(s.db).ListJobs(ctx)
}

func (s *ListingService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.repomanager.Listings(s.db).ListCourses(ctx)
}

// Apply records userID's application for jobID. The job must exist, and a
// user can apply to a job only once.
func (s *ListingService) Apply(ctx context.Context, userID, jobID string) (*models.Application, error) {
	if _, err := s.repomanager.Listings(s.db).GetJob(ctx, jobID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("load job: %w", err)
	}
	return s.repomanager.Applications(s.db).CreateApplication(ctx, userID, jobID)
}

// ApplicationView is an application joined with its job's display fields.
type ApplicationView struct {
	Application *models.Application
	JobTitle    string
	Company     string
}

func (s *ListingService) ListApplications(ctx context.Context, userID string) ([]*ApplicationView, error) {
	apps, err := s.repomanager.Applications(s.db).ListApplications(ctx, userID)
	if err != nil {
		return nil, err
	}

	listings := s.repomanager.Listings(s.db)
	out := make([]*ApplicationView, 0, len(apps))
	for _, app := range apps {
		view := &ApplicationView{Application: app}
		if job, err := listings.GetJob(ctx, app.JobID); err == nil {
			view.JobTitle = job.Title
			view.Company = job.Company
		}
		out = append(out, view)
	}
	return out, nil
}

// Enroll records userID's enrollment into courseID. The course must exist,
// and a user can enroll only once.
func (s *ListingService) Enroll(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	if _, err := s.repomanager.Listings(s.db).GetCourse(ctx, courseID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("load course: %w", err)
	}
	return s.repomanager.Applications(s.db).CreateEnrollment(ctx, userID, courseID)
}

// EnrollmentView is an enrollment joined with its course's display fields.
type EnrollmentView struct {
	Enrollment  *models.Enrollment
	CourseTitle string
	Instructor  string
}

func (s *ListingService) ListEnrollments(ctx context.Context, userID string) ([]*EnrollmentView, error) {
	enrollments, err := s.repomanager.Applications(s.db).ListEnrollments(ctx, userID)
	if err != nil {
		return nil, err
	}

	listings := s.repomanager.Listings(s.db)
	out := make([]*EnrollmentView, 0, len(enrollments))
	for _, enr := range enrollments {
		view := &EnrollmentView{Enrollment: enr}
		if course, err := listings.GetCourse(ctx, enr.CourseID); err == nil {
			view.CourseTitle = course.Title
			view.Instructor = course.Instructor
		}
		out = append(out, view)
	}
	return out, nil
}
