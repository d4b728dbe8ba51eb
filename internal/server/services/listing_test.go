package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/server/models"
	"github.com/srstalent/talentconnect/internal/server/repositories/repomanager"
)

func newTestListingService(t *testing.T) *ListingService {
	t.Helper()
	jobs := []*models.Job{
		{ID: "j1", Title: "Frontend Developer", Company: "PixelWorks"},
		{ID: "j2", Title: "Data Analyst", Company: "Insightly"},
	}
	courses := []*models.Course{
		{ID: "c1", Title: "SQL for Analysts", Instructor: "Rohit Sharma"},
	}
	m := repomanager.NewInMemoryRepositoryManager(jobs, courses)
	return NewListingService(nil, m)
}

func TestListingService_Lists(t *testing.T) {
	ctx := context.Background()
	s := newTestListingService(t)

	jobs, err := s.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	courses, err := s.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
}

func TestListingService_ApplyAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestListingService(t)

	app, err := s.Apply(ctx, "u1", "j1")
	require.NoError(t, err)
	require.Equal(t, "j1", app.JobID)
	require.NotEmpty(t, app.ID)

	views, err := s.ListApplications(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "Frontend Developer", views[0].JobTitle)
	require.Equal(t, "PixelWorks", views[0].Company)

	// Another user sees no applications.
	views, err = s.ListApplications(ctx, "u2")
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestListingService_ApplyUnknownJob(t *testing.T) {
	ctx := context.Background()
	s := newTestListingService(t)

	_, err := s.Apply(ctx, "u1", "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListingService_ApplyTwice(t *testing.T) {
	ctx := context.Background()
	s := newTestListingService(t)

	_, err := s.Apply(ctx, "u1", "j1")
	require.NoError(t, err)
	_, err = s.Apply(ctx, "u1", "j1")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestListingService_EnrollAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestListingService(t)

	enr, err := s.Enroll(ctx, "u1", "c1")
	require.NoError(t, err)
	require.Equal(t, "c1", enr.CourseID)

	_, err = s.Enroll(ctx, "u1", "c1")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = s.Enroll(ctx, "u1", "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)

	views, err := s.ListEnrollments(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "SQL for Analysts", views[0].CourseTitle)
	require.Equal(t, "Rohit Sharma", views[0].Instructor)
}
