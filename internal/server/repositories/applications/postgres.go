package applications

import (
	"context"
	"fmt"
	"strings"

	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/dbx"
	"github.com/srstalent/talentconnect/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateApplication(ctx context.Context, userID, jobID string) (*models.Application, error) {
	query := `
		INSERT INTO applications (user_id, job_id)
		VALUES ($1, $2)
		RETURNING id, status, applied_at
	`
	app := &models.Application{UserID: userID, JobID: jobID}
	err := r.db.QueryRowContext(ctx, query, userID, jobID).Scan(&app.ID, &app.Status, &app.AppliedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return app, nil
}

func (r *PostgresRepository) ListApplications(ctx context.Context, userID string) ([]*models.Application, error) {
	query := `
		SELECT id, user_id, job_id, status, applied_at
		FROM applications
		WHERE user_id = $1
		ORDER BY applied_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app := &models.Application{}
		if err := rows.Scan(&app.ID, &app.UserID, &app.JobID, &app.Status, &app.AppliedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return apps, nil
}

func (r *PostgresRepository) CreateEnrollment(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	query := `
		INSERT INTO enrollments (user_id, course_id)
		VALUES ($1, $2)
		RETURNING id, enrolled_at
	`
	enr := &models.Enrollment{UserID: userID, CourseID: courseID}
	err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(&enr.ID, &enr.EnrolledAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return enr, nil
}

func (r *PostgresRepository) ListEnrollments(ctx context.Context, userID string) ([]*models.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, enrolled_at
		FROM enrollments
		WHERE user_id = $1
		ORDER BY enrolled_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enr := &models.Enrollment{}
		if err := rows.Scan(&enr.ID, &enr.UserID, &enr.CourseID, &enr.EnrolledAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		enrollments = append(enrollments, enr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return enrollments, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
