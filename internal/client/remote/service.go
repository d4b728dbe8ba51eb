package remote

import (
	"context"

	"github.com/srstalent/talentconnect/internal/client/models"
)

// Channel identifies the contact channel a verification code is sent over.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

// Service is the remote identity & data service boundary consumed by the
// workflows. It is never implemented by them; see HTTPService for the real
// transport and the workflow tests for fakes.
type Service interface {
	Close() error

	// Identity operations.
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*models.Identity, error)
	SignIn(ctx context.Context, email, password string) (*models.Identity, error)
	SignOut(ctx context.Context) error
	CurrentIdentity(ctx context.Context) (*models.Identity, error)
	// UpdateMetadata merges the given fields into the identity's metadata
	// and returns the updated identity.
	UpdateMetadata(ctx context.Context, metadata map[string]string) (*models.Identity, error)

	// Verification operations.
	RequestCode(ctx context.Context, channel Channel, target string) error
	ConfirmCode(ctx context.Context, channel Channel, target, code string) error

	// Listing queries and record inserts.
	ListJobs(ctx context.Context) ([]*models.Job, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	Apply(ctx context.Context, jobID string) error
	ListApplications(ctx context.Context) ([]*models.Application, error)
	Enroll(ctx context.Context, courseID string) error
	ListEnrollments(ctx context.Context) ([]*models.Enrollment, error)

	// Upload stores a blob in the named bucket and returns its public URL.
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string) (string, error)
}
