// Package remotetest provides an in-memory remote.Service for workflow
// tests.
package remotetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/srstalent/talentconnect/internal/client/models"
	"github.com/srstalent/talentconnect/internal/client/remote"
)

// FakeService records calls and returns canned answers. Zero value is
// usable; set the Err* fields to force failures and the *Result fields to
// control responses. All methods are safe for concurrent use.
type FakeService struct {
	mu sync.Mutex

	Identity *models.Identity
	Jobs     []*models.Job
	Courses  []*models.Course

	ErrSignUp         error
	ErrSignIn         error
	ErrCurrent        error
	ErrUpdateMetadata error
	ErrRequestCode    error
	ErrConfirmCode    error
	ErrListJobs       error
	ErrListCourses    error
	ErrApply          error
	ErrEnroll         error
	ErrUpload         error

	// UploadURL, when set, is returned for every upload; otherwise a URL is
	// derived from the bucket and name.
	UploadURL string

	// BeforeCurrent, when set, runs before CurrentIdentity answers. Tests
	// use it to interleave mutations with an in-flight refresh.
	BeforeCurrent func()

	SignUpCalls         []SignUpCall
	RequestCodeCalls    []CodeCall
	ConfirmCodeCalls    []CodeCall
	UploadCalls         []UploadCall
	UpdateMetadataCalls []map[string]string
	AppliedJobIDs       []string
	EnrolledCourseIDs   []string
	SignOutCalls        int
}

type SignUpCall struct {
	Email    string
	Password string
	Metadata map[string]string
}

type CodeCall struct {
	Channel remote.Channel
	Target  string
	Code    string
}

type UploadCall struct {
	Bucket      string
	Name        string
	ContentType string
	Size        int
}

var _ remote.Service = (*FakeService)(nil)

func (f *FakeService) Close() error { return nil }

func (f *FakeService) SignUp(_ context.Context, email, password string, metadata map[string]string) (*models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignUpCalls = append(f.SignUpCalls, SignUpCall{Email: email, Password: password, Metadata: metadata})
	if f.ErrSignUp != nil {
		return nil, f.ErrSignUp
	}
	if f.Identity == nil {
		f.Identity = &models.Identity{ID: "fake-id", Email: email, Metadata: metadata}
	}
	return f.Identity.Clone(), nil
}

func (f *FakeService) SignIn(_ context.Context, email, _ string) (*models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ErrSignIn != nil {
		return nil, f.ErrSignIn
	}
	if f.Identity == nil {
		f.Identity = &models.Identity{ID: "fake-id", Email: email}
	}
	return f.Identity.Clone(), nil
}

func (f *FakeService) SignOut(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignOutCalls++
	f.Identity = nil
	return nil
}

func (f *FakeService) CurrentIdentity(context.Context) (*models.Identity, error) {
	f.mu.Lock()
	before := f.BeforeCurrent
	f.mu.Unlock()
	if before != nil {
		before()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ErrCurrent != nil {
		return nil, f.ErrCurrent
	}
	if f.Identity == nil {
		return nil, remote.ErrUnauthorized
	}
	return f.Identity.Clone(), nil
}

func (f *FakeService) UpdateMetadata(_ context.Context, metadata map[string]string) (*models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateMetadataCalls = append(f.UpdateMetadataCalls, metadata)
	if f.ErrUpdateMetadata != nil {
		return nil, f.ErrUpdateMetadata
	}
	if f.Identity == nil {
		return nil, remote.ErrUnauthorized
	}
	if f.Identity.Metadata == nil {
		f.Identity.Metadata = make(map[string]string)
	}
	for k, v := range metadata {
		f.Identity.Metadata[k] = v
	}
	return f.Identity.Clone(), nil
}

func (f *FakeService) RequestCode(_ context.Context, channel remote.Channel, target string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RequestCodeCalls = append(f.RequestCodeCalls, CodeCall{Channel: channel, Target: target})
	return f.ErrRequestCode
}

func (f *FakeService) ConfirmCode(_ context.Context, channel remote.Channel, target, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ConfirmCodeCalls = append(f.ConfirmCodeCalls, CodeCall{Channel: channel, Target: target, Code: code})
	return f.ErrConfirmCode
}

func (f *FakeService) ListJobs(context.Context) ([]*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ErrListJobs != nil {
		return nil, f.ErrListJobs
	}
	return f.Jobs, nil
}

func (f *FakeService) ListCourses(context.Context) ([]*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ErrListCourses != nil {
		return nil, f.ErrListCourses
	}
	return f.Courses, nil
}

func (f *FakeService) Apply(_ context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ErrApply != nil {
		return f.ErrApply
	}
	f.AppliedJobIDs = append(f.AppliedJobIDs, jobID)
	return nil
}

func (f *FakeService) ListApplications(context.Context) ([]*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Application, 0, len(f.AppliedJobIDs))
	for i, id := range f.AppliedJobIDs {
		out = append(out, &models.Application{ID: fmt.Sprintf("app-%d", i+1), JobID: id})
	}
	return out, nil
}

func (f *FakeService) Enroll(_ context.Context, courseID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ErrEnroll != nil {
		return f.ErrEnroll
	}
	f.EnrolledCourseIDs = append(f.EnrolledCourseIDs, courseID)
	return nil
}

func (f *FakeService) ListEnrollments(context.Context) ([]*models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Enrollment, 0, len(f.EnrolledCourseIDs))
	for i, id := range f.EnrolledCourseIDs {
		out = append(out, &models.Enrollment{ID: fmt.Sprintf("enr-%d", i+1), CourseID: id})
	}
	return out, nil
}

func (f *FakeService) Upload(_ context.Context, bucket, name string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UploadCalls = append(f.UploadCalls, UploadCall{Bucket: bucket, Name: name, ContentType: contentType, Size: len(data)})
	if f.ErrUpload != nil {
		return "", f.ErrUpload
	}
	if f.UploadURL != "" {
		return f.UploadURL, nil
	}
	return "https://storage.local/" + bucket + "/" + name, nil
}

// SetIdentity swaps the canned identity under the lock.
func (f *FakeService) SetIdentity(identity *models.Identity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Identity = identity
}
