// Package profile implements the view/edit workflow for the signed-in
// identity's metadata, including avatar and resume replacement.
package profile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/srstalent/talentconnect/internal/client/models"
	"github.com/srstalent/talentconnect/internal/client/remote"
	"github.com/srstalent/talentconnect/internal/client/session"
	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/filex"
)

// State of the profile editor.
type State int

const (
	StateViewing State = iota
	StateEditing
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	default:
		return "unknown"
	}
}

var (
	ErrNotSignedIn  = errors.New("not signed in")
	ErrNotEditing   = errors.New("profile is not in edit mode")
	ErrSaveInFlight = errors.New("save already in progress")
	ErrBadFileType  = errors.New("unsupported file type")
	ErrFileTooLarge = errors.New("file exceeds the 5 MB limit")
)

// resumeContentTypes are the accepted resume MIME types: PDF and the two
// Word document formats.
var resumeContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Editor drives Viewing -> Editing -> Saving -> Viewing over the current
// identity. Edits accumulate in a draft that never aliases the session's
// identity; a failed save keeps the draft and leaves the identity
// untouched.
type Editor struct {
	service remote.Service
	session *session.Holder
	now     func() time.Time

	mu     sync.Mutex
	state  State
	userID string
	draft  map[string]string
	avatar *filex.File
	resume *filex.File
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock replaces the wall clock used for upload path timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

func NewEditor(service remote.Service, holder *session.Holder, opts ...Option) *Editor {
	e := &Editor{
		service: service,
		session: holder,
		now:     time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Draft returns a copy of the pending field edits.
func (e *Editor) Draft() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]string, len(e.draft))
	for k, v := range e.draft {
		out[k] = v
	}
	return out
}

// Edit copies the current identity's metadata into a fresh draft and
// clears any pending file selections. Requires a signed-in session.
func (e *Editor) Edit() error {
	identity := e.session.Current()
	if identity == nil {
		return ErrNotSignedIn
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateSaving {
		return ErrSaveInFlight
	}
	e.userID = identity.ID
	e.draft = make(map[string]string, len(identity.Metadata))
	for k, v := range identity.Metadata {
		e.draft[k] = v
	}
	e.avatar = nil
	e.resume = nil
	e.state = StateEditing
	return nil
}

// SetField stages one metadata field edit.
func (e *Editor) SetField(key, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateEditing {
		return ErrNotEditing
	}
	e.draft[key] = value
	return nil
}

// AttachAvatar stages a new profile picture. Only image content up to the
// size limit is accepted; a rejected file leaves the draft unchanged.
func (e *Editor) AttachAvatar(f *filex.File) error {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return fmt.Errorf("%w: %s", ErrBadFileType, f.ContentType)
	}
	if f.Size > common.MaxUploadSize {
		return ErrFileTooLarge
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateEditing {
		return ErrNotEditing
	}
	e.avatar = f
	return nil
}

// AttachResume stages a new resume. PDF and Word documents up to the size
// limit are accepted; a rejected file leaves the draft unchanged.
func (e *Editor) AttachResume(f *filex.File) error {
	if !resumeContentTypes[f.ContentType] {
		return fmt.Errorf("%w: %s", ErrBadFileType, f.ContentType)
	}
	if f.Size > common.MaxUploadSize {
		return ErrFileTooLarge
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateEditing {
		return ErrNotEditing
	}
	e.resume = f
	return nil
}

// Cancel discards the draft and pending files and returns to Viewing.
func (e *Editor) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateEditing {
		return ErrNotEditing
	}
	e.draft = nil
	e.avatar = nil
	e.resume = nil
	e.state = StateViewing
	return nil
}

// Save commits the draft: pending avatar upload, then pending resume
// upload, then one metadata merge. The first failure aborts the whole
// save, the identity stays unmodified server-side, and the editor returns
// to Editing with the draft intact. On success the session holder is
// updated so every subscriber observes the new metadata.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	switch e.state {
	case StateSaving:
		e.mu.Unlock()
		return ErrSaveInFlight
	case StateEditing:
	default:
		e.mu.Unlock()
		return ErrNotEditing
	}
	e.state = StateSaving
	userID := e.userID
	avatar := e.avatar
	resume := e.resume
	fields := make(map[string]string, len(e.draft)+2)
	for k, v := range e.draft {
		fields[k] = v
	}
	e.mu.Unlock()

	fail := func(err error) error {
		e.mu.Lock()
		e.state = StateEditing
		e.mu.Unlock()
		return err
	}

	if avatar != nil {
		url, err := e.service.Upload(ctx, common.BucketProfilePics, e.uploadName(userID, avatar.Name), avatar.Data, avatar.ContentType)
		if err != nil {
			return fail(fmt.Errorf("upload avatar: %w", err))
		}
		fields[models.MetaProfilePicURL] = url
	}
	if resume != nil {
		url, err := e.service.Upload(ctx, common.BucketResumes, e.uploadName(userID, resume.Name), resume.Data, resume.ContentType)
		if err != nil {
			return fail(fmt.Errorf("upload resume: %w", err))
		}
		fields[models.MetaResumeURL] = url
	}

	updated, err := e.service.UpdateMetadata(ctx, fields)
	if err != nil {
		return fail(fmt.Errorf("update profile: %w", err))
	}

	e.mu.Lock()
	e.draft = nil
	e.avatar = nil
	e.resume = nil
	e.state = StateViewing
	e.mu.Unlock()

	e.session.Set(updated)
	return nil
}

// uploadName builds a per-identity, timestamped object name so a new
// upload never overwrites the previous one.
func (e *Editor) uploadName(userID, original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s_%d%s", userID, e.now().Unix(), ext)
}
