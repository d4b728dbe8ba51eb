package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/srstalent/talentconnect/internal/client/models"
	"github.com/srstalent/talentconnect/internal/client/remote"
	"github.com/srstalent/talentconnect/internal/client/remote/remotetest"
	"github.com/srstalent/talentconnect/internal/client/session"
	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/filex"
	"github.com/srstalent/talentconnect/internal/logging"
)

func newEditor(t *testing.T, svc *remotetest.FakeService) (*Editor, *session.Holder) {
	t.Helper()
	holder := session.NewHolder(svc, logging.NewNopLogger())
	holder.Set(&models.Identity{
		ID:    "u1",
		Email: "jane@example.com",
		Metadata: map[string]string{
			models.MetaFullName: "Jane Candidate",
			models.MetaCity:     "Pune",
		},
	})
	fixed := time.Unix(1700000000, 0)
	return NewEditor(svc, holder, WithClock(func() time.Time { return fixed })), holder
}

func pngFile(size int) *filex.File {
	return &filex.File{Name: "avatar.png", Size: int64(size), ContentType: "image/png", Data: make([]byte, size)}
}

func pdfFile(size int) *filex.File {
	return &filex.File{Name: "resume.pdf", Size: int64(size), ContentType: "application/pdf", Data: make([]byte, size)}
}

func TestEdit_RequiresSignedInIdentity(t *testing.T) {
	svc := &remotetest.FakeService{}
	holder := session.NewHolder(svc, logging.NewNopLogger())
	e := NewEditor(svc, holder)

	require.ErrorIs(t, e.Edit(), ErrNotSignedIn)
	require.Equal(t, StateViewing, e.State())
}

func TestEdit_CopiesMetadataIntoDraft(t *testing.T) {
	e, holder := newEditor(t, &remotetest.FakeService{})
	require.NoError(t, e.Edit())
	require.Equal(t, StateEditing, e.State())

	require.NoError(t, e.SetField(models.MetaCity, "Mumbai"))
	require.Equal(t, "Mumbai", e.Draft()[models.MetaCity])
	require.Equal(t, "Pune", holder.Current().Meta(models.MetaCity), "draft edits never alias the session identity")
}

func TestAttachAvatar_RejectsNonImageAndOversize(t *testing.T) {
	e, _ := newEditor(t, &remotetest.FakeService{})
	require.NoError(t, e.Edit())

	err := e.AttachAvatar(&filex.File{Name: "notes.txt", Size: 10, ContentType: "text/plain"})
	require.ErrorIs(t, err, ErrBadFileType)

	err = e.AttachAvatar(pngFile(common.MaxUploadSize + 1))
	require.ErrorIs(t, err, ErrFileTooLarge)

	require.NoError(t, e.AttachAvatar(pngFile(1024)))
}

func TestAttachResume_AcceptsPDFAndWordOnly(t *testing.T) {
	e, _ := newEditor(t, &remotetest.FakeService{})
	require.NoError(t, e.Edit())

	require.NoError(t, e.AttachResume(pdfFile(2048)))
	require.NoError(t, e.AttachResume(&filex.File{
		Name: "cv.docx", Size: 100,
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}))
	require.NoError(t, e.AttachResume(&filex.File{Name: "cv.doc", Size: 100, ContentType: "application/msword"}))

	err := e.AttachResume(&filex.File{Name: "cv.png", Size: 100, ContentType: "image/png"})
	require.ErrorIs(t, err, ErrBadFileType)

	err = e.AttachResume(pdfFile(common.MaxUploadSize + 1))
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSave_UploadsFilesThenMergesMetadata(t *testing.T) {
	svc := &remotetest.FakeService{Identity: &models.Identity{ID: "u1", Email: "jane@example.com"}}
	e, holder := newEditor(t, svc)
	require.NoError(t, e.Edit())
	require.NoError(t, e.SetField(models.MetaCity, "Mumbai"))
	require.NoError(t, e.AttachAvatar(pngFile(1024)))
	require.NoError(t, e.AttachResume(pdfFile(2048)))

	require.NoError(t, e.Save(context.Background()))
	require.Equal(t, StateViewing, e.State())

	require.Len(t, svc.UploadCalls, 2)
	require.Equal(t, common.BucketProfilePics, svc.UploadCalls[0].Bucket)
	require.Equal(t, "u1_1700000000.png", svc.UploadCalls[0].Name)
	require.Equal(t, common.BucketResumes, svc.UploadCalls[1].Bucket)
	require.Equal(t, "u1_1700000000.pdf", svc.UploadCalls[1].Name)

	require.Len(t, svc.UpdateMetadataCalls, 1)
	merged := svc.UpdateMetadataCalls[0]
	require.Equal(t, "Mumbai", merged[models.MetaCity])
	require.Contains(t, merged[models.MetaProfilePicURL], "profile-pics/u1_1700000000.png")
	require.Contains(t, merged[models.MetaResumeURL], "resumes/u1_1700000000.pdf")

	require.Equal(t, "Mumbai", holder.Current().Meta(models.MetaCity), "session observes the saved profile")
}

func TestSave_AvatarFailureAbortsWholeSave(t *testing.T) {
	svc := &remotetest.FakeService{ErrUpload: remote.ErrUnavailable}
	e, holder := newEditor(t, svc)
	require.NoError(t, e.Edit())
	require.NoError(t, e.SetField(models.MetaCity, "Mumbai"))
	require.NoError(t, e.AttachAvatar(pngFile(1024)))
	require.NoError(t, e.AttachResume(pdfFile(2048)))

	err := e.Save(context.Background())
	require.ErrorIs(t, err, remote.ErrUnavailable)
	require.Equal(t, StateEditing, e.State())

	require.Len(t, svc.UploadCalls, 1, "resume upload never attempted after avatar failure")
	require.Empty(t, svc.UpdateMetadataCalls, "metadata never merged")
	require.Equal(t, "Pune", holder.Current().Meta(models.MetaCity), "identity unchanged")
	require.Equal(t, "Mumbai", e.Draft()[models.MetaCity], "draft preserved for retry")
}

func TestSave_MetadataFailureKeepsEditing(t *testing.T) {
	svc := &remotetest.FakeService{ErrUpdateMetadata: remote.ErrRejected}
	e, holder := newEditor(t, svc)
	require.NoError(t, e.Edit())
	require.NoError(t, e.SetField(models.MetaCity, "Mumbai"))

	err := e.Save(context.Background())
	require.ErrorIs(t, err, remote.ErrRejected)
	require.Equal(t, StateEditing, e.State())
	require.Equal(t, "Pune", holder.Current().Meta(models.MetaCity))
}

func TestCancel_DiscardsDraftUnconditionally(t *testing.T) {
	e, holder := newEditor(t, &remotetest.FakeService{})
	require.NoError(t, e.Edit())
	require.NoError(t, e.SetField(models.MetaCity, "Mumbai"))
	require.NoError(t, e.AttachAvatar(pngFile(10)))

	require.NoError(t, e.Cancel())
	require.Equal(t, StateViewing, e.State())
	require.Empty(t, e.Draft())
	require.Equal(t, "Pune", holder.Current().Meta(models.MetaCity))

	require.ErrorIs(t, e.Cancel(), ErrNotEditing)
}

func TestEdit_ClearsStaleFileSelections(t *testing.T) {
	svc := &remotetest.FakeService{Identity: &models.Identity{ID: "u1"}}
	e, _ := newEditor(t, svc)
	require.NoError(t, e.Edit())
	require.NoError(t, e.AttachAvatar(pngFile(10)))
	require.NoError(t, e.Cancel())

	// Re-entering edit mode must not resurrect the previous selection.
	require.NoError(t, e.Edit())
	require.NoError(t, e.Save(context.Background()))
	require.Empty(t, svc.UploadCalls)
}
