// Package models defines the client-side view of identities and listings
// returned by the remote identity & data service.
package models

// Metadata keys stored on an identity. Values are plain strings or URLs.
const (
	MetaFullName      = "fullName"
	MetaContactNumber = "contactNumber"
	MetaCollegeName   = "collegeName"
	MetaQualification = "qualification"
	MetaStream        = "stream"
	MetaCity          = "city"
	MetaGender        = "gender"
	MetaDOB           = "dob"
	MetaProfilePicURL = "profilePicUrl"
	MetaResumeURL     = "resumeUrl"
)

// Identity is the authenticated account and its profile metadata.
// The account id is opaque; metadata is merged server-side on update.
type Identity struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"metadata"`
}

// Meta returns the metadata value for key, or "" when absent.
func (i *Identity) Meta(key string) string {
	if i == nil || i.Metadata == nil {
		return ""
	}
	return i.Metadata[key]
}

// Clone returns a deep copy. Workflow drafts copy the identity so edits
// never alias the session-held value.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := &Identity{ID: i.ID, Email: i.Email}
	if i.Metadata != nil {
		c.Metadata = make(map[string]string, len(i.Metadata))
		for k, v := range i.Metadata {
			c.Metadata[k] = v
		}
	}
	return c
}
