package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// Blob storage buckets. The profile workflow uploads avatars and resumes to
// these buckets under per-identity, timestamp-qualified keys.
const (
	BucketProfilePics = "profile-pics"
	BucketResumes     = "resumes"
)

// MaxUploadSize is the client-side limit for avatar and resume files.
// Files larger than this are rejected before any network call.
const MaxUploadSize = 5 * 1024 * 1024
