package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srstalent/talentconnect/internal/common"
)

func allowedBucket(bucket string) bool {
	return bucket == common.BucketProfilePics || bucket == common.BucketResumes
}

// UploadObject accepts a multipart upload under form field "file" and
// stores it in the named bucket. The stored object's key is the uploaded
// filename, which callers make unique per account and timestamp.
func (h *Handler) UploadObject(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBucket(bucket) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown bucket"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	defer file.Close()

	if header.Size > common.MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds the 5 MB limit"})
		return
	}
	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename is required"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	url, err := h.storage.Upload(c.Request.Context(), bucket, header.Filename, contentType, file)
	if err != nil {
		h.logger.Error(c.Request.Context(), "object upload failed", "bucket", bucket, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
