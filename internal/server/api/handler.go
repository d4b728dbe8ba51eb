// Package api exposes the HTTP surface of the TalentConnect server: JSON
// endpoints under /api/v1 plus health and metrics probes.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srstalent/talentconnect/internal/logging"
	"github.com/srstalent/talentconnect/internal/server/services"
)

// ObjectStore uploads a file into a bucket and returns its public URL.
// Satisfied by services.StorageService.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error)
}

type Handler struct {
	users        *services.UserService
	verification *services.VerificationService
	listings     *services.ListingService
	storage      ObjectStore
	logger       logging.Logger
}

func NewHandler(users *services.UserService, verification *services.VerificationService,
	listings *services.ListingService, storage ObjectStore, logger logging.Logger) *Handler {
	return &Handler{
		users:        users,
		verification: verification,
		listings:     listings,
		storage:      storage,
		logger:       logger,
	}
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
