// Package users declares the repository contract for account storage.
package users

import (
	"context"

	"github.com/srstalent/talentconnect/internal/server/models"
)

type Repository interface {
	// Create inserts a new account and returns it with the generated id.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the account with the given email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the account with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// MergeMetadata merges the given fields into the account's metadata and
	// returns the updated account. Existing keys not named are kept.
	MergeMetadata(ctx context.Context, id string, fields map[string]string) (*models.User, error)
}
