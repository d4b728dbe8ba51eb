package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used by tests and handler
// wiring without a database.
type InMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.User
	byEml map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:  make(map[string]*models.User),
		byEml: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEml[user.Email]; exists {
		return nil, common.ErrorAlreadyExists
	}
	u := cloneUser(user)
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	if u.Metadata == nil {
		u.Metadata = map[string]string{}
	}
	r.byID[u.ID] = u
	r.byEml[u.Email] = u.ID
	return cloneUser(u), nil
}

func (r *InMemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEml[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneUser(r.byID[id]), nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneUser(u), nil
}

func (r *InMemoryRepository) MergeMetadata(_ context.Context, id string, fields map[string]string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if u.Metadata == nil {
		u.Metadata = map[string]string{}
	}
	for k, v := range fields {
		u.Metadata[k] = v
	}
	return cloneUser(u), nil
}

func cloneUser(u *models.User) *models.User {
	c := *u
	if u.Metadata != nil {
		c.Metadata = make(map[string]string, len(u.Metadata))
		for k, v := range u.Metadata {
			c.Metadata[k] = v
		}
	}
	return &c
}
