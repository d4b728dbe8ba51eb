package repomanager

import (
	"context"
	"database/sql"

	"github.com/srstalent/talentconnect/internal/dbx"
	"github.com/srstalent/talentconnect/internal/server/models"
	"github.com/srstalent/talentconnect/internal/server/repositories/applications"
	"github.com/srstalent/talentconnect/internal/server/repositories/listings"
	"github.com/srstalent/talentconnect/internal/server/repositories/refreshtokens"
	"github.com/srstalent/talentconnect/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends shared map-backed repositories. The DBTX
// argument is ignored; there is no database. Used by tests and demo wiring.
type InMemoryRepositoryManager struct {
	users        *users.InMemoryRepository
	refresh      *refreshtokens.InMemoryRepository
	listings     *listings.InMemoryRepository
	applications *applications.InMemoryRepository
}

func NewInMemoryRepositoryManager(jobs []*models.Job, courses []*models.Course) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:        users.NewInMemoryRepository(),
		refresh:      refreshtokens.NewInMemoryRepository(),
		listings:     listings.NewInMemoryRepository(jobs, courses),
		applications: applications.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.users }

func (m *InMemoryRepositoryManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return m.refresh
}

func (m *InMemoryRepositoryManager) Listings(dbx.DBTX) listings.Repository { return m.listings }

func (m *InMemoryRepositoryManager) Applications(dbx.DBTX) applications.Repository {
	return m.applications
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

// InTx has no transactional backing; fn runs directly.
func (m *InMemoryRepositoryManager) InTx(_ context.Context, _ *sql.DB, fn func(tx dbx.DBTX) error) error {
	return fn(nil)
}
