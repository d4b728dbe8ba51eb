package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/server/models"
)

func TestPostgresRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, time.August, 11, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("student@example.com", "hash", []byte(`{"fullName":"Priya"}`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u1", created))

	repo := NewPostgresRepository(db)
	user, err := repo.Create(context.Background(), &models.User{
		Email:        "student@example.com",
		PasswordHash: "hash",
		Metadata:     map[string]string{"fullName": "Priya"},
	})
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, created, user.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`))

	repo := NewPostgresRepository(db)
	_, err = repo.Create(context.Background(), &models.User{Email: "taken@example.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, time.August, 11, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "metadata", "created_at"}).
		AddRow("u1", "student@example.com", "hash", []byte(`{"city":"Pune"}`), created)
	mock.ExpectQuery("SELECT id, email, password_hash, metadata, created_at FROM users").
		WithArgs("student@example.com").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	user, err := repo.GetByEmail(context.Background(), "student@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "Pune", user.Metadata["city"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, password_hash, metadata, created_at FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "metadata", "created_at"}))

	repo := NewPostgresRepository(db)
	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_MergeMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, time.August, 11, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "metadata", "created_at"}).
		AddRow("u1", "student@example.com", "hash", []byte(`{"city":"Mumbai","fullName":"Priya"}`), created)
	mock.ExpectQuery("UPDATE users SET metadata = metadata").
		WithArgs("u1", []byte(`{"city":"Mumbai"}`)).
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	user, err := repo.MergeMetadata(context.Background(), "u1", map[string]string{"city": "Mumbai"})
	require.NoError(t, err)
	require.Equal(t, "Mumbai", user.Metadata["city"])
	require.Equal(t, "Priya", user.Metadata["fullName"])
	require.NoError(t, mock.ExpectationsWereMet())
}
