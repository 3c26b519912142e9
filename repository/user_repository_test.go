package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/database"
)

func setupUserRepo(t *testing.T) (sqlmock.Sqlmock, *GormUserRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := database.InitGormDB(db, database.DriverMySQL, zap.NewNop())
	require.NoError(t, err)
	return mock, NewGormUserRepository(gormDB)
}

func TestGetByNameOrMailFound(t *testing.T) {
	mock, repo := setupUserRepo(t)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE \\(?name = \\? OR mail = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "name", "pass", "mail"}).
			AddRow(1, "admin", "$2a$10$hash", "admin@example.org"))

	user, err := repo.GetByNameOrMail(context.Background(), "admin@example.org")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.UID)
	assert.Equal(t, "admin", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByNameOrMailNotFound(t *testing.T) {
	mock, repo := setupUserRepo(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "name", "pass", "mail"}))

	_, err := repo.GetByNameOrMail(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByNameOrMailQueryError(t *testing.T) {
	mock, repo := setupUserRepo(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnError(errors.New("gone away"))

	_, err := repo.GetByNameOrMail(context.Background(), "admin")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByNameOrMailWithoutDatabase(t *testing.T) {
	_, err := NewGormUserRepository(nil).GetByNameOrMail(context.Background(), "admin")
	assert.ErrorIs(t, err, database.ErrNotConfigured)
}
