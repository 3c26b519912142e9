package repository

import (
	"context"
	"errors"

	"github.com/camden-git/totenbilder/models"
)

// ErrNotFound is returned when no record or user matches a lookup.
var ErrNotFound = errors.New("not found")

// TotenbildRepository defines the read operations on the memorial archive.
// Implementations return database.ErrNotConfigured when no database exists.
type TotenbildRepository interface {
	Search(ctx context.Context, filter models.SearchFilter, page models.PageRequest) (models.ListResult, error)
	DiedOn(ctx context.Context, day, month int, sort models.TodaySort) ([]models.Totenbild, error)
	GetByID(ctx context.Context, nid int64) (*models.Totenbild, error)
	GetByAlias(ctx context.Context, alias string) (*models.Totenbild, error)
}

// UserRepository defines the account lookups needed for the admin login.
type UserRepository interface {
	GetByNameOrMail(ctx context.Context, login string) (*models.User, error)
}
