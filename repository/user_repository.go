package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/camden-git/totenbilder/database"
	"github.com/camden-git/totenbilder/models"
)

type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates the account repository. A nil db answers
// every lookup with database.ErrNotConfigured.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByNameOrMail finds the account whose name or mail equals login.
func (r *GormUserRepository) GetByNameOrMail(ctx context.Context, login string) (*models.User, error) {
	if r.db == nil {
		return nil, database.ErrNotConfigured
	}
	var user models.User
	err := r.db.WithContext(ctx).
		Where("name = ? OR mail = ?", login, login).
		Limit(1).
		Find(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.UID == 0 {
		return nil, fmt.Errorf("user %q: %w", login, ErrNotFound)
	}
	return &user, nil
}

