package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/models"
	"github.com/camden-git/totenbilder/repository"
)

// ErrInvalidCredentials is the single rejection for every failed login,
// whatever the cause.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	users  repository.UserRepository
	logger *zap.Logger
	// compared against when the account does not exist so both rejection
	// paths cost one bcrypt comparison
	dummy models.User
}

func NewAuthService(users repository.UserRepository, logger *zap.Logger) *AuthService {
	s := &AuthService{users: users, logger: logger.Named("auth_service")}
	if err := s.dummy.SetPassword(uuid.NewString()); err != nil {
		s.logger.Warn("failed to prepare dummy password hash", zap.Error(err))
	}
	return s
}

// Authenticate resolves login (account name or mail address) and verifies
// password. Any failure, including an unavailable database, yields
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (models.SessionUser, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return models.SessionUser{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByNameOrMail(ctx, login)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("user lookup failed during login", zap.Error(err))
		}
		s.dummy.CheckPassword(password)
		return models.SessionUser{}, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return models.SessionUser{}, ErrInvalidCredentials
	}

	s.logger.Info("administrator logged in", zap.Uint("uid", user.UID))
	return user.SessionUser(), nil
}
