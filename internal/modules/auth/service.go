package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostal/internal/domain"
	jwtsvc "hostal/internal/pkg/jwt"
	"hostal/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user account is disabled")
	ErrNotAuthorized      = errors.New("admin authorization failed")
)

type Service struct {
	users  *repository.UserRepository
	jwt    *jwtsvc.Service
	logger zerolog.Logger
}

func NewService(users *repository.UserRepository, jwt *jwtsvc.Service, logger zerolog.Logger) *Service {
	return &Service{users: users, jwt: jwt, logger: logger}
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user logged in")
	return &LoginResult{Token: token, User: user}, nil
}

// VerifyAdminPassword authorizes a privileged action (refunds) with an
// admin's credentials. It returns the authorizing admin's id.
func (s *Service) VerifyAdminPassword(ctx context.Context, username, password string) (int64, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotAuthorized
	}
	if err != nil {
		return 0, err
	}
	if user.Role != domain.RoleAdmin || !user.IsActive {
		return 0, ErrNotAuthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, ErrNotAuthorized
	}
	return user.ID, nil
}

// HashPassword is used by registration and the seeder.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
