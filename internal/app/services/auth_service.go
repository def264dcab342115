package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pharmahub/backend/internal/app/models"
	"github.com/pharmahub/backend/internal/app/repositories"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/auth"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

// Session is a signed-in administrator with their token
type Session struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// AuthService defines authentication operations
type AuthService interface {
	Login(ctx context.Context, username, password string) (*Session, error)
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login checks the credentials and issues a session token
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("Username and password required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Warn().Str("username", username).Msg("Login attempt for unknown user")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.Warn().Str("username", username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("Admin logged in")
	return &Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// EnsureAdmin creates the given account when no user exists yet.
// It reports whether an account was created.
func (s *authServiceImpl) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	if _, err := s.userRepo.Create(ctx, username, hash); err != nil {
		return false, err
	}
	return true, nil
}
