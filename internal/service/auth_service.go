package service

import (
	"context"
	"time"

	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// TokenPayload is the claim payload echoed back to the client after login.
// The signed token string itself travels only in the cookie.
type TokenPayload struct {
	SubjectID int64       `json:"subjectId"`
	Role      domain.Role `json:"role"`
}

// LoginResult carries everything the transport layer needs to finish a login:
// the signed token destined for the cookie and the payload for the body.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	TTL       time.Duration
	Payload   TokenPayload
}

// AuthService coordinates credential verification and token issuance.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:  users,
		tokens: auth.NewTokenManager(cfg),
	}
}

// VerifyUser checks an email/password pair against the stored hash. Unknown
// email and wrong password collapse into one generic failure so callers
// cannot probe which addresses have accounts.
func (s *AuthService) VerifyUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}
	return user, nil
}

// Login authenticates any account and issues its session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.VerifyUser(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// AdminLogin authenticates an account that must hold an administrator role.
// A valid login by a plain user is denied with the same generic error as a
// bad password.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.VerifyUser(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !user.Role.IsAdmin() {
		return nil, apperrors.NewInvalidCredentials()
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (*LoginResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		// signing internals never reach the caller
		return nil, apperrors.NewUnauthorized("authentication failed")
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		TTL:       s.tokens.TTL(user.Role),
		Payload:   TokenPayload{SubjectID: user.ID, Role: user.Role},
	}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
