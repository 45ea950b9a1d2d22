package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/events"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// UserService manages account lifecycle: signup and deletion.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, bcryptCost int) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// Create registers a new end-user account. Accepting the privacy policy is a
// hard precondition; it is not re-verified at later logins.
func (s *UserService) Create(ctx context.Context, email, password string, privacyAccepted bool) (*domain.User, error) {
	if !privacyAccepted {
		return nil, apperrors.NewValidationError("privacy policy must be accepted", nil)
	}
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:           email,
		PasswordHash:    hash,
		Role:            domain.RoleUser,
		PrivacyAccepted: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get loads an account by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// Delete removes an account and everything cascading from it.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserDeleted,
			Timestamp: time.Now(),
			Payload:   events.UserDeletedPayload{UserID: id},
		})
	}
	return nil
}
