package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"storefront-backend/application/ports"
	"storefront-backend/domain"
	pkgerrors "storefront-backend/pkg/errors"
)

// NewUser is the input for registering an account. The id comes from the
// external identity provider.
type NewUser struct {
	ID     string
	Name   string
	Email  string
	Photo  string
	Gender string
	DOB    time.Time
}

// UserService owns account reads and writes. User mutations fire no cache
// invalidation: no listing cache is keyed on users, and the dashboard's user
// counts refresh with the next admin-flagged mutation.
type UserService struct {
	users  ports.UserRepository
	logger *zap.Logger
}

// NewUserService creates a user service.
func NewUserService(users ports.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// Create registers an account. Registering an id that already exists is not
// an error; the existing account is returned so the caller can greet the
// returning user.
func (s *UserService) Create(ctx context.Context, input NewUser) (*domain.User, bool, error) {
	existing, err := s.users.ByID(ctx, input.ID)
	if err == nil {
		return existing, false, nil
	}
	if !pkgerrors.IsNotFound(err) {
		return nil, false, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        input.ID,
		Name:      input.Name,
		Email:     input.Email,
		Photo:     input.Photo,
		Gender:    input.Gender,
		Role:      domain.RoleUser,
		DOB:       input.DOB,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID))
	return user, true, nil
}

// All returns every account.
func (s *UserService) All(ctx context.Context) ([]domain.User, error) {
	return s.users.All(ctx)
}

// ByID returns a single account.
func (s *UserService) ByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.ByID(ctx, id)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.ByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
