package usersvc

import (
	"context"
	"fmt"
	"time"

	"github.com/GuruMohith24/e-commerce-backend/internal/dal/interfaces/iuserrepo"
	"github.com/GuruMohith24/e-commerce-backend/internal/dal/postgres"
	userrepo "github.com/GuruMohith24/e-commerce-backend/internal/dal/repositories/user/postgres"
	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages customer accounts.
type UserService struct {
	repo iuserrepo.IUserRepository
}

// CreateUserModel is the service layer input for creating or updating a user.
type CreateUserModel struct {
	Name     string
	Email    string
	Password string
}

// option is a function that configures the UserService.
type option func(*UserService)

// MustNewUserService creates a new UserService.
func MustNewUserService(opts ...option) *UserService {
	s := &UserService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.repo == nil {
		panic("usersvc: storage is not configured")
	}

	return s
}

// WithPostgresClient wires the UserService to Postgres-backed storage.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *UserService) {
		s.repo = userrepo.NewPostgresUserRepository(pgClient.Pool())
	}
}

// WithRepository overrides the user repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRepository(repo iuserrepo.IUserRepository) option {
	return func(s *UserService) {
		s.repo = repo
	}
}

// CreateUser hashes the password and persists a new user.
func (s *UserService) CreateUser(ctx context.Context, model CreateUserModel) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(model.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.repo.Insert(ctx, user.User{
		Name:      model.Name,
		Email:     model.Email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetUser returns the user or a wrapped user.ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	return &u, nil
}

// ListUsers returns all users ordered by ID.
func (s *UserService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser overwrites the user's profile, re-hashing the password.
func (s *UserService) UpdateUser(
	ctx context.Context,
	id int64,
	model CreateUserModel,
) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(model.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.repo.Update(ctx, user.User{
		ID:       id,
		Name:     model.Name,
		Email:    model.Email,
		Password: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	return &updated, nil
}

// DeleteUser removes the user or returns a wrapped user.ErrUserNotFound.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	return nil
}
