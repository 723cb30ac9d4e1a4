package iuserrepo

import (
	"context"

	"github.com/GuruMohith24/e-commerce-backend/internal/service/models/user"
)

// IUserRepository is an interface for the user repository.
type IUserRepository interface {
	// Insert persists a new user and returns it with the assigned ID.
	Insert(ctx context.Context, u user.User) (user.User, error)

	// Get returns the user or user.ErrUserNotFound if it does not exist.
	Get(ctx context.Context, id int64) (user.User, error)

	// List returns all users ordered by ID.
	List(ctx context.Context) ([]user.User, error)

	// Update overwrites an existing user or returns user.ErrUserNotFound.
	Update(ctx context.Context, u user.User) (user.User, error)

	// Delete removes a user or returns user.ErrUserNotFound.
	Delete(ctx context.Context, id int64) error
}
