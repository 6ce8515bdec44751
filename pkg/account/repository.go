package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	// ErrUserNotFound is returned by repositories when no user exists for
	// the given id. Repositories never decide the HTTP policy; the service
	// translates this sentinel into a 404 signal.
	ErrUserNotFound = errors.New("user not found")
)

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// CreateUser creates a new user
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	// GetUserByID retrieves a user by their ID, returning ErrUserNotFound
	// when the user does not exist
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	// UpdateUser applies the non-nil fields of params to the user and
	// returns the updated record
	UpdateUser(ctx context.Context, params UpdateUserParams) (User, error)
	// FindUsers returns all users; ordering is not part of the contract
	FindUsers(ctx context.Context) ([]User, error)
}
