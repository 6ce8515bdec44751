package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryAccountRepository implements AccountRepository using in-memory storage
type InMemoryAccountRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]User
}

// NewInMemoryAccountRepository creates a new in-memory account repository
func NewInMemoryAccountRepository() *InMemoryAccountRepository {
	return &InMemoryAccountRepository{
		users: make(map[uuid.UUID]User),
	}
}

// CreateUser creates a new user
func (r *InMemoryAccountRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	user := User{
		ID:                  uuid.New(),
		Email:               params.Email,
		FullName:            params.FullName,
		Bio:                 params.Bio,
		ProfilePhoto:        params.ProfilePhoto,
		PasswordHash:        params.PasswordHash,
		FederatedID:         params.FederatedID,
		Role:                params.Role,
		ReviewAlertsEnabled: params.ReviewAlertsEnabled,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	r.users[user.ID] = user
	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *InMemoryAccountRepository) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser applies the non-nil fields of params to the stored user
func (r *InMemoryAccountRepository) UpdateUser(ctx context.Context, params UpdateUserParams) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[params.ID]
	if !ok {
		return User{}, ErrUserNotFound
	}

	if params.FullName != nil {
		user.FullName = *params.FullName
	}
	if params.Bio != nil {
		user.Bio = *params.Bio
	}
	if params.ProfilePhoto != nil {
		user.ProfilePhoto = *params.ProfilePhoto
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}
	if params.ReviewAlertsEnabled != nil {
		user.ReviewAlertsEnabled = *params.ReviewAlertsEnabled
	}
	user.UpdatedAt = time.Now().UTC()

	r.users[params.ID] = user
	return user, nil
}

// FindUsers returns all users
func (r *InMemoryAccountRepository) FindUsers(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}
