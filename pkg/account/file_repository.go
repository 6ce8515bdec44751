package account

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// fileAccountData represents all account data stored in the file
type fileAccountData struct {
	Users map[uuid.UUID]fileUser `json:"users"` // keyed by user ID
}

// fileUser is the on-disk user shape. The password hash is serialized
// explicitly here; the public User model excludes it from JSON.
type fileUser struct {
	User
	PasswordHash string `json:"password_hash,omitempty"`
}

// FileAccountRepository implements AccountRepository using file-based storage
type FileAccountRepository struct {
	dataDir string
	data    *fileAccountData
	mutex   sync.RWMutex
}

// NewFileAccountRepository creates a new file-based account repository
func NewFileAccountRepository(dataDir string) (*FileAccountRepository, error) {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &FileAccountRepository{
		dataDir: dataDir,
		data: &fileAccountData{
			Users: make(map[uuid.UUID]fileUser),
		},
	}

	// Load existing data
	if err := repo.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return repo, nil
}

func (r *FileAccountRepository) filePath() string {
	return filepath.Join(r.dataDir, "accounts.json")
}

func (r *FileAccountRepository) load() error {
	path := r.filePath()
	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(bytes, r.data)
}

func (r *FileAccountRepository) save() error {
	bytes, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.filePath(), bytes, 0644)
}

// CreateUser creates a new user
func (r *FileAccountRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

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

	r.data.Users[user.ID] = fileUser{User: user, PasswordHash: user.PasswordHash}

	if err := r.save(); err != nil {
		// Rollback
		delete(r.data.Users, user.ID)
		return User{}, fmt.Errorf("failed to save: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *FileAccountRepository) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	stored, exists := r.data.Users[id]
	if !exists {
		return User{}, ErrUserNotFound
	}

	user := stored.User
	user.PasswordHash = stored.PasswordHash
	return user, nil
}

// UpdateUser applies the non-nil fields of params to the stored user
func (r *FileAccountRepository) UpdateUser(ctx context.Context, params UpdateUserParams) (User, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored, exists := r.data.Users[params.ID]
	if !exists {
		return User{}, ErrUserNotFound
	}
	previous := stored

	user := stored.User
	user.PasswordHash = stored.PasswordHash

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

	r.data.Users[params.ID] = fileUser{User: user, PasswordHash: user.PasswordHash}

	if err := r.save(); err != nil {
		// Rollback
		r.data.Users[params.ID] = previous
		return User{}, fmt.Errorf("failed to save: %w", err)
	}

	return user, nil
}

// FindUsers returns all users
func (r *FileAccountRepository) FindUsers(ctx context.Context) ([]User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	users := make([]User, 0, len(r.data.Users))
	for _, stored := range r.data.Users {
		user := stored.User
		user.PasswordHash = stored.PasswordHash
		users = append(users, user)
	}
	return users, nil
}
