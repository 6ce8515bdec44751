package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	apperrors "github.com/reviewhub/accounts/pkg/errors"
	"github.com/reviewhub/accounts/pkg/password"
	"github.com/reviewhub/accounts/pkg/response"
	"github.com/reviewhub/accounts/pkg/storage"
	"github.com/reviewhub/accounts/pkg/utils"
	"golang.org/x/exp/slog"
)

// AccountService provides account lifecycle operations
type AccountService struct {
	repo   AccountRepository
	hasher password.PasswordHasher
}

// NewAccountService creates a new account service
func NewAccountService(repo AccountRepository, hasher password.PasswordHasher) *AccountService {
	return &AccountService{
		repo:   repo,
		hasher: hasher,
	}
}

// getUser loads a user and maps the repository sentinel to a 404 signal
func (s *AccountService) getUser(ctx context.Context, userID uuid.UUID) (User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")
		}
		return User{}, err
	}
	return user, nil
}

// UpdatePassword sets or updates a user's password according to the
// provisioning-path rules:
//
//   - accounts without a stored password (federated-only) claim a local
//     password directly, no current-password verification;
//   - accounts with a stored password must supply the matching current
//     password before the new one is accepted.
//
// Exactly one write happens on success; failure branches write nothing.
func (s *AccountService) UpdatePassword(ctx context.Context, userID uuid.UUID, params UpdatePasswordParams) (response.Response[CredentialOwner], error) {
	return response.Run(ctx, "Failed to update password", "User", func(ctx context.Context) (response.Response[CredentialOwner], error) {
		user, err := s.getUser(ctx, userID)
		if err != nil {
			return response.Response[CredentialOwner]{}, err
		}

		message := "Password set successfully"
		if user.Provisioning().HasPassword() {
			if params.CurrentPassword == "" {
				return response.Response[CredentialOwner]{}, apperrors.New(apperrors.ErrCodeMissingRequired, "Current password is required")
			}

			match, err := s.hasher.Verify(params.CurrentPassword, user.PasswordHash)
			if err != nil {
				return response.Response[CredentialOwner]{}, fmt.Errorf("failed to verify current password: %w", err)
			}
			if !match {
				slog.Info("Invalid current password", "userId", userID)
				return response.Response[CredentialOwner]{}, apperrors.New(apperrors.ErrCodeInvalidCredentials, "Invalid current password")
			}
			message = "Password updated successfully"
		}

		hash, err := s.hasher.Hash(params.NewPassword)
		if err != nil {
			return response.Response[CredentialOwner]{}, fmt.Errorf("failed to hash new password: %w", err)
		}

		// The hash is the sole mutation; untouched fields are not rewritten
		updated, err := s.repo.UpdateUser(ctx, UpdateUserParams{
			ID:           userID,
			PasswordHash: &hash,
		})
		if err != nil {
			return response.Response[CredentialOwner]{}, fmt.Errorf("failed to persist password: %w", err)
		}

		return response.Success(updated.CredentialOwner(), message), nil
	})
}

// UpdateProfile merges the supplied fields into the user's profile. Trimmed
// non-empty values win; whitespace-only input keeps the stored value. The
// photo is replaced only when an uploaded asset is supplied — the upload
// itself happened upstream, this is an ordering contract, not a transaction.
func (s *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams, asset *storage.UploadedAsset) (response.Response[User], error) {
	return response.Run(ctx, "Failed to update profile", "Profile", func(ctx context.Context) (response.Response[User], error) {
		user, err := s.getUser(ctx, userID)
		if err != nil {
			return response.Response[User]{}, err
		}

		fullName := utils.TrimmedOrDefault(params.FullName, user.FullName)
		bio := utils.TrimmedOrDefault(params.Bio, user.Bio)
		profilePhoto := user.ProfilePhoto
		if asset != nil {
			profilePhoto = asset.URL
		}

		updated, err := s.repo.UpdateUser(ctx, UpdateUserParams{
			ID:           userID,
			FullName:     &fullName,
			Bio:          &bio,
			ProfilePhoto: &profilePhoto,
		})
		if err != nil {
			return response.Response[User]{}, fmt.Errorf("failed to persist profile: %w", err)
		}

		return response.Success(updated, "User profile updated successfully"), nil
	})
}

// GetProfile returns the fixed profile projection for one user
func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (response.Response[UserProfile], error) {
	return response.Run(ctx, "Failed to get profile", "User", func(ctx context.Context) (response.Response[UserProfile], error) {
		user, err := s.getUser(ctx, userID)
		if err != nil {
			return response.Response[UserProfile]{}, err
		}
		return response.Success(user.Profile(), "User profile retrieved successfully"), nil
	})
}

// GetAllUsers returns the profile projection across all users
func (s *AccountService) GetAllUsers(ctx context.Context) (response.Response[[]UserProfile], error) {
	return response.Run(ctx, "Failed to get all users", "User", func(ctx context.Context) (response.Response[[]UserProfile], error) {
		users, err := s.repo.FindUsers(ctx)
		if err != nil {
			return response.Response[[]UserProfile]{}, fmt.Errorf("failed to find users: %w", err)
		}

		profiles := make([]UserProfile, 0, len(users))
		for _, user := range users {
			profiles = append(profiles, user.Profile())
		}
		return response.Success(profiles, "All users retrieved successfully"), nil
	})
}

// ChangeReviewAlert flips the user's review-alert preference. Plain
// read-then-write: concurrent toggles on the same user are last-write-wins.
func (s *AccountService) ChangeReviewAlert(ctx context.Context, userID uuid.UUID) (response.Response[User], error) {
	return response.Run(ctx, "Failed to change review alert", "User", func(ctx context.Context) (response.Response[User], error) {
		user, err := s.getUser(ctx, userID)
		if err != nil {
			return response.Response[User]{}, err
		}

		enabled := !user.ReviewAlertsEnabled
		updated, err := s.repo.UpdateUser(ctx, UpdateUserParams{
			ID:                  userID,
			ReviewAlertsEnabled: &enabled,
		})
		if err != nil {
			return response.Response[User]{}, fmt.Errorf("failed to persist review alert: %w", err)
		}

		state := "disabled"
		if updated.ReviewAlertsEnabled {
			state = "enabled"
		}
		return response.Success(updated, fmt.Sprintf("Review Alert has been %s successfully.", state)), nil
	})
}

// CreateUser provisions a new account. Plaintext passwords are hashed here;
// federated accounts may arrive with no password at all.
func (s *AccountService) CreateUser(ctx context.Context, params CreateUserParams, plainPassword string) (response.Response[User], error) {
	return response.Run(ctx, "Failed to create user", "User", func(ctx context.Context) (response.Response[User], error) {
		if params.Email == "" {
			return response.Response[User]{}, apperrors.New(apperrors.ErrCodeMissingRequired, "Email is required")
		}
		if plainPassword == "" && params.FederatedID == "" {
			return response.Response[User]{}, apperrors.New(apperrors.ErrCodeMissingRequired, "Either a password or a federated identity is required")
		}

		if plainPassword != "" {
			hash, err := s.hasher.Hash(plainPassword)
			if err != nil {
				return response.Response[User]{}, fmt.Errorf("failed to hash password: %w", err)
			}
			params.PasswordHash = hash
		}

		user, err := s.repo.CreateUser(ctx, params)
		if err != nil {
			return response.Response[User]{}, fmt.Errorf("failed to create user: %w", err)
		}

		slog.Info("Created user", "userId", user.ID, "provisioning", user.Provisioning())
		return response.Success(user, "User created successfully"), nil
	})
}
