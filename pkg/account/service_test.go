package account

import (
	"context"
	"testing"

	"github.com/google/uuid"
	apperrors "github.com/reviewhub/accounts/pkg/errors"
	"github.com/reviewhub/accounts/pkg/password"
	"github.com/reviewhub/accounts/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepository wraps a repository and counts writes, so tests can
// assert that failure branches never persist anything.
type countingRepository struct {
	AccountRepository
	updateCalls int
}

func (r *countingRepository) UpdateUser(ctx context.Context, params UpdateUserParams) (User, error) {
	r.updateCalls++
	return r.AccountRepository.UpdateUser(ctx, params)
}

func setupAccountService(t *testing.T) (*AccountService, *countingRepository, password.PasswordHasher) {
	t.Helper()
	repo := &countingRepository{AccountRepository: NewInMemoryAccountRepository()}
	hasher := &password.BcryptV1Hasher{}
	service := NewAccountService(repo, hasher)
	return service, repo, hasher
}

func createLocalUser(t *testing.T, repo AccountRepository, hasher password.PasswordHasher, plainPassword string) User {
	t.Helper()
	hash, err := hasher.Hash(plainPassword)
	require.NoError(t, err)

	user, err := repo.CreateUser(context.Background(), CreateUserParams{
		Email:        "local@example.com",
		FullName:     "Local User",
		PasswordHash: hash,
		Role:         "USER",
	})
	require.NoError(t, err)
	return user
}

func createFederatedUser(t *testing.T, repo AccountRepository) User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), CreateUserParams{
		Email:       "federated@example.com",
		FullName:    "Federated User",
		FederatedID: "google-oauth2|12345",
		Role:        "USER",
	})
	require.NoError(t, err)
	return user
}

func TestUpdatePassword_FederatedUserSetsPasswordWithoutCurrent(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	user := createFederatedUser(t, repo)

	resp, err := service.UpdatePassword(ctx, user.ID, UpdatePasswordParams{
		NewPassword: "brand-new-secret",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Password set successfully", resp.Message)
	assert.Equal(t, user.ID, resp.Data.ID)
	assert.Equal(t, user.Email, resp.Data.Email)

	// Stored hash verifies against the new plaintext
	stored, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	match, err := hasher.Verify("brand-new-secret", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)
	assert.Equal(t, ProvisioningFederatedWithPassword, stored.Provisioning())
}

func TestUpdatePassword_MissingCurrentPasswordFails(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	user := createLocalUser(t, repo, hasher, "original-secret")
	writesBefore := repo.updateCalls

	_, err := service.UpdatePassword(ctx, user.ID, UpdatePasswordParams{
		NewPassword: "new-secret",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMissingRequired))

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatusCode())
	assert.Equal(t, "Current password is required", appErr.Message)

	// No write happened
	assert.Equal(t, writesBefore, repo.updateCalls)
	stored, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
}

func TestUpdatePassword_WrongCurrentPasswordFails(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	user := createLocalUser(t, repo, hasher, "original-secret")
	writesBefore := repo.updateCalls

	_, err := service.UpdatePassword(ctx, user.ID, UpdatePasswordParams{
		CurrentPassword: "not-the-original",
		NewPassword:     "new-secret",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidCredentials))

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatusCode())
	assert.Equal(t, "Invalid current password", appErr.Message)

	assert.Equal(t, writesBefore, repo.updateCalls)
}

func TestUpdatePassword_CorrectCurrentPasswordSucceeds(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	user := createLocalUser(t, repo, hasher, "original-secret")
	writesBefore := repo.updateCalls

	resp, err := service.UpdatePassword(ctx, user.ID, UpdatePasswordParams{
		CurrentPassword: "original-secret",
		NewPassword:     "new-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Password updated successfully", resp.Message)

	// Exactly one write
	assert.Equal(t, writesBefore+1, repo.updateCalls)

	stored, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)

	match, err := hasher.Verify("new-secret", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Verify("original-secret", stored.PasswordHash)
	require.NoError(t, err)
	assert.False(t, match, "old plaintext must no longer verify")

	// Untouched fields were not rewritten
	assert.Equal(t, user.FullName, stored.FullName)
	assert.Equal(t, user.Email, stored.Email)
}

func TestUpdatePassword_UserNotFound(t *testing.T) {
	service, repo, _ := setupAccountService(t)
	ctx := context.Background()

	_, err := service.UpdatePassword(ctx, uuid.New(), UpdatePasswordParams{
		NewPassword: "whatever",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUserNotFound))

	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPStatusCode())
	assert.Equal(t, "User not found", appErr.Message)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateProfile_WhitespaceKeepsExistingValues(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	user := createLocalUser(t, repo, hasher, "secret")

	resp, err := service.UpdateProfile(ctx, user.ID, UpdateProfileParams{
		FullName: "  ",
		Bio:      "",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "User profile updated successfully", resp.Message)
	assert.Equal(t, "Local User", resp.Data.FullName)
	assert.Equal(t, user.Bio, resp.Data.Bio)
	assert.Equal(t, user.ProfilePhoto, resp.Data.ProfilePhoto)
}

func TestUpdateProfile_NonEmptyValuesWin(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	user := createLocalUser(t, repo, hasher, "secret")

	resp, err := service.UpdateProfile(ctx, user.ID, UpdateProfileParams{
		FullName: "  Alice  ",
		Bio:      "Writes reviews.",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Data.FullName)
	assert.Equal(t, "Writes reviews.", resp.Data.Bio)
}

func TestUpdateProfile_UploadedAssetReplacesPhoto(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	user := createLocalUser(t, repo, hasher, "secret")

	asset := &storage.UploadedAsset{
		URL: "https://cdn.example.com/photos/abc.jpg",
		Key: "photos/abc.jpg",
	}
	resp, err := service.UpdateProfile(ctx, user.ID, UpdateProfileParams{}, asset)
	require.NoError(t, err)
	assert.Equal(t, asset.URL, resp.Data.ProfilePhoto)

	// Without an asset the photo is retained
	resp, err = service.UpdateProfile(ctx, user.ID, UpdateProfileParams{FullName: "Alice"}, nil)
	require.NoError(t, err)
	assert.Equal(t, asset.URL, resp.Data.ProfilePhoto)
}

func TestChangeReviewAlert_TogglesBackAndForth(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	user := createLocalUser(t, repo, hasher, "secret")
	require.False(t, user.ReviewAlertsEnabled)

	resp, err := service.ChangeReviewAlert(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, resp.Data.ReviewAlertsEnabled)
	assert.Equal(t, "Review Alert has been enabled successfully.", resp.Message)

	resp, err = service.ChangeReviewAlert(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, resp.Data.ReviewAlertsEnabled)
	assert.Equal(t, "Review Alert has been disabled successfully.", resp.Message)

	// Back to the original value after two toggles
	stored, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ReviewAlertsEnabled, stored.ReviewAlertsEnabled)
}

func TestOperationsOnMissingUserFailWith404(t *testing.T) {
	service, repo, _ := setupAccountService(t)
	ctx := context.Background()
	missing := uuid.New()

	_, err := service.GetProfile(ctx, missing)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUserNotFound))

	_, err = service.UpdateProfile(ctx, missing, UpdateProfileParams{FullName: "Alice"}, nil)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUserNotFound))

	_, err = service.ChangeReviewAlert(ctx, missing)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUserNotFound))

	assert.Zero(t, repo.updateCalls, "404 paths must not write")
}

func TestGetProfile_ProjectsFixedFieldSet(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	user := createLocalUser(t, repo, hasher, "secret")

	resp, err := service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "User profile retrieved successfully", resp.Message)
	assert.Equal(t, user.ID, resp.Data.ID)
	assert.Equal(t, user.Email, resp.Data.Email)
	assert.Equal(t, user.Role, resp.Data.Role)
	assert.Equal(t, user.FullName, resp.Data.FullName)
	assert.WithinDuration(t, user.CreatedAt, resp.Data.CreatedAt, 0)
}

func TestGetAllUsers(t *testing.T) {
	service, repo, hasher := setupAccountService(t)
	ctx := context.Background()

	createLocalUser(t, repo, hasher, "secret")
	createFederatedUser(t, repo)

	resp, err := service.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "All users retrieved successfully", resp.Message)
	assert.Len(t, resp.Data, 2)
}

func TestCreateUser_RequiresCredentialOrFederatedIdentity(t *testing.T) {
	service, _, _ := setupAccountService(t)
	ctx := context.Background()

	_, err := service.CreateUser(ctx, CreateUserParams{Email: "nobody@example.com"}, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMissingRequired))

	resp, err := service.CreateUser(ctx, CreateUserParams{Email: "alice@example.com"}, "secret")
	require.NoError(t, err)
	assert.Equal(t, ProvisioningLocal, resp.Data.Provisioning())
}

func TestProvisioningStates(t *testing.T) {
	assert.Equal(t, ProvisioningLocal, User{PasswordHash: "h"}.Provisioning())
	assert.Equal(t, ProvisioningFederated, User{FederatedID: "f"}.Provisioning())
	assert.Equal(t, ProvisioningFederatedWithPassword, User{PasswordHash: "h", FederatedID: "f"}.Provisioning())
	assert.Equal(t, ProvisioningNone, User{}.Provisioning())

	assert.True(t, ProvisioningLocal.HasPassword())
	assert.True(t, ProvisioningFederatedWithPassword.HasPassword())
	assert.False(t, ProvisioningFederated.HasPassword())
	assert.False(t, ProvisioningNone.HasPassword())
}
