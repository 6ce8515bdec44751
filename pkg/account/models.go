package account

import (
	"time"

	"github.com/google/uuid"
)

// ProvisioningState names how an account obtained (or has not yet obtained)
// its credentials. The credential policy branches on this instead of a raw
// nil-check on the stored hash.
type ProvisioningState string

const (
	// ProvisioningLocal is a password-based signup with a stored hash
	ProvisioningLocal ProvisioningState = "local"
	// ProvisioningFederated is a third-party identity without a local password
	ProvisioningFederated ProvisioningState = "federated"
	// ProvisioningFederatedWithPassword is a federated account that later
	// claimed a local password
	ProvisioningFederatedWithPassword ProvisioningState = "federated_with_password"
	// ProvisioningNone has neither credential; unreachable in steady state
	// but the policy must not assume a hash is present
	ProvisioningNone ProvisioningState = "none"
)

// HasPassword reports whether the state carries a local password hash
func (s ProvisioningState) HasPassword() bool {
	return s == ProvisioningLocal || s == ProvisioningFederatedWithPassword
}

// User represents a user account in the system
type User struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	FullName            string    `json:"full_name,omitempty"`
	Bio                 string    `json:"bio,omitempty"`
	ProfilePhoto        string    `json:"profile_photo,omitempty"`
	PasswordHash        string    `json:"-"`
	FederatedID         string    `json:"federated_id,omitempty"`
	Role                string    `json:"role,omitempty"`
	ReviewAlertsEnabled bool      `json:"review_alerts_enabled"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Provisioning derives the account's provisioning state
func (u User) Provisioning() ProvisioningState {
	switch {
	case u.PasswordHash != "" && u.FederatedID != "":
		return ProvisioningFederatedWithPassword
	case u.PasswordHash != "":
		return ProvisioningLocal
	case u.FederatedID != "":
		return ProvisioningFederated
	default:
		return ProvisioningNone
	}
}

// UserProfile is the fixed projection returned by the read operations.
// The password hash is never part of it.
type UserProfile struct {
	ID           uuid.UUID `json:"id"`
	Role         string    `json:"role,omitempty"`
	FullName     string    `json:"full_name,omitempty"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile projects the user into the fixed read field set
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:           u.ID,
		Role:         u.Role,
		FullName:     u.FullName,
		ProfilePhoto: u.ProfilePhoto,
		Bio:          u.Bio,
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// CredentialOwner is the narrow projection returned by password operations
type CredentialOwner struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
}

// CredentialOwner projects the user into the password-operation field set
func (u User) CredentialOwner() CredentialOwner {
	return CredentialOwner{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		ProfilePhoto: u.ProfilePhoto,
	}
}

// CreateUserParams contains parameters for creating a new user
type CreateUserParams struct {
	Email               string `json:"email"`
	FullName            string `json:"full_name,omitempty"`
	Bio                 string `json:"bio,omitempty"`
	ProfilePhoto        string `json:"profile_photo,omitempty"`
	PasswordHash        string `json:"-"`
	FederatedID         string `json:"federated_id,omitempty"`
	Role                string `json:"role,omitempty"`
	ReviewAlertsEnabled bool   `json:"review_alerts_enabled"`
}

// UpdateUserParams contains the partial field set for an update. Nil fields
// are left untouched by the repository.
type UpdateUserParams struct {
	ID                  uuid.UUID
	FullName            *string
	Bio                 *string
	ProfilePhoto        *string
	PasswordHash        *string
	ReviewAlertsEnabled *bool
}

// UpdatePasswordParams carries the credential inputs for UpdatePassword.
// NewPassword presence is validated upstream by the request DTO; the policy
// re-checks only what it owns.
type UpdatePasswordParams struct {
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password"`
}

// UpdateProfileParams carries the mutable profile fields
type UpdateProfileParams struct {
	FullName string `json:"full_name,omitempty"`
	Bio      string `json:"bio,omitempty"`
}
