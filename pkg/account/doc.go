// Package account provides user account lifecycle operations: credential
// management, profile updates, user listing, and the review-alert
// preference toggle.
//
// The package manages a single User record with support for PostgreSQL,
// file, and in-memory storage backends through the AccountRepository
// interface. Accounts may have been provisioned via a password signup or a
// federated identity provider; the credential policy in UpdatePassword
// handles both paths.
//
// # Basic Usage
//
//	import (
//		"github.com/reviewhub/accounts/pkg/account"
//		"github.com/reviewhub/accounts/pkg/password"
//	)
//
//	repo := account.NewPostgresAccountRepository(pool)
//	hasher, _ := password.NewDefaultHasherFactory().GetHasher(password.CurrentPasswordVersion)
//	service := account.NewAccountService(repo, hasher)
//
//	resp, err := service.UpdatePassword(ctx, userID, account.UpdatePasswordParams{
//		CurrentPassword: "old-secret",
//		NewPassword:     "new-secret",
//	})
//
// # Credential Policy
//
// UpdatePassword decides how to set a new password from the account's
// provisioning state:
//
//   - no stored password (federated-only account): the current password is
//     not required; the new password is hashed and stored directly. This is
//     the one-time "claim a local password" path.
//   - stored password present: the current password is required (400) and
//     must verify against the stored hash (400) before the new password is
//     accepted.
//
// Failures never write; success writes the hash as the sole mutation.
//
// # Error Contract
//
// Every operation runs inside response.Run: intentional signals
// (*errors.Error) propagate unchanged with their status codes, everything
// else is logged and normalized into a generic internal failure. The 404
// for a missing user is decided here, not in the repositories, which
// return the ErrUserNotFound sentinel.
package account
