// Package errors provides structured error handling with error codes for the
// accounts service.
//
// Service operations raise *errors.Error values at the point of detection;
// the response interceptor and the HTTP layer translate them into status
// codes and response bodies without rewriting them.
//
// # Basic Usage
//
// Creating errors with codes:
//
//	import "github.com/reviewhub/accounts/pkg/errors"
//
//	// Create a simple error
//	err := errors.New(errors.ErrCodeUserNotFound, "User not found")
//
//	// Wrap an existing error
//	err := errors.Wrap(dbErr, errors.ErrCodeInternal, "failed to query database")
//
//	// Use convenience constructors
//	err := errors.NotFound("user", userID)
//	err := errors.InvalidInput("email", "invalid format")
//
// # Error Inspection
//
// Check error codes and extract information:
//
//	if errors.IsCode(err, errors.ErrCodeUserNotFound) {
//		// Handle not found case
//	}
//
//	code := errors.GetCode(err)
//
// Standard error wrapping still works through Unwrap, so errors.Is and
// errors.As against wrapped sentinels behave as expected.
//
// # HTTP Status Code Mapping
//
// Error code to HTTP status mapping:
//   - ErrCodeInvalidInput, ErrCodeMissingRequired,
//     ErrCodeInvalidCredentials → 400 Bad Request
//   - ErrCodeNotFound, ErrCodeUserNotFound → 404 Not Found
//   - ErrCodeConflict, ErrCodeAlreadyExists → 409 Conflict
//   - ErrCodeInternal → 500 Internal Server Error
package errors
