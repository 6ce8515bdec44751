package response

import (
	stderrors "errors"

	"github.com/reviewhub/accounts/pkg/errors"
)

// Response is the uniform success envelope returned by every account
// operation. It is constructed fresh per call and never persisted.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Success wraps a result into the success envelope.
func Success[T any](data T, message string) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Failure is the shape the transport layer renders for a failed operation.
type Failure struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// FailureFromError converts an error into the failure shape. Structured
// errors keep their status code and message; anything else becomes a
// generic 500 so internal detail never reaches the caller.
func FailureFromError(err error) Failure {
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		return Failure{
			Success:    false,
			StatusCode: appErr.HTTPStatusCode(),
			Message:    appErr.Message,
		}
	}
	return Failure{
		Success:    false,
		StatusCode: 500,
		Message:    "Internal server error",
	}
}
