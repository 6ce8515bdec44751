package response

import (
	"context"
	stderrors "errors"

	"github.com/reviewhub/accounts/pkg/errors"
	"golang.org/x/exp/slog"
)

// Operation is a single account operation producing an envelope.
type Operation[T any] func(ctx context.Context) (Response[T], error)

// Run executes op under the error interception contract shared by every
// account operation:
//
//   - structured *errors.Error values propagate unchanged, so intentional
//     signals (404 not found, 400 policy violations) keep their status and
//     message all the way to the transport layer;
//   - any other error, and any panic, is logged with full detail and
//     replaced by a generic internal error carrying the caller-supplied
//     fallback message tagged with the domain.
func Run[T any](ctx context.Context, fallback, domain string, op Operation[T]) (result Response[T], err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Recovered from panic in operation", "domain", domain, "fallback", fallback, "panic", rec)
			result = Response[T]{}
			err = errors.Internal(fallback).WithDetail("domain", domain)
		}
	}()

	result, err = op(ctx)
	if err == nil {
		return result, nil
	}

	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		return Response[T]{}, appErr
	}

	slog.Error(fallback, "domain", domain, "err", err)
	return Response[T]{}, errors.Internal(fallback).WithDetail("domain", domain)
}
