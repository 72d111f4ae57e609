package infra

import (
	"context"
	"errors"

	"storefront/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr defaults to KindDBFailure, or KindUnavailable when the caller's
// context was cancelled or timed out.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	} else if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		k = KindUnavailable
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func KindOf(err error) (RepositoryErrorKind, bool) {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Infrastructure-specific error kinds
const (
	KindNotFound         RepositoryErrorKind = "NOT_FOUND"
	KindPermissionDenied RepositoryErrorKind = "PERMISSION_DENIED"
	KindUnavailable      RepositoryErrorKind = "UNAVAILABLE"
	KindDuplicateKey     RepositoryErrorKind = "DUPLICATE_KEY"
	KindDBFailure        RepositoryErrorKind = "DB_FAILURE"
)
