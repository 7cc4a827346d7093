package client

import (
	"errors"

	"github.com/dmitrijs2005/instabids/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable        = errors.New("authority unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidCredentials = common.ErrInvalidCredentials
	ErrEmailNotConfirmed  = common.ErrEmailNotConfirmed
	ErrClosed             = errors.New("client closed")
)

// RemoteError is a failure reported by the authority. Kind is the matching
// sentinel, if any, so errors.Is works against both.
type RemoteError struct {
	Code    codes.Code
	Message string
	Kind    error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code.String()
}

func (e *RemoteError) Unwrap() error { return e.Kind }

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	re := &RemoteError{Code: st.Code(), Message: st.Message()}
	switch st.Code() {
	case codes.Unauthenticated:
		switch st.Message() {
		case common.ErrInvalidCredentials.Error():
			re.Kind = ErrInvalidCredentials
		case common.ErrEmailNotConfirmed.Error():
			re.Kind = ErrEmailNotConfirmed
		default:
			re.Kind = ErrUnauthorized
		}
	case codes.PermissionDenied:
		re.Kind = ErrForbidden
	case codes.NotFound:
		re.Kind = ErrNotFound
	case codes.AlreadyExists:
		re.Kind = ErrAlreadyExists
	case codes.InvalidArgument:
		re.Kind = ErrInvalidArgument
	case codes.Unavailable, codes.DeadlineExceeded:
		re.Kind = ErrUnavailable
	}
	return re
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}
