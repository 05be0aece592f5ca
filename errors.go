package desk

import (
	"net/http"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	TextCodeSessionMissing       = "SESSION_MISSING"
	TextCodeValidationFailed     = "VALIDATION_FAILED"
	TextCodeServerRejection      = "SERVER_REJECTION"
	TextCodeTransportFailure     = "TRANSPORT_FAILURE"
)

// ErrAuthenticationFailed is returned when the backend rejects the
// credential or the login exchange.
var ErrAuthenticationFailed = errors.New("authentication failed", errors.CategoryAuth).
	WithTextCode(TextCodeAuthenticationFailed).
	WithCode(errors.CodeUnauthorized)

// ErrSessionMissing is returned when no credential is stored at call time.
var ErrSessionMissing = errors.New("session not found", errors.CategoryAuth).
	WithTextCode(TextCodeSessionMissing).
	WithCode(errors.CodeUnauthorized)

// ErrValidationFailed is returned for input rejected before dispatch.
var ErrValidationFailed = errors.New("validation failed", errors.CategoryValidation).
	WithTextCode(TextCodeValidationFailed).
	WithCode(errors.CodeBadRequest)

// ErrServerRejection is returned for non 2xx, non 401 responses.
var ErrServerRejection = errors.New("request rejected by server", errors.CategoryOperation).
	WithTextCode(TextCodeServerRejection).
	WithCode(errors.CodeInternal)

// ErrTransportFailure is returned when the backend is unreachable or the
// response could not be decoded.
var ErrTransportFailure = errors.New("unable to reach server", errors.CategoryOperation).
	WithTextCode(TextCodeTransportFailure).
	WithCode(http.StatusServiceUnavailable)

// newError clones base with a user facing message, the source error and
// metadata. base is never mutated.
func newError(base *errors.Error, message string, source error, meta map[string]any) *errors.Error {
	clone := base.Clone()
	if clone == nil {
		clone = base
	}
	if message != "" {
		clone.Message = message
	}
	if source != nil {
		clone.Source = source
	}
	if len(meta) > 0 {
		clone = clone.WithMetadata(meta)
	}
	return clone
}

func rejection(status int, message string, meta map[string]any) *errors.Error {
	err := newError(ErrServerRejection, message, nil, meta)
	if status > 0 {
		err = err.WithCode(status)
	}
	return err
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == code
}

// IsAuthenticationFailure reports whether the server rejected the session
func IsAuthenticationFailure(err error) bool {
	return hasTextCode(err, TextCodeAuthenticationFailed)
}

// IsSessionMissing reports whether the call was aborted for lack of a credential
func IsSessionMissing(err error) bool {
	return hasTextCode(err, TextCodeSessionMissing)
}

func IsValidationFailure(err error) bool {
	return hasTextCode(err, TextCodeValidationFailed)
}

func IsServerRejection(err error) bool {
	return hasTextCode(err, TextCodeServerRejection)
}

func IsTransportFailure(err error) bool {
	return hasTextCode(err, TextCodeTransportFailure)
}

// UserMessage returns the message meant for the user
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var richErr *errors.Error
	if errors.As(err, &richErr) && richErr.Message != "" {
		return richErr.Message
	}
	return err.Error()
}
