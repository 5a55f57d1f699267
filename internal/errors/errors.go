package errors

import (
	"errors"
	"net/http"
)

var (
	ErrAccountLocked        = errors.New("account is temporarily locked")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrUsernameAlreadyInUse = errors.New("username already in use")
	ErrCPFAlreadyInUse      = errors.New("cpf already in use")
	ErrCNPJAlreadyInUse     = errors.New("cnpj already in use")
	ErrUserNotFound         = errors.New("user not found")

	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenRevoked covers refresh tokens that are no longer in the active set,
	// whether explicitly revoked or never issued by this server.
	ErrTokenRevoked = errors.New("token revoked or invalid")

	ErrForbidden = errors.New("insufficient permissions")

	ErrValidation             = errors.New("validation error")
	ErrNotFound               = errors.New("resource not found")
	ErrProposalNumberInUse    = errors.New("proposal number already in use")
	ErrCounterpartyNotFound   = errors.New("client or legal entity not found")
	ErrInvalidStatusChange    = errors.New("invalid status transition")
	ErrProposalNotSubmittable = errors.New("proposal has validation errors")
)

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrCounterpartyNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenRevoked):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailAlreadyInUse),
		errors.Is(err, ErrUsernameAlreadyInUse),
		errors.Is(err, ErrCPFAlreadyInUse),
		errors.Is(err, ErrCNPJAlreadyInUse),
		errors.Is(err, ErrProposalNumberInUse):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidStatusChange), errors.Is(err, ErrProposalNotSubmittable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrAccountLocked):
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}
