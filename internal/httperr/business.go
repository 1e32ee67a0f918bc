package httperr

import (
	"errors"
	"net/http"
)

// Kind is the stable failure category every business error carries.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindInvalidInput        Kind = "invalid_input"
	KindConflict            Kind = "conflict"
	KindForbidden           Kind = "forbidden"
	KindUnauthorized        Kind = "unauthorized"
	KindInvalidTransition   Kind = "invalid_transition"
	KindInvalidServiceName  Kind = "invalid_service_name"
	KindUnclassifiedService Kind = "unclassified_service"
	KindUnexpected          Kind = "unexpected"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func ErrBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return ErrBusiness(KindNotFound, code, message)
}

func ErrInvalidInput(code, message string) error {
	return ErrBusiness(KindInvalidInput, code, message)
}

func ErrConflict(code, message string) error {
	return ErrBusiness(KindConflict, code, message)
}

func ErrForbidden(code, message string) error {
	return ErrBusiness(KindForbidden, code, message)
}

func ErrUnauthorized(code, message string) error {
	return ErrBusiness(KindUnauthorized, code, message)
}

func ErrInvalidTransition(code, message string) error {
	return ErrBusiness(KindInvalidTransition, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf reports the kind of err. Anything that is not a BusinessError is
// KindUnexpected.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnexpected
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput, KindInvalidServiceName:
		return http.StatusBadRequest
	case KindConflict, KindInvalidTransition:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindUnclassifiedService:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
