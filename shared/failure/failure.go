package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for the caller. The remote API's error shapes are
// translated into one of these before they leave the client layer.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindAuth         Kind = "auth"
	KindBusinessRule Kind = "business_rule"
	KindConnectivity Kind = "connectivity"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnknown      Kind = "unknown"
)

const (
	MessageAuth         = "Your session is no longer valid. Please sign in again."
	MessageConnectivity = "Unable to reach the booking server. Check your connection and try again."
	MessageUnknown      = "An unexpected error occurred. Please try again later."
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindAuth, Message: "You don't have the required permissions"}

// Error returns the message only, so it can be displayed verbatim.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new validation Failure with the message taken from err.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// Validation returns a validation Failure bound to a single input field.
func Validation(field, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
		Field:   field,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindAuth,
		Message: msg,
	}
}

// BusinessRule reports a rule violation. The reason is shown to the user as is.
func BusinessRule(reason string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindBusinessRule,
		Message: reason,
	}
}

// Connectivity reports that no response was received from a collaborator.
func Connectivity() error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Kind:    KindConnectivity,
		Message: MessageConnectivity,
	}
}

// Unknown is the catch-all for anything that does not fit another kind.
func Unknown() error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Kind:    KindUnknown,
		Message: MessageUnknown,
	}
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Kind:    KindUnknown,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// WithMessage keeps the code and kind of err but replaces what the user sees.
func WithMessage(err error, msg string) error {
	var fail *Failure
	if errors.As(err, &fail) {
		return &Failure{
			Code:    fail.Code,
			Kind:    fail.Kind,
			Message: msg,
		}
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindUnknown,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error, KindUnknown when it is not a Failure.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnknown
}

// GetField returns the offending input field of a validation failure.
func GetField(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Field
	}

	return ""
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Kind == kind
}

// GetMessage returns the user facing message of err. Errors that are not a
// Failure never leak their text.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return MessageUnknown
}
