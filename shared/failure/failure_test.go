package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"rimbest/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		kind    failure.Kind
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("failed to decode request body")),
			code:    http.StatusBadRequest,
			kind:    failure.KindValidation,
			message: "failed to decode request body",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			kind:    failure.KindAuth,
			message: "token expired",
		},
		{
			name:    "business rule keeps reason verbatim",
			err:     failure.BusinessRule("too late"),
			code:    http.StatusBadRequest,
			kind:    failure.KindBusinessRule,
			message: "too late",
		},
		{
			name:    "connectivity",
			err:     failure.Connectivity(),
			code:    http.StatusServiceUnavailable,
			kind:    failure.KindConnectivity,
			message: failure.MessageConnectivity,
		},
		{
			name:    "unknown",
			err:     failure.Unknown(),
			code:    http.StatusBadGateway,
			kind:    failure.KindUnknown,
			message: failure.MessageUnknown,
		},
		{
			name:    "not found",
			err:     failure.NotFound("flight not found"),
			code:    http.StatusNotFound,
			kind:    failure.KindNotFound,
			message: "flight not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("payment already in progress"),
			code:    http.StatusConflict,
			kind:    failure.KindConflict,
			message: "payment already in progress",
		},
		{
			name:    "unimplemented",
			err:     failure.Unimplemented("Charge"),
			code:    http.StatusNotImplemented,
			kind:    failure.KindUnknown,
			message: "Charge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.kind, failure.GetKind(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
			assert.True(t, failure.Is(tt.err, tt.kind))
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestValidationField(t *testing.T) {
	err := failure.Validation("fullName", "fullName must be at least 2 characters")

	assert.Equal(t, "fullName", failure.GetField(err))
	assert.Equal(t, failure.KindValidation, failure.GetKind(err))
	assert.Equal(t, "", failure.GetField(errors.New("plain")))
}

func TestGetCodeAndKind_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("failed to cancel booking: %w", failure.BusinessRule("too late"))

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(wrapped))
	assert.Equal(t, failure.KindBusinessRule, failure.GetKind(wrapped))

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("regular error")))
	assert.Equal(t, failure.KindUnknown, failure.GetKind(errors.New("regular error")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}

func TestWithMessage(t *testing.T) {
	err := failure.WithMessage(failure.Connectivity(), "Payment failed. Please try again.")

	assert.Equal(t, "Payment failed. Please try again.", err.Error())
	assert.Equal(t, failure.KindConnectivity, failure.GetKind(err))
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))

	plain := failure.WithMessage(errors.New("boom"), "Payment failed. Please try again.")
	assert.Equal(t, failure.KindUnknown, failure.GetKind(plain))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(plain))
}

func TestPredefinedFailures(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, failure.ForbiddenError.Code)
	assert.Equal(t, failure.KindAuth, failure.ForbiddenError.Kind)
}

func TestGetMessage(t *testing.T) {
	wrapped := fmt.Errorf("failed to cancel booking: %w", failure.BusinessRule("too late"))

	assert.Equal(t, "too late", failure.GetMessage(wrapped))
	assert.Equal(t, failure.MessageUnknown, failure.GetMessage(errors.New("pq: connection refused")))
}
