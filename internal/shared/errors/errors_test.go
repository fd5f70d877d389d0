package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetType(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorType
	}{
		{NotFound("design not found"), ErrorTypeNotFound},
		{NotFoundf("preset %s not found", "pluto"), ErrorTypeNotFound},
		{Validationf("distance_au must be positive, got %v", -1), ErrorTypeValidation},
		{Forbidden("not your design"), ErrorTypeForbidden},
		{Unauthorized("missing token"), ErrorTypeUnauthorized},
		{MethodNotAllowed("PATCH"), ErrorTypeMethodNotAllowed},
		{RateLimited("slow down"), ErrorTypeRateLimited},
		{WrapExternal("github unavailable", errors.New("timeout")), ErrorTypeExternal},
		{fmt.Errorf("service: %w", Conflictf("duplicate")), ErrorTypeConflict},
		{errors.New("plain"), ErrorTypeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetType(tt.err), tt.err.Error())
	}
}

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapInternal("failed to save design", cause)

	assert.Equal(t, "failed to save design: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "method PATCH not allowed", MethodNotAllowed("PATCH").Error())
}
