package serviceerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidParameterError(t *testing.T) {
	cause := errors.New("too short")
	err := NewInvalidParameter("monitor API key is required", cause)

	assert.Equal(t, "monitor API key is required", err.Pretty())
	assert.Equal(t, "invalid parameter: monitor API key is required: too short", err.Error())
	assert.ErrorIs(t, err, cause)

	var target *InvalidParameterError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
}

func TestInvalidResponseError(t *testing.T) {
	err := NewInvalidResponse("monitor not found")

	assert.Equal(t, "monitor not found", err.Pretty())
	assert.Equal(t, "invalid response: monitor not found", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestPrettyMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid parameter", err: NewInvalidParameter("monitor API key is required", nil), want: "monitor API key is required"},
		{name: "invalid response", err: NewInvalidResponse("service error"), want: "service error"},
		{name: "plain error", err: errors.New("connection refused"), want: "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrettyMessage(tt.err))
		})
	}
}
