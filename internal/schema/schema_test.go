package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusResponse_HasError(t *testing.T) {
	msg := "monitor not found"
	empty := ""

	tests := []struct {
		name        string
		response    StatusResponse
		wantError   bool
		wantMessage string
	}{
		// Test case for a matched monitor body
		// Verifies that a success payload never reports an error
		{
			name:      "monitor response",
			response:  StatusResponse{Monitor: &MonitorResponse{Status: "up"}},
			wantError: false,
		},
		// Test case for an error body without the error key
		// Verifies that a bare status is not treated as a service error
		{
			name:      "error branch without error field",
			response:  StatusResponse{Error: &ErrorResponse{Status: "fail"}},
			wantError: false,
		},
		// Test case for an error body with a message
		{
			name:        "error branch with message",
			response:    StatusResponse{Error: &ErrorResponse{Status: "fail", Error: &msg}},
			wantError:   true,
			wantMessage: msg,
		},
		// Test case for an error body whose error field is an empty string
		// Verifies that presence of the key is what counts
		{
			name:        "error branch with empty message",
			response:    StatusResponse{Error: &ErrorResponse{Status: "fail", Error: &empty}},
			wantError:   true,
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantError, tt.response.HasError())
			assert.Equal(t, tt.wantMessage, tt.response.ErrorMessage())
		})
	}
}

func TestResult_Success(t *testing.T) {
	assert.True(t, Result{Response: &MonitorResponse{}}.Success())
	assert.False(t, Result{}.Success())
	assert.False(t, Result{Response: &MonitorResponse{}, Err: errors.New("boom")}.Success())
}

func TestMonitorResponse_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *float64
		wantErr bool
	}{
		// Test case for a plain JSON number
		{name: "number", body: `{"uptime24h":99.5}`, want: ptr(99.5)},
		// Test case for a numeric string
		// Verifies that quoted numbers are converted
		{name: "numeric string", body: `{"uptime24h":"99.5"}`, want: ptr(99.5)},
		// Test case for an explicit null
		// Verifies that null leaves the field unset for the required check
		{name: "null", body: `{"uptime24h":null}`, want: nil},
		// Test case for a missing field
		{name: "missing", body: `{}`, want: nil},
		// Test case for a non numeric string
		{name: "text", body: `{"uptime24h":"high"}`, wantErr: true},
		// Test case for an empty string
		{name: "empty string", body: `{"uptime24h":""}`, wantErr: true},
		// Test case for a boolean
		{name: "boolean", body: `{"uptime24h":true}`, wantErr: true},
		// Test case for a non finite value
		{name: "infinity", body: `{"uptime24h":"Inf"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m MonitorResponse
			err := json.Unmarshal([]byte(tt.body), &m)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Uptime24h)
		})
	}
}

func TestMonitorResponse_UnmarshalJSON_KeepsOtherFields(t *testing.T) {
	var m MonitorResponse
	err := json.Unmarshal([]byte(`{"status":"up","friendlyName":"API","lastExecution":"2025-06-01","uptime24h":1,"uptime7d":"2","uptime30d":3,"extra":true}`), &m)

	require.NoError(t, err)
	assert.Equal(t, "up", m.Status)
	assert.Equal(t, "API", m.FriendlyName)
	assert.Equal(t, "2025-06-01", m.LastExecution)
	assert.Equal(t, 1.0, *m.Uptime24h)
	assert.Equal(t, 2.0, *m.Uptime7d)
	assert.Equal(t, 3.0, *m.Uptime30d)
}

func ptr(v float64) *float64 {
	return &v
}
