package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

type ErrorResponse struct {
	Status string  `json:"status" validate:"required"`
	Error  *string `json:"error,omitempty"`
}

type MonitorResponse struct {
	Status        string   `json:"status" validate:"required"`
	FriendlyName  string   `json:"friendlyName" validate:"required"`
	LastExecution string   `json:"lastExecution" validate:"required,iso_date"`
	Uptime24h     *float64 `json:"uptime24h" validate:"required,min=0,max=100"`
	Uptime7d      *float64 `json:"uptime7d" validate:"required,min=0,max=100"`
	Uptime30d     *float64 `json:"uptime30d" validate:"required,min=0,max=100"`
}

// UnmarshalJSON accepts the uptime figures either as JSON numbers or as numeric strings.
func (m *MonitorResponse) UnmarshalJSON(data []byte) error {
	type alias MonitorResponse
	aux := struct {
		*alias
		Uptime24h looseNumber `json:"uptime24h"`
		Uptime7d  looseNumber `json:"uptime7d"`
		Uptime30d looseNumber `json:"uptime30d"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	m.Uptime24h = aux.Uptime24h.value
	m.Uptime7d = aux.Uptime7d.value
	m.Uptime30d = aux.Uptime30d.value
	return nil
}

type looseNumber struct {
	value *float64
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		n.value = nil
		return nil
	}

	raw := data
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		raw = []byte(str)
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("must be a number, got %s", data)
	}
	n.value = &f
	return nil
}

// StatusResponse holds whichever branch of MonitorResponse | ErrorResponse the body matched.
// Exactly one of Monitor and Error is set.
type StatusResponse struct {
	Monitor *MonitorResponse
	Error   *ErrorResponse
}

func (r StatusResponse) HasError() bool {
	return r.Error != nil && r.Error.Error != nil
}

func (r StatusResponse) ErrorMessage() string {
	if !r.HasError() {
		return ""
	}
	return *r.Error.Error
}

type Result struct {
	Key      string
	Response *MonitorResponse
	Err      error
	Duration time.Duration
}

func (r Result) Success() bool {
	return r.Err == nil && r.Response != nil
}
