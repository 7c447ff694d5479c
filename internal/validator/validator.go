package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"

	"github.com/dvdk01/uptimeobserver-status/internal/schema"
)

const minMonitorKeyLength = 33

var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

var monitorOnlyKeys = []string{"friendlyName", "lastExecution", "uptime24h", "uptime7d", "uptime30d"}

type ResponseValidator struct {
	validate *validator.Validate
}

func NewResponseValidator() *ResponseValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("monitor_key", validateMonitorKey)     //nolint:errcheck
	v.RegisterValidation("iso_date", validateISODate)           //nolint:errcheck
	v.RegisterValidation("http_protocol", validateHTTPProtocol) //nolint:errcheck
	return &ResponseValidator{
		validate: v,
	}
}

// Key length is measured in UTF-16 code units.
func validateMonitorKey(fl validator.FieldLevel) bool {
	return len(utf16.Encode([]rune(fl.Field().String()))) >= minMonitorKeyLength
}

func validateISODate(fl validator.FieldLevel) bool {
	return IsISODate(fl.Field().String())
}

func validateHTTPProtocol(fl validator.FieldLevel) bool {
	parsedURL, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return strings.HasPrefix(parsedURL.Scheme, "http")
}

func IsISODate(value string) bool {
	for _, layout := range isoDateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func (v *ResponseValidator) ValidateMonitorKey(key string) error {
	type keyStruct struct {
		MonitorKey string `json:"monitorKey" validate:"required,monitor_key"`
	}

	return v.validate.Struct(keyStruct{MonitorKey: key})
}

func (v *ResponseValidator) ValidateBaseURL(baseURL string) error {
	type urlStruct struct {
		URL string `json:"baseURL" validate:"required,url,http_protocol"`
	}

	return v.validate.Struct(urlStruct{URL: baseURL})
}

// DecodeObject parses body as a JSON object. Anything else (array, scalar, null) is a SchemaError.
func DecodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &SchemaError{Failures: []ShapeError{{Shape: "object", Err: err}}}
	}
	if fields == nil {
		return nil, &SchemaError{Failures: []ShapeError{{Shape: "object", Err: errors.New("value is required")}}}
	}
	return fields, nil
}

// ValidateStatusResponse matches body against MonitorResponse, then ErrorResponse.
// A body carrying any monitor-only field is never read as an ErrorResponse.
func (v *ResponseValidator) ValidateStatusResponse(body []byte) (schema.StatusResponse, error) {
	fields, err := DecodeObject(body)
	if err != nil {
		return schema.StatusResponse{}, err
	}

	var monitor schema.MonitorResponse
	monitorErr := v.validateShape(body, &monitor)
	if monitorErr == nil {
		return schema.StatusResponse{Monitor: &monitor}, nil
	}

	var errResp schema.ErrorResponse
	errorErr := monitorOnlyField(fields)
	if errorErr == nil {
		errorErr = v.validateShape(body, &errResp)
	}
	if errorErr == nil {
		return schema.StatusResponse{Error: &errResp}, nil
	}

	return schema.StatusResponse{}, &SchemaError{
		Failures: []ShapeError{
			{Shape: "MonitorResponse", Err: monitorErr},
			{Shape: "ErrorResponse", Err: errorErr},
		},
	}
}

func monitorOnlyField(fields map[string]json.RawMessage) error {
	for _, key := range monitorOnlyKeys {
		if _, ok := fields[key]; ok {
			return fmt.Errorf("unexpected field %q", key)
		}
	}
	return nil
}

// validateShape decodes body into target and checks its tags. Keys target does not declare are dropped.
func (v *ResponseValidator) validateShape(body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return err
	}
	return v.validate.Struct(target)
}

type ShapeError struct {
	Shape string
	Err   error
}

// SchemaError reports a body that matched none of the accepted shapes.
type SchemaError struct {
	Failures []ShapeError
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Shape, f.Err))
	}
	return "invalid response data: " + strings.Join(parts, "; ")
}

func (e *SchemaError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}
