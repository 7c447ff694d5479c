package serviceerrors

import (
	"errors"
	"fmt"
)

// InvalidParameterError is returned for bad caller input, before any I/O happens.
type InvalidParameterError struct {
	PrettyMessage string
	Underlying    error
}

func (e *InvalidParameterError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("invalid parameter: %s: %v", e.PrettyMessage, e.Underlying)
	}
	return "invalid parameter: " + e.PrettyMessage
}

func (e *InvalidParameterError) Unwrap() error {
	return e.Underlying
}

func (e *InvalidParameterError) Pretty() string {
	return e.PrettyMessage
}

// InvalidResponseError is returned when the remote service reports an error in its body.
type InvalidResponseError struct {
	PrettyMessage string
	Underlying    error
}

func (e *InvalidResponseError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("invalid response: %s: %v", e.PrettyMessage, e.Underlying)
	}
	return "invalid response: " + e.PrettyMessage
}

func (e *InvalidResponseError) Unwrap() error {
	return e.Underlying
}

func (e *InvalidResponseError) Pretty() string {
	return e.PrettyMessage
}

func NewInvalidParameter(prettyMessage string, underlying error) *InvalidParameterError {
	return &InvalidParameterError{
		PrettyMessage: prettyMessage,
		Underlying:    underlying,
	}
}

func NewInvalidResponse(prettyMessage string) *InvalidResponseError {
	return &InvalidResponseError{
		PrettyMessage: prettyMessage,
	}
}

type prettyError interface {
	Pretty() string
}

// PrettyMessage returns the user-facing text for err, falling back to err.Error().
func PrettyMessage(err error) string {
	if err == nil {
		return ""
	}
	var p prettyError
	if errors.As(err, &p) {
		return p.Pretty()
	}
	return err.Error()
}
