package monitor

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dvdk01/uptimeobserver-status/internal/client"
	"github.com/dvdk01/uptimeobserver-status/internal/schema"
	"github.com/dvdk01/uptimeobserver-status/internal/serviceerrors"
	"github.com/dvdk01/uptimeobserver-status/internal/validator"
)

const (
	DefaultBaseURL = "https://app.uptimeobserver.com"

	statusPath               = "/api/monitor/status/"
	defaultDiagnosticTimeout = 5 * time.Second

	msgMonitorKeyRequired = "monitor API key is required"
	msgServiceError       = "service error"
)

type uptimeObserver struct {
	client            *client.Client
	validator         *validator.ResponseValidator
	logger            logrus.FieldLogger
	baseURL           string
	diagnosticTimeout time.Duration
}

type Option func(*uptimeObserver)

func WithBaseURL(baseURL string) Option {
	return func(u *uptimeObserver) {
		u.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithDiagnosticTimeout(timeout time.Duration) Option {
	return func(u *uptimeObserver) {
		u.diagnosticTimeout = timeout
	}
}

func NewUptimeObserver(c *client.Client, logger logrus.FieldLogger, opts ...Option) *uptimeObserver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	u := &uptimeObserver{
		client:            c,
		validator:         validator.NewResponseValidator(),
		logger:            logger,
		baseURL:           DefaultBaseURL,
		diagnosticTimeout: defaultDiagnosticTimeout,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// FetchStatus returns the validated status of the monitor selected by monitorKey.
//
// Errors are *serviceerrors.InvalidParameterError for a malformed key,
// *serviceerrors.InvalidResponseError when the service reports an error,
// *validator.SchemaError when the body matches neither known shape, or the
// transport error from the HTTP client.
func (u *uptimeObserver) FetchStatus(ctx context.Context, monitorKey string) (*schema.MonitorResponse, error) {
	if err := u.validator.ValidateMonitorKey(monitorKey); err != nil {
		return nil, serviceerrors.NewInvalidParameter(msgMonitorKeyRequired, err)
	}

	statusURL := u.statusURL(monitorKey)

	var (
		resp  schema.StatusResponse
		empty bool
	)
	err := u.client.RequestJSON(ctx, statusURL, func(statusCode int, body []byte) error {
		fields, err := validator.DecodeObject(body)
		if err != nil {
			return err
		}
		empty = len(fields) == 0

		resp, err = u.validator.ValidateStatusResponse(body)
		if err != nil {
			return err
		}
		// Only an error body explains a failed HTTP status.
		if !client.IsSuccess(statusCode) && resp.Monitor != nil {
			return fmt.Errorf("monitor status body with HTTP status %d", statusCode)
		}
		return nil
	}, client.Options{LogErrors: false})

	// The service occasionally answers 200 {} instead of a status body.
	if empty {
		u.logRawResponse(ctx, statusURL)
	}

	if err != nil {
		return nil, err
	}

	if resp.HasError() {
		message := resp.ErrorMessage()
		if message == "" {
			message = msgServiceError
		}
		return nil, serviceerrors.NewInvalidResponse(message)
	}

	if resp.Monitor == nil {
		return nil, serviceerrors.NewInvalidResponse(msgServiceError)
	}

	return resp.Monitor, nil
}

func (u *uptimeObserver) statusURL(monitorKey string) string {
	return u.baseURL + statusPath + url.PathEscape(monitorKey)
}

// logRawResponse refetches url as plain text for operator debugging. Nothing it does reaches the caller.
func (u *uptimeObserver) logRawResponse(ctx context.Context, statusURL string) {
	logger := u.logger.WithField("monitor", maskedURL(statusURL))

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Warn("raw HTTP request panicked")
		}
	}()

	diagCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.diagnosticTimeout)
	defer cancel()

	raw, err := u.client.Request(diagCtx, statusURL, client.Options{LogErrors: false})
	if err != nil {
		logger.WithError(err).Warn("raw HTTP request error")
		return
	}

	logger.WithFields(logrus.Fields{
		"body":   raw,
		"length": len(raw),
	}).Warn("empty status response, raw HTTP response body")
}

func maskedURL(statusURL string) string {
	idx := strings.LastIndex(statusURL, "/")
	if idx < 0 {
		return statusURL
	}
	return statusURL[:idx+1] + MaskKey(statusURL[idx+1:])
}

// MaskKey keeps the first and last four characters of a monitor key.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
