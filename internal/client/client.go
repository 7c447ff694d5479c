package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ValidateFunc checks a response body and stores the validated value.
type ValidateFunc func(statusCode int, body []byte) error

type Options struct {
	// LogErrors enables logging of failed requests. Callers that surface errors themselves leave it off.
	LogErrors bool
}

type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

type Client struct {
	httpClient *http.Client
	logger     logrus.FieldLogger
}

func New(httpClient *http.Client, logger logrus.FieldLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// RequestJSON issues a GET and runs validate on the body. A non-2xx response is only
// accepted when validate passes for it; otherwise it fails with *HTTPStatusError.
func (c *Client) RequestJSON(ctx context.Context, url string, validate ValidateFunc, opts Options) error {
	status, body, err := c.get(ctx, url)
	if err != nil {
		c.logFailure(opts, url, err)
		return err
	}

	err = validate(status, body)
	if !IsSuccess(status) && err != nil {
		err = &HTTPStatusError{URL: url, StatusCode: status, Body: string(body)}
	}
	if err != nil {
		c.logFailure(opts, url, err)
		return err
	}

	return nil
}

// Request issues a GET and returns the raw body.
func (c *Client) Request(ctx context.Context, url string, opts Options) (string, error) {
	status, body, err := c.get(ctx, url)
	if err != nil {
		c.logFailure(opts, url, err)
		return "", err
	}

	if !IsSuccess(status) {
		err = &HTTPStatusError{URL: url, StatusCode: status, Body: string(body)}
		c.logFailure(opts, url, err)
		return "", err
	}

	return string(body), nil
}

func (c *Client) get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body of %s: %w", url, err)
	}

	return resp.StatusCode, body, nil
}

func (c *Client) logFailure(opts Options, url string, err error) {
	if !opts.LogErrors || c.logger == nil {
		return
	}
	c.logger.WithError(err).WithField("url", url).Error("request failed")
}

func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
