package upstream

import (
	"context"
	"errors"
	"time"

	"resty.dev/v3"

	"tours-admin/pkg/utils"
)

// Result is the raw outcome of one upstream call. The client never
// interprets it; response normalization is the usecase layer's job.
type Result struct {
	Status int
	Body   []byte
}

// Caller is the outbound interface services depend on, so tests can swap
// the real HTTP client for a fake.
type Caller interface {
	Do(ctx context.Context, method, path string, body any, headers map[string]string) (*Result, error)
}

// Client wraps a resty client pointed at the backend service.
type Client struct {
	http *resty.Client
}

// NewClient builds the upstream client from config. A bounded timeout is
// always applied so a hung backend cannot hang a handler.
func NewClient(config utils.UpstreamConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, errors.New("upstream base URL is required")
	}

	c := resty.New().
		SetBaseURL(config.BaseURL).
		SetHeader("Content-Type", "application/json")

	if config.TimeoutSeconds > 0 {
		c.SetTimeout(time.Duration(config.TimeoutSeconds) * time.Second)
	}

	return &Client{http: c}, nil
}

// Do issues one request and returns the raw status and body. A non-2xx
// status is not an error; only transport-level failures are.
func (c *Client) Do(ctx context.Context, method, path string, body any, headers map[string]string) (*Result, error) {
	req := c.http.R().SetContext(ctx)

	for k, v := range headers {
		req.SetHeader(k, v)
	}
	if body != nil {
		req.SetBody(body)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}

	return &Result{
		Status: res.StatusCode(),
		Body:   res.Bytes(),
	}, nil
}

// Close releases the underlying client resources.
func (c *Client) Close() error {
	return c.http.Close()
}
