package hasura

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const adminSecretHeader = "x-hasura-admin-secret"

// ErrTransport is returned when the GraphQL endpoint could not be reached
// or answered with something that is not a GraphQL envelope.
var ErrTransport = errors.New("graphql transport failure")

// Executor runs a single GraphQL document against the Hasura endpoint.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}) (*Response, error)
}

// Config holds the Hasura endpoint configuration
type Config struct {
	Endpoint    string
	AdminSecret string
	Timeout     time.Duration
}

// Client is an Executor that talks to Hasura over HTTP
type Client struct {
	endpoint    string
	adminSecret string
	httpClient  *http.Client
	observer    func(ctx context.Context, query string, duration time.Duration, err error)
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// NewClient creates a new Hasura client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		endpoint:    cfg.Endpoint,
		adminSecret: cfg.AdminSecret,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient replaces the underlying HTTP client
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// OnCall registers a callback invoked after every round trip with the
// caller's context.
func (c *Client) OnCall(observer func(ctx context.Context, query string, duration time.Duration, err error)) *Client {
	c.observer = observer
	return c
}

// Execute posts the document and decodes the {data, errors} envelope.
// A non-empty Errors list is not reported as a Go error: callers decide.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}) (resp *Response, err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer(ctx, query, time.Since(start), err)
		}
	}()

	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graphql request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.adminSecret != "" {
		httpReq.Header.Set(adminSecretHeader, c.adminSecret)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}

	var envelope Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: status %d: %v", ErrTransport, httpResp.StatusCode, err)
	}

	return &envelope, nil
}
