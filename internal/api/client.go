package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"go.uber.org/zap"

	"portfolio-admin/internal/models"
	"portfolio-admin/internal/session"
)

// Client talks to the portfolio REST backend on behalf of the operator
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	logger     *zap.Logger
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the transport. The client keeps its own cookie
// jar unless the given client already has one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for swallowed failures
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for baseURL (e.g. http://localhost:5000/api)
func NewClient(baseURL string, sess *session.Session, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		session:    sess,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}
	return c, nil
}

// Do sends a single request to path. Cookies always travel with it,
// the content type follows the payload and the session token, when
// present, is attached as a bearer credential. The caller owns the
// response body and checks the status.
func (c *Client) Do(ctx context.Context, method, path string, payload *Payload) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = payload.body
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil && payload.multipart {
		req.Header.Set("Content-Type", payload.contentType)
	} else {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(req)
}

// call performs a request and decodes a successful body into out.
// Any non-2xx status becomes a StatusError carrying only failMsg.
func (c *Client) call(ctx context.Context, method, path string, payload *Payload, failMsg string, out any) error {
	resp, err := c.Do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return &StatusError{Message: failMsg, StatusCode: resp.StatusCode}
	}
	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mutate performs a create, update or delete and returns the raw JSON body
func (c *Client) mutate(ctx context.Context, method, path string, payload *Payload, failMsg string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.call(ctx, method, path, payload, failMsg, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// fetchList reads a {data: [...]} envelope; a missing data field is an empty list
func fetchList[T any](ctx context.Context, c *Client, path, failMsg string) ([]T, error) {
	var body models.ListResponse[T]
	if err := c.call(ctx, http.MethodGet, path, nil, failMsg, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return []T{}, nil
	}
	return body.Data, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
