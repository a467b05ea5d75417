// Package api is the HTTP client for the AhliHub server. It speaks the
// JSON envelope the server emits and maps the error taxonomy onto
// sentinel errors callers can test with errors.Is. Requests are not
// retried; the caller decides what a failure means.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Sentinel errors matching the server's error taxonomy.
var (
	ErrUnauthenticated = errors.New("authentication required or token expired")
	ErrForbidden       = errors.New("insufficient role")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrInvalid         = errors.New("invalid request")
	ErrRateLimited     = errors.New("too many attempts")
)

// Client talks to one AhliHub server. The zero timeout of the default
// http.Client is replaced so a dead server cannot hang the UI.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a Client for the server at baseURL (no trailing slash
// required). token may be empty for the public endpoints.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken swaps the bearer token, e.g. after login.
func (c *Client) SetToken(token string) { c.token = token }

// apiError carries the server's message alongside the taxonomy sentinel.
type apiError struct {
	sentinel error
	message  string
}

func (e *apiError) Error() string {
	if e.message != "" {
		return e.message
	}
	return e.sentinel.Error()
}

func (e *apiError) Unwrap() error { return e.sentinel }

func sentinelFor(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadRequest:
		return ErrInvalid
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("server error (status %d)", status)
	}
}

// do sends one request and decodes the response envelope into out
// (which may be nil when the caller only cares about success).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &envelope)
		return &apiError{sentinel: sentinelFor(resp.StatusCode), message: envelope.Message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// getBytes fetches a non-JSON resource such as the QR PNG.
func (c *Client) getBytes(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &envelope)
		return nil, &apiError{sentinel: sentinelFor(resp.StatusCode), message: envelope.Message}
	}
	return data, nil
}
