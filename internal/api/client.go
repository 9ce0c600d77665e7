// Package api is a thin client for the governance backend's REST API.
//
// Every call is a single attempt: no retry, no backoff, no caching. The
// caller decides what a failure means.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/styring/internal/contract"
)

// TokenSource supplies the bearer credential for authenticated requests.
// session.Store satisfies it.
type TokenSource interface {
	Token() (string, bool)
}

// Config holds the client's connection settings.
type Config struct {
	// BaseURL is the backend origin, without a trailing slash.
	BaseURL string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
}

// Client issues JSON requests against the backend.
type Client struct {
	cfg      Config
	http     *http.Client
	tokens   TokenSource
	observer Observer
}

// NewClient creates a Client. tokens may be nil for a client that only
// talks to the auth endpoints.
func NewClient(cfg Config, tokens TokenSource, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.Timeout},
		tokens:   tokens,
		observer: observer,
	}
}

// Do sends one request and decodes the JSON response body into out.
// body is JSON-encoded when non-nil; out may be nil to discard the
// response. An empty or null 2xx body leaves out untouched.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()
	status, err := c.do(ctx, method, path, body, out)

	c.observer.OnCallComplete(CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.tokens != nil && !isAuthPath(path) {
		if tok, ok := c.tokens.Token(); ok {
			httpReq.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if isConnectionError(err) {
			return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return 0, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return httpResp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return httpResp.StatusCode, &Error{
			Method: method,
			Path:   path,
			Status: httpResp.StatusCode,
			Detail: parseDetail(respBody),
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return httpResp.StatusCode, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return httpResp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return httpResp.StatusCode, nil
}

// isAuthPath reports whether path is one of the unauthenticated endpoints.
func isAuthPath(path string) bool {
	return strings.HasPrefix(path, "/auth/")
}

// parseDetail extracts {"detail": "..."} from an error body. FastAPI-style
// validation errors carry a list under detail; the first msg is used.
func parseDetail(body []byte) string {
	var withString contract.ErrorResponse
	if err := json.Unmarshal(body, &withString); err == nil {
		return withString.Detail
	}

	var withList struct {
		Detail []struct {
			Msg string `json:"msg"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(body, &withList); err == nil && len(withList.Detail) > 0 {
		return withList.Detail[0].Msg
	}
	return ""
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
