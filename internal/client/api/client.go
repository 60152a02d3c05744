// Package api is the typed HTTP client for the contentgen server. Calls never
// retry; callers decide what a failure means for their screen.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/apetrenko/contentgen/internal/api"
)

// Per-call timeout classes. Generation is slow because it waits on the
// upstream model; everything else should answer quickly.
const (
	timeoutMetadata = 10 * time.Second
	timeoutList     = 30 * time.Second
	timeoutGenerate = 120 * time.Second
)

var (
	// ErrTimeout means the per-call deadline elapsed.
	ErrTimeout = errors.New("request timed out")
	// ErrNetwork covers transport failures before any HTTP status arrived.
	ErrNetwork = errors.New("network error")
)

// APIError is a non-2xx response. Message carries the server's detail field
// when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

// TokenSource supplies the bearer token attached to authenticated calls.
// Satisfied by session.Store.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type Client struct {
	baseURL string
	session TokenSource
	http    *http.Client
}

func NewClient(baseURL string, session TokenSource) *Client {
	return &Client{baseURL: baseURL, session: session, http: &http.Client{}}
}

// request performs one HTTP call. A nil out discards the response body.
func (c *Client) request(ctx context.Context, method, path string, timeout time.Duration, payload, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.session.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		// The deadline can also expire mid-body, after Do returned.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrTimeout
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFrom(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func apiErrorFrom(status int, body []byte) *APIError {
	var parsed api.ErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return &APIError{Status: status, Message: parsed.Detail}
	}
	return &APIError{Status: status, Message: http.StatusText(status)}
}

// download fetches a binary response and returns its bytes plus the filename
// from Content-Disposition, if any.
func (c *Client) download(ctx context.Context, path string, timeout time.Duration) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	if token, ok := c.session.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, "", ErrTimeout
		}
		return nil, "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, "", ErrTimeout
		}
		return nil, "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", apiErrorFrom(resp.StatusCode, data)
	}

	filename := ""
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		filename = params["filename"]
	}
	return data, filename, nil
}
