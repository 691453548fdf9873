package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Client is the HTTP wrapper for the task backend REST API.
// All decoration (bearer token, request id) happens in the transport,
// never at individual call sites.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new task API client. source may be nil; when it
// yields no valid token the request goes out unauthenticated.
func NewClient(baseURL string, source oauth2.TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &decorator{source: source, base: http.DefaultTransport},
		},
	}
}

// decorator attaches the session bearer token (when present) and a
// correlation id to every outgoing request.
type decorator struct {
	source oauth2.TokenSource
	base   http.RoundTripper
}

func (d *decorator) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-ID", uuid.NewString())
	if clone.Header.Get("Content-Type") == "" && clone.Body != nil {
		clone.Header.Set("Content-Type", "application/json")
	}
	if d.source != nil {
		if tok, err := d.source.Token(); err == nil && tok.Valid() {
			tok.SetAuthHeader(clone)
		}
	}
	return d.base.RoundTrip(clone)
}

// do issues the request and decodes a 2xx JSON body into out (out may
// be nil). Non-2xx and transport failures come back as *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return connectivityError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return backendError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
