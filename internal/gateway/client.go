// Package gateway provides the HTTP client for the remote BlogHub API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the bearer credential for outbound requests. An empty
// string means no Authorization header is attached.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-credential TokenSource, used by tests and
// one-off tooling.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// TokenFunc adapts a function to the TokenSource interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client is an HTTP client for the BlogHub REST API.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient creates a new API client. A nil tokens source means requests go
// out unauthenticated.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, "", nil)
}

func (c *Client) doRequestJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, &RequestError{Op: "marshalling request", Err: err}
	}
	return c.doRequestWithBody(ctx, method, path, "application/json", bytes.NewReader(jsonBody))
}

func (c *Client) doRequestWithBody(
	ctx context.Context, method, path, contentType string, body io.Reader,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &RequestError{Op: "creating request", Err: err}
	}

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &RemoteError{StatusCode: resp.StatusCode, Message: body.text()}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &RequestError{Op: "decoding response", Err: err}
		}
	}

	return nil
}

func pathWithQuery(path string, params url.Values) string {
	if len(params) > 0 {
		return path + "?" + params.Encode()
	}
	return path
}
