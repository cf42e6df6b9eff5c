package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client is the HTTP wrapper for the site's REST API. It translates a
// (method, path, params-or-body) call into one network request and a parsed
// envelope. It holds no state beyond the base URL: no retries, no caching,
// no timeout enforcement.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client. Meant for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new API client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Params are query-string parameters. Empty values are not sent.
type Params map[string]string

// Get issues GET path?params and parses the response envelope.
func (c *Client) Get(ctx context.Context, path string, params Params) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post issues POST path with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put issues PUT path with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Delete issues DELETE path.
func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params Params, body any) (*Envelope, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			if v == "" {
				continue
			}
			q.Set(k, v)
		}
		if enc := q.Encode(); enc != "" {
			fullURL += "?" + enc
		}
	}

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Status: 0, Message: MsgConnectionFailed}
	}
	defer resp.Body.Close()

	var env Envelope
	if decErr := json.NewDecoder(resp.Body).Decode(&env); decErr != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil, &Error{Status: resp.StatusCode, Message: MsgInvalidResponse}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode, Message: messageOf(env)}
	}
	if !env.Success {
		return nil, &Error{Status: resp.StatusCode, Message: messageOf(env)}
	}
	return &env, nil
}

func messageOf(env Envelope) string {
	if env.Error != "" {
		return env.Error
	}
	return MsgGenericFailure
}

// Decode unmarshals the envelope's data payload into T.
func Decode[T any](env *Envelope) (T, error) {
	var out T
	if env == nil || len(env.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("failed to decode response data: %w", err)
	}
	return out, nil
}
