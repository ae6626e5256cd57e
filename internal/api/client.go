// Package api implements the REST client for the food-assistant backend.
//
// All operations go through a single request/response pipeline: the bearer
// token is attached when one is available, 2xx bodies are decoded per the
// caller's expectation (JSON, plain text, or a file download), and every
// non-2xx response is normalized into a *Error carrying both a technical
// and a user-facing message. Callers never have to inspect raw responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/plateful/plateful/internal/logging"
	"github.com/plateful/plateful/internal/models"
)

const apiPrefix = "/api/v1"

// DefaultBaseURL is used when no server address is configured.
const DefaultBaseURL = "http://localhost:8080"

// TokenSource yields the current bearer token, or "" when the user is not
// authenticated.
type TokenSource interface {
	Token() string
}

// Client talks to the backend. Safe for use from a single logical flow;
// the app serializes calls per view with loading flags, not locks.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// New builds a Client against baseURL. tokens may be nil for a client that
// only performs unauthenticated calls.
func New(baseURL string, tokens TokenSource, log logging.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			// The password-reset verify endpoint answers with a redirect to
			// the web frontend; the client must classify that response, not
			// follow it.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		tokens: tokens,
		log:    log,
	}
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := c.baseURL + apiPrefix + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// newRequest builds a request with a JSON body (when body != nil) and bearer
// auth (when a token is available).
func (c *Client) newRequest(ctx context.Context, method, path string, q url.Values, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, q), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachAuth(req)
	return req, nil
}

// attachAuth sets the Authorization header when a non-expired token exists.
// Token lookup must never abort a request: on any failure the call simply
// proceeds unauthenticated.
func (c *Client) attachAuth(req *http.Request) {
	if c.tokens == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil && c.log != nil {
			c.log.Warn(req.Context(), "token lookup failed, sending unauthenticated", "reason", r)
		}
	}()
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) send(req *http.Request, fallback string) (*http.Response, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, transportError(err, fallback)
	}
	return resp, nil
}

func success(code int) bool { return code >= 200 && code < 300 }

// doJSON runs the request and decodes a 2xx JSON response into out; pass a
// nil out to discard the body. Non-2xx responses come back as a *Error.
func (c *Client) doJSON(ctx context.Context, method, path string, q url.Values, body any, fallback string, out any) error {
	req, err := c.newRequest(ctx, method, path, q, body)
	if err != nil {
		return err
	}
	resp, err := c.send(req, fallback)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return c.classify(resp, path, fallback)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// doText runs the request and returns a 2xx body verbatim.
func (c *Client) doText(ctx context.Context, method, path string, q url.Values, fallback string) (string, error) {
	req, err := c.newRequest(ctx, method, path, q, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.send(req, fallback)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return "", c.classify(resp, path, fallback)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(b), nil
}

// doDownload fetches a file. The filename comes from the
// Content-Disposition header when present, else fallbackName.
func (c *Client) doDownload(ctx context.Context, path, fallbackName, fallback string) (models.Download, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return models.Download{}, err
	}
	resp, err := c.send(req, fallback)
	if err != nil {
		return models.Download{}, err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return models.Download{}, c.classify(resp, path, fallback)
	}

	name := filenameFromDisposition(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = fallbackName
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Download{}, fmt.Errorf("read download: %w", err)
	}
	return models.Download{Filename: name, Data: data}, nil
}

// classify reads the failed response body and produces the structured error.
// A body read failure degrades to an empty body, never to a second error.
func (c *Client) classify(resp *http.Response, path, fallback string) *Error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		body = nil
	}
	return classifyResponse(resp.StatusCode, path, body, fallback)
}
