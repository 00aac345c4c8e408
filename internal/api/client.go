package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 60 * time.Second

// TokenSource supplies the current bearer token, or "" when signed out.
type TokenSource func() string

// UnauthorizedHook is invoked when any authenticated call receives a 401.
// Implementations must be idempotent; overlapping requests can each observe
// the same expired token.
type UnauthorizedHook func()

// Client talks to the ElevateAI backend. All authenticated calls attach
// Authorization: Bearer <token> from the token source and treat a 401
// uniformly: invoke the unauthorized hook, return ErrUnauthorized.
type Client struct {
	baseURL        string
	http           *http.Client
	token          TokenSource
	onUnauthorized UnauthorizedHook
	log            zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUnauthorizedHook registers the shared 401 handler.
func WithUnauthorizedHook(fn UnauthorizedHook) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithLogger sets the client logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithDebugLogging wraps the transport with a round-trip dumper.
func WithDebugLogging() Option {
	return func(c *Client) {
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.http.Transport = &debugTransport{base: base, log: &c.log}
	}
}

// New constructs a Client for the given backend origin. tokens may be nil for
// a client that only reaches public endpoints.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
		token:   tokens,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// SetTokenSource replaces the token source. Used by the session store, which
// is constructed after the client but owns the token.
func (c *Client) SetTokenSource(tokens TokenSource) { c.token = tokens }

// newRequest builds a request against the backend with auth headers applied.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

// doJSON issues a JSON request and decodes a JSON response into out. A nil
// payload sends no body; a nil out discards the response body.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any, defaultMessage string) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp, defaultMessage); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// checkStatus converts non-2xx responses into typed errors. 401 triggers the
// shared unauthorized contract.
func (c *Client) checkStatus(resp *http.Response, defaultMessage string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Debug().Str("url", resp.Request.URL.Path).Msg("received 401, clearing session")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	var parsed errorBody
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(raw) > 0 {
		// Body may not be JSON at all; the default message covers that.
		_ = json.Unmarshal(raw, &parsed)
	}
	apiErr := newError(resp.StatusCode, parsed.Code, parsed.Message, defaultMessage)
	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("code", apiErr.Code).
		Str("url", resp.Request.URL.Path).
		Msg("backend request failed")
	return apiErr
}

// jsonBody marshals a payload for requests built outside doJSON. Marshal
// errors surface later as malformed-request failures from the server; the
// payload types here are all plain structs that cannot fail to encode.
func jsonBody(payload any) io.Reader {
	buf, err := json.Marshal(payload)
	if err != nil {
		return bytes.NewReader(nil)
	}
	return bytes.NewReader(buf)
}

// decodeJSON decodes a response body, wrapping decode failures as transient
// malformed-response errors.
func decodeJSON(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// debugTransport logs full request/response dumps at debug level.
type debugTransport struct {
	base http.RoundTripper
	log  *zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).
			Str("request_dump", string(dump)).Msg("HTTP request")
	}
	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.log.Debug().Err(err).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}
	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.log.Debug().Int("status_code", resp.StatusCode).Str("url", req.URL.String()).
			Str("response_dump", string(dump)).Msg("HTTP response")
	}
	return resp, nil
}
