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
	"sync"
	"time"

	"github.com/renato0307/punch/internal/domain"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
	"github.com/renato0307/punch/internal/version"
)

const maxResponseBytes = 10 << 20

// Client implements ports.APIClient over the backend's REST API
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu             sync.RWMutex
	onAuthRejected func()
	tokens         ports.TokenSource
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for baseURL (e.g. http://localhost:5000/api).
// timeout bounds every request and is the terminal failure path for calls
// that have no other deadline.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource sets where bearer tokens come from
func (c *Client) SetTokenSource(tokens ports.TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = tokens
}

// OnAuthRejected installs the hook run when an authenticated call gets a 401
func (c *Client) OnAuthRejected(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAuthRejected = fn
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

func (c *Client) authRejected() {
	c.mu.RLock()
	fn := c.onAuthRejected
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// request describes one API call
type request struct {
	body   any
	method string
	op     string
	path   string
	public bool // sent without a bearer token
	query  url.Values
}

// envelope is the {success, data, message, error} wrapper most endpoints use
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Success *bool           `json:"success"`
}

// do executes the request and returns the unwrapped payload
func (c *Client) do(ctx context.Context, r request) (json.RawMessage, error) {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", r.op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	authenticated := false
	if !r.public {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	logging.Logger.Debug("API request", "op", r.op, "method", r.method, "path", r.path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Logger.Warn("API request failed without response", "op", r.op, "error", err)
		return nil, &domain.Error{Kind: domain.KindNetwork, Op: r.op, Message: "No response from server", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindNetwork, Op: r.op, Message: "No response from server", Status: resp.StatusCode, Err: err}
	}

	logging.Logger.Debug("API response", "op", r.op, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := classify(r.op, resp.StatusCode, raw)
		if apiErr.Kind == domain.KindAuthRejected && authenticated {
			logging.Logger.Warn("Authenticated call rejected", "op", r.op)
			c.authRejected()
		}
		return nil, apiErr
	}

	return unwrap(r.op, resp.StatusCode, raw)
}

// unwrap strips the envelope when present; bare payloads pass through
func unwrap(op string, status int, raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return json.RawMessage(trimmed), nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, &domain.Error{Kind: domain.KindParse, Op: op, Message: "malformed response body", Status: status, Err: err}
	}
	if env.Success == nil {
		return json.RawMessage(trimmed), nil
	}
	if !*env.Success {
		msg := firstNonEmpty(env.Error, env.Message, fmt.Sprintf("Server error (%d)", status))
		return nil, &domain.Error{Kind: domain.KindServer, Op: op, Message: msg, Status: status}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return json.RawMessage(trimmed), nil
	}
	return env.Data, nil
}

// classify maps a non-2xx response onto an error kind
func classify(op string, status int, raw []byte) *domain.Error {
	msg := errorMessage(raw)
	if msg == "" {
		msg = fmt.Sprintf("Server error (%d)", status)
	}

	kind := domain.KindServer
	switch {
	case status == http.StatusUnauthorized:
		kind = domain.KindAuthRejected
	case status == http.StatusConflict:
		kind = domain.KindConflict
	case status == http.StatusBadRequest && mentionsActiveTimer(msg):
		kind = domain.KindConflict
	}

	return &domain.Error{Kind: kind, Op: op, Message: msg, Status: status}
}

// errorMessage prefers the body's error field, then message, then a plain-text body
func errorMessage(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err == nil {
		return firstNonEmpty(env.Error, env.Message)
	}
	if trimmed[0] == '{' || trimmed[0] == '[' || trimmed[0] == '<' {
		return ""
	}
	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	return string(trimmed)
}

func mentionsActiveTimer(msg string) bool {
	m := strings.ToLower(msg)
	if !strings.Contains(m, "already") {
		return false
	}
	return strings.Contains(m, "active") || strings.Contains(m, "running") || strings.Contains(m, "in progress")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var _ ports.APIClient = (*Client)(nil)
