package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/shopauth/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

const (
	CSRFCookieName      = "csrftoken"
	HeaderCSRF          = "X-CSRFToken"
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	TokenScheme         = "Token"
)

// TokenSource supplies the session token for the Authorization header.
// An empty token means the header is omitted.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Recorder observes finished requests; status is 0 when none arrived.
type Recorder interface {
	ObserveRequest(endpoint, method string, status int, d time.Duration)
}

// Caller is the request surface used by services.
type Caller interface {
	Call(ctx context.Context, endpoint, method string, body any) (json.RawMessage, error)
}

// Client issues JSON requests against one API base URL.
type Client struct {
	baseURL    string
	origin     *url.URL
	httpClient *http.Client
	tokens     TokenSource
	logger     logging.Logger
	recorder   Recorder
	requestID  func() string
	csrfSeed   string
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client. A client without a cookie
// jar is copied and given one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// WithCSRFToken seeds the csrftoken cookie, for servers that issue it out of
// band. A cookie set later by the server replaces it.
func WithCSRFToken(token string) Option {
	return func(c *Client) { c.csrfSeed = token }
}

// New builds a Client for baseURL, e.g. "http://127.0.0.1:8000/api".
// tokens may be nil for anonymous use.
func New(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host required", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		origin:     u,
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     logging.Nop(),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		hc := *c.httpClient
		hc.Jar = jar
		c.httpClient = &hc
	}
	if c.csrfSeed != "" {
		c.httpClient.Jar.SetCookies(c.origin, []*http.Cookie{{Name: CSRFCookieName, Value: c.csrfSeed, Path: "/"}})
	}
	return c, nil
}

// BaseURL returns the URL every endpoint is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// Call sends method to baseURL+endpoint and returns the raw JSON payload of a
// 2xx response. An empty method means GET. body is JSON-encoded unless it is
// nil or the method is GET.
func (c *Client) Call(ctx context.Context, endpoint, method string, body any) (json.RawMessage, error) {
	if method == "" {
		method = http.MethodGet
	}
	target := c.baseURL + endpoint

	var payload io.Reader
	if body != nil && method != http.MethodGet {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	reqID := c.requestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, reqID)
	if csrf := c.csrfToken(); csrf != "" {
		req.Header.Set(HeaderCSRF, csrf)
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(ctx); tok != "" {
			req.Header.Set(HeaderAuthorization, TokenScheme+" "+tok)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(ctx, endpoint, method, 0, start, reqID)
		return nil, &NetworkError{Method: method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.observe(ctx, endpoint, method, resp.StatusCode, start, reqID)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: target, Err: err}
	}

	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &ParseError{StatusCode: resp.StatusCode, Body: raw, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Payload: raw}
	}
	return raw, nil
}

// Do performs Call and decodes the payload into T.
func Do[T any](ctx context.Context, c Caller, endpoint, method string, body any) (*T, error) {
	raw, err := c.Call(ctx, endpoint, method, body)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ParseError{Body: raw, Err: err}
	}
	return &out, nil
}

func (c *Client) csrfToken() string {
	for _, ck := range c.httpClient.Jar.Cookies(c.origin) {
		if ck.Name == CSRFCookieName {
			return ck.Value
		}
	}
	return ""
}

func (c *Client) observe(ctx context.Context, endpoint, method string, status int, start time.Time, reqID string) {
	d := time.Since(start)
	c.logger.Debug(ctx, "api request",
		"method", method,
		"endpoint", endpoint,
		"status", status,
		"duration", d,
		"request_id", reqID,
	)
	if c.recorder != nil {
		c.recorder.ObserveRequest(endpoint, method, status, d)
	}
}
