package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/todoapp/todo-client/client/internal/api"
	"github.com/todoapp/todo-client/client/internal/httpx"
)

// HeaderRequestID carries a per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// DefaultUserAgent is sent unless WithUserAgent overrides it.
const DefaultUserAgent = "todo-client/1.0"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the remote todos collection on behalf of OwnerID. It keeps
// no state between calls and is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	rest      *httpx.Client

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the service rooted at baseURL.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("baseURL must be absolute, got %q", baseURL)
	}

	c := &Client{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		userAgent: DefaultUserAgent,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransportWithRequestID()
	c.rest = httpx.New(c.http, c.baseURL)
	return c, nil
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// wrapTransportWithRequestID installs the outermost transport, which stamps
// every request with a correlation id and the configured User-Agent.
func (c *Client) wrapTransportWithRequestID() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &requestIDTransport{
		base:      baseTransport,
		userAgent: c.userAgent,
	}
}

// requestIDTransport wraps an http.RoundTripper to add X-Request-ID and User-Agent.
type requestIDTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	if cloned.Header.Get(HeaderRequestID) == "" {
		cloned.Header.Set(HeaderRequestID, uuid.NewString())
	}
	if t.userAgent != "" {
		cloned.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(cloned)
}

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}

// --------------------------------------------------------------------
// Todo operations - delegated to internal/api
// --------------------------------------------------------------------

// ListTodos returns every todo owned by OwnerID, in service order.
func (c *Client) ListTodos(ctx context.Context) (todos []Todo, err error) {
	defer observe(api.OpList, time.Now(), &err)
	return api.ListTodos(ctx, c.rest)
}

// CreateTodo creates a todo with the given title. The new record is sent
// with completed=false and userId=OwnerID; the returned Todo carries the
// server-assigned ID.
func (c *Client) CreateTodo(ctx context.Context, title string) (todo *Todo, err error) {
	defer observe(api.OpCreate, time.Now(), &err)
	return api.CreateTodo(ctx, c.rest, title)
}

// UpdateTodo sends t.Title and t.Completed to the todo identified by t.ID.
// t.UserID is never transmitted.
func (c *Client) UpdateTodo(ctx context.Context, t Todo) (todo *Todo, err error) {
	defer observe(api.OpUpdate, time.Now(), &err)
	return api.UpdateTodo(ctx, c.rest, t)
}

// DeleteTodo removes the todo with the given id and returns the service's
// acknowledgement body unmodified (nil when the body was empty).
func (c *Client) DeleteTodo(ctx context.Context, id int) (ack json.RawMessage, err error) {
	defer observe(api.OpDelete, time.Now(), &err)
	return api.DeleteTodo(ctx, c.rest, id)
}
