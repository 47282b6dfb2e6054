// Package httpx is the generic request helper the todo access layer is built
// on. It exposes one method per HTTP verb against a fixed base URL, decodes
// JSON bodies, and turns network failures and non-2xx statuses into the
// error types of client/internal/errors.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	clienterrors "github.com/todoapp/todo-client/client/internal/errors"
)

// Client issues JSON requests against one base URL. It holds no per-call
// state and is safe for concurrent use.
type Client struct {
	rc *resty.Client
}

// New wraps hc. The transport chain installed on hc is used as-is; resty
// only adds body marshalling and URL composition on top.
func New(hc *http.Client, baseURL string) *Client {
	rc := resty.NewWithClient(hc).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetLogger(zerologAdapter{})
	return &Client{rc: rc}
}

// Get fetches path with the given query and decodes the body into out.
func (c *Client) Get(ctx context.Context, op, path string, query url.Values, out any) error {
	req := c.rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	raw, err := c.do(req, op, http.MethodGet, path)
	if err != nil {
		return err
	}
	return decode(op, raw, out)
}

// Post sends body as JSON to path and decodes the response into out.
func (c *Client) Post(ctx context.Context, op, path string, body, out any) error {
	raw, err := c.do(c.rc.R().SetContext(ctx).SetBody(body), op, http.MethodPost, path)
	if err != nil {
		return err
	}
	return decode(op, raw, out)
}

// Patch sends body as JSON to path and decodes the response into out.
func (c *Client) Patch(ctx context.Context, op, path string, body, out any) error {
	raw, err := c.do(c.rc.R().SetContext(ctx).SetBody(body), op, http.MethodPatch, path)
	if err != nil {
		return err
	}
	return decode(op, raw, out)
}

// Delete sends a body-less DELETE to path. The response body is returned
// verbatim; an empty body yields a nil message.
func (c *Client) Delete(ctx context.Context, op, path string) (json.RawMessage, error) {
	raw, err := c.do(c.rc.R().SetContext(ctx), op, http.MethodDelete, path)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, clienterrors.NewDecodeError(op, clienterrors.ErrMalformedBody)
	}
	return json.RawMessage(raw), nil
}

func (c *Client) do(req *resty.Request, op, method, path string) ([]byte, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, clienterrors.NewNetworkError(op, err)
	}
	if !resp.IsSuccess() {
		return nil, clienterrors.NewHTTPError(op, method, path, resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

func decode(op string, raw []byte, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return clienterrors.NewDecodeError(op, clienterrors.ErrEmptyBody)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return clienterrors.NewDecodeError(op, err)
	}
	return nil
}
