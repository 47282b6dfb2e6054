package api

import (
	"context"
	"encoding/json"
	"net/url"
)

// Requester is the generic HTTP adapter the access functions compose over.
// *httpx.Client satisfies it.
type Requester interface {
	Get(ctx context.Context, op, path string, query url.Values, out any) error
	Post(ctx context.Context, op, path string, body, out any) error
	Patch(ctx context.Context, op, path string, body, out any) error
	Delete(ctx context.Context, op, path string) (json.RawMessage, error)
}
