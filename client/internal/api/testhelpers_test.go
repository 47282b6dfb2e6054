package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/todoapp/todo-client/client/internal/httpx"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// recorded is one request observed by a fake server.
type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// fakeServer records every request and answers with the handler's reply.
type fakeServer struct {
	*httptest.Server
	mu   sync.Mutex
	reqs []recorded
}

func newFakeServer(t *testing.T, reply http.HandlerFunc) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.reqs = append(fs.reqs, recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Body: b})
		fs.mu.Unlock()
		reply(w, r)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) requester() *httpx.Client { return httpx.New(fs.Client(), fs.URL) }

func (fs *fakeServer) last(t *testing.T) recorded {
	t.Helper()
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if len(fs.reqs) == 0 {
		t.Fatal("no request recorded")
	}
	return fs.reqs[len(fs.reqs)-1]
}

func (fs *fakeServer) count() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.reqs)
}

func jsonReply(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

// stubRequester returns err from every verb without touching the network.
type stubRequester struct{ err error }

func (s stubRequester) Get(context.Context, string, string, url.Values, any) error { return s.err }
func (s stubRequester) Post(context.Context, string, string, any, any) error       { return s.err }
func (s stubRequester) Patch(context.Context, string, string, any, any) error      { return s.err }
func (s stubRequester) Delete(context.Context, string, string) (json.RawMessage, error) {
	return nil, s.err
}
