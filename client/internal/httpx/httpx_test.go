package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	clienterrors "github.com/todoapp/todo-client/client/internal/errors"
)

type errRT struct{}

func (errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestGet_QueryAndDecode(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/items" || r.URL.Query().Get("owner") != "7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL)
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	var got []item
	if err := c.Get(context.Background(), "list items", "/items", url.Values{"owner": {"7"}}, &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got) != 2 || got[1].Name != "b" {
		t.Fatalf("unexpected decode: %+v", got)
	}
}

func TestPostAndPatch_SendJSON(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("content type = %q", ct)
		}
		b, _ := io.ReadAll(r.Body)
		var in item
		if err := json.Unmarshal(b, &in); err != nil {
			t.Errorf("request body %q: %v", b, err)
		}
		in.ID = 42
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	var out item
	if err := c.Post(context.Background(), "create item", "/items", item{Name: "x"}, &out); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if out.ID != 42 || out.Name != "x" {
		t.Fatalf("Post decoded %+v", out)
	}
	out = item{}
	if err := c.Patch(context.Background(), "update item", "/items/42", item{Name: "y"}, &out); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if out.Name != "y" {
		t.Fatalf("Patch decoded %+v", out)
	}
}

func TestDelete_NoBodyAndPassThrough(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if len(b) != 0 {
			t.Errorf("DELETE carried body %q", b)
		}
		switch r.URL.Path {
		case "/items/1":
			_, _ = w.Write([]byte(` {"deleted":true} `))
		case "/items/2":
			w.WriteHeader(http.StatusNoContent)
		case "/items/3":
			_, _ = w.Write([]byte("not json"))
		}
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	ack, err := c.Delete(context.Background(), "delete item", "/items/1")
	if err != nil || string(ack) != `{"deleted":true}` {
		t.Fatalf("Delete ack=%s err=%v", ack, err)
	}
	ack, err = c.Delete(context.Background(), "delete item", "/items/2")
	if err != nil || ack != nil {
		t.Fatalf("Delete 204 ack=%s err=%v", ack, err)
	}
	_, err = c.Delete(context.Background(), "delete item", "/items/3")
	if !errors.Is(err, clienterrors.ErrMalformedBody) {
		t.Fatalf("expected malformed body error, got %v", err)
	}
}

func TestNonSuccessStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"gone"}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	_, err := c.Delete(context.Background(), "delete item", "/items/9")
	var he *clienterrors.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %T %v", err, err)
	}
	if he.StatusCode != 404 || he.Method != http.MethodDelete || he.Path != "/items/9" || he.Body != `{"error":"gone"}` {
		t.Fatalf("unexpected HTTPError %+v", he)
	}
	var out item
	if err := c.Get(context.Background(), "get item", "/items/9", nil, &out); !clienterrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDecodeFailures(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/empty":
		case "/null":
			_, _ = w.Write([]byte("null"))
		default:
			_, _ = w.Write([]byte("{bad json"))
		}
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	var out item
	for _, p := range []string{"/empty", "/null"} {
		if err := c.Get(context.Background(), "get", p, nil, &out); !errors.Is(err, clienterrors.ErrEmptyBody) {
			t.Fatalf("%s: expected empty body error, got %v", p, err)
		}
	}
	err := c.Post(context.Background(), "post", "/bad", item{}, &out)
	var de *clienterrors.DecodeError
	if !errors.As(err, &de) || de.Op != "post" {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestNetworkFailure(t *testing.T) {
	t.Parallel()
	c := New(&http.Client{Transport: errRT{}}, "http://example.com")
	var out item
	err := c.Get(context.Background(), "get", "/x", nil, &out)
	var ne *clienterrors.NetworkError
	if !errors.As(err, &ne) || ne.Op != "get" {
		t.Fatalf("expected NetworkError, got %T %v", err, err)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(srv.Client(), srv.URL)
	var out item
	if err := c.Get(ctx, "get", "/x", nil, &out); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
