package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
)

func newTestClient(t *testing.T, h http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{Provider: "test", BaseURL: srv.URL + "/", Timeout: timeout})
}

func TestGetJSON(t *testing.T) {
	var gotPath, gotQuery, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotReqID = r.Header.Get(HeaderRequestID)
		_, _ = w.Write([]byte(`{"name":"Arsenal"}`))
	}, time.Second)

	var out struct {
		Name string `json:"name"`
	}
	err := c.GetJSON(context.Background(), "/lookupteam.php", url.Values{"id": {"133604"}}, &out)
	if err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if out.Name != "Arsenal" {
		t.Errorf("decoded name = %q", out.Name)
	}
	if gotPath != "/lookupteam.php" || gotQuery != "id=133604" {
		t.Errorf("request = %s?%s", gotPath, gotQuery)
	}
	if gotReqID == "" {
		t.Error("request id header should always be set")
	}
}

func TestRequestIDPropagation(t *testing.T) {
	var gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get(HeaderRequestID)
	}, time.Second)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "host/abc-000001")
	if err := c.GetJSON(ctx, "x", nil, nil); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if gotReqID != "host/abc-000001" {
		t.Errorf("request id = %q, want the inbound one", gotReqID)
	}
}

func TestFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
		want    error
		status  int
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			want:    apperror.ErrRequestFailed,
			status:  http.StatusBadGateway,
		},
		{
			name:    "not found",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			want:    apperror.ErrNotFound,
		},
		{
			name:    "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("<html>")) },
			want:    apperror.ErrRequestFailed,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			timeout: 50 * time.Millisecond,
			want:    apperror.ErrRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeout := tt.timeout
			if timeout == 0 {
				timeout = time.Second
			}
			c := newTestClient(t, tt.handler, timeout)

			var out map[string]any
			err := c.GetJSON(context.Background(), "x", nil, &out)
			if !errors.Is(err, tt.want) {
				t.Fatalf("GetJSON() error = %v, want %v", err, tt.want)
			}
			if tt.status != 0 {
				var se *StatusError
				if !errors.As(err, &se) || se.Code != tt.status {
					t.Errorf("StatusError = %+v, want code %d", se, tt.status)
				}
			}
		})
	}
}

func TestTransportErrorOmitsCredentials(t *testing.T) {
	const secret = "SECRET-KEY-123"
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(Options{Provider: "test", BaseURL: srv.URL + "/api/v1/json/" + secret, Timeout: time.Second})
	err := c.GetJSON(context.Background(), "lookupplayer.php", url.Values{"token": {secret}}, nil)
	if !errors.Is(err, apperror.ErrRequestFailed) {
		t.Fatalf("GetJSON() error = %v, want request failed", err)
	}
	if strings.Contains(err.Error(), secret) {
		t.Errorf("error leaks the credential: %v", err)
	}
	if !strings.Contains(err.Error(), "lookupplayer.php") {
		t.Errorf("error = %v, want the request path", err)
	}
}

func TestStaticHeaders(t *testing.T) {
	var gotKey, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotAccept = r.Header.Get("Accept")
	}))
	t.Cleanup(srv.Close)

	headers := http.Header{"X-Api-Key": {"k"}}
	c := New(Options{Provider: "test", BaseURL: srv.URL, Headers: headers})
	headers.Set("X-Api-Key", "changed")

	if err := c.GetJSON(context.Background(), "x", nil, nil); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if gotKey != "k" {
		t.Errorf("X-Api-Key = %q, want k", gotKey)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
}

func TestEmptyBodyLeavesOutUntouched(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, time.Second)

	out := map[string]string{"keep": "me"}
	if err := c.GetJSON(context.Background(), "x", nil, &out); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if out["keep"] != "me" {
		t.Errorf("out = %v", out)
	}
}

func TestPostJSON(t *testing.T) {
	var gotCT, gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"ok":true}`))
	}, time.Second)

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.PostJSON(context.Background(), "/auth/login", map[string]string{"username": "u"}, &out); err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}
	if !out.OK || gotMethod != http.MethodPost || gotCT != "application/json" {
		t.Errorf("method=%s content-type=%s ok=%v", gotMethod, gotCT, out.OK)
	}
}
