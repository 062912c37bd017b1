package news

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/sources/upstream"
)

func newTestClient(t *testing.T, apiKey string, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(upstream.Options{BaseURL: srv.URL + "/v2", Timeout: time.Second}, apiKey, 5)
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/v2/everything" || q.Get("q") != "football" || q.Get("sortBy") != "publishedAt" ||
			q.Get("pageSize") != "5" || q.Has("apiKey") {
			t.Errorf("unexpected request %s", r.URL)
		}
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			t.Errorf("X-Api-Key = %q, want secret", got)
		}
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":3,"articles":[
			{"source":{"name":"BBC Sport"},"author":"Jane","title":"Derby day","url":"https://x/1","urlToImage":"https://x/1.jpg","publishedAt":"2026-10-18T20:15:00Z"},
			{"title":"[Removed]","url":"https://removed.com"},
			{"title":"","url":"https://x/3"}
		]}`))
	})

	got, err := c.Search(context.Background(), " football ")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Search() returned %d articles, want 1", len(got))
	}
	a := got[0]
	if a.Title != "Derby day" || a.Source != "BBC Sport" || a.ImageURL != "https://x/1.jpg" {
		t.Errorf("article = %+v", a)
	}
	if !a.PublishedAt.Equal(time.Date(2026, 10, 18, 20, 15, 0, 0, time.UTC)) {
		t.Errorf("PublishedAt = %v", a.PublishedAt)
	}
}

func TestSearchFailures(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		query  string
		body   string
		want   error
	}{
		{name: "no api key", query: "nba", want: apperror.ErrRequestFailed},
		{name: "empty query", apiKey: "k", query: "  ", want: apperror.ErrValidation},
		{name: "provider error", apiKey: "k", query: "nba", body: `{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`, want: apperror.ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.apiKey, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := c.Search(context.Background(), tt.query)
			if !errors.Is(err, tt.want) {
				t.Errorf("Search() error = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("missing key is reported", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {})
		_, err := c.Search(context.Background(), "nba")
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("Search() error = %v, want ErrNotConfigured in chain", err)
		}
	})
}

func TestSearchMalformedDate(t *testing.T) {
	c := newTestClient(t, "k", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","articles":[
			{"title":"Late kickoff","url":"https://x/1","publishedAt":"yesterday"}
		]}`))
	})

	got, err := c.Search(context.Background(), "football")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || !got[0].PublishedAt.IsZero() {
		t.Fatalf("Search() = %+v, want one article with no date", got)
	}
	data, err := json.Marshal(got[0])
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "publishedAt") {
		t.Errorf("json = %s, want publishedAt omitted", data)
	}
}

func TestSearchErrorOmitsAPIKey(t *testing.T) {
	const key = "SECRET-KEY-123"
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(upstream.Options{BaseURL: srv.URL + "/v2", Timeout: time.Second}, key, 5)
	_, err := c.Search(context.Background(), "football")
	if !errors.Is(err, apperror.ErrRequestFailed) {
		t.Fatalf("Search() error = %v, want request failed", err)
	}
	if strings.Contains(err.Error(), key) {
		t.Errorf("error leaks the api key: %v", err)
	}
}
