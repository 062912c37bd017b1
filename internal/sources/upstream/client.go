// Package upstream is the JSON-over-HTTP plumbing shared by the provider clients.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/metrics"
	"github.com/MrSnakeDoc/scoreline/internal/utils"
	"github.com/MrSnakeDoc/scoreline/internal/version"
)

const (
	// maxBody caps decoded responses; provider payloads are a few hundred KiB at most.
	maxBody = 4 << 20
	// maxErrorBody is how much of a non-2xx body is kept on StatusError.
	maxErrorBody = 4 << 10

	HeaderRequestID = "X-Request-Id"
)

// StatusError is the cause attached to a RequestFailed error when the
// provider answered with a non-2xx status.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

type Options struct {
	Provider   string        // metrics and log label, ex: "sportsdb"
	BaseURL    string        // ex: "https://www.thesportsdb.com/api/v1/json/3"
	Timeout    time.Duration // applied per call
	Headers    http.Header   // sent on every request, ex: credentials
	HTTPClient *http.Client  // optional, shared transport
	Logger     logger.Logger
	Metrics    *metrics.Manager
}

// Client issues JSON requests against one provider.
type Client struct {
	provider string
	baseURL  string
	timeout  time.Duration
	headers  http.Header
	http     *http.Client
	logger   logger.Logger
	metrics  *metrics.Manager
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		provider: opts.Provider,
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		timeout:  opts.Timeout,
		headers:  opts.Headers.Clone(),
		http:     hc,
		logger:   log,
		metrics:  opts.Metrics,
	}
}

// GetJSON fetches path with query and decodes the body into out.
// An empty 2xx body leaves out untouched.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON sends body as JSON and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", c.provider, err)
		}
		reader = bytes.NewReader(data)
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", c.provider, redact(path, err))
	}
	for name, values := range c.headers {
		req.Header[name] = values
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set(HeaderRequestID, requestID(ctx))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(path, start, redact(path, err))
	}
	defer utils.DrainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if resp.StatusCode == http.StatusNotFound {
			c.metrics.RecordUpstream(c.provider, metrics.OutcomeNotFound, time.Since(start))
			return apperror.NotFound(c.provider+" resource", path)
		}
		return c.fail(path, start, &StatusError{Code: resp.StatusCode, Body: errBody})
	}

	if out != nil {
		if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return c.fail(path, start, fmt.Errorf("decode: %w", err))
		}
	}

	c.metrics.RecordUpstream(c.provider, metrics.OutcomeOK, time.Since(start))
	return nil
}

func (c *Client) fail(path string, start time.Time, err error) error {
	elapsed := time.Since(start)
	c.metrics.RecordUpstream(c.provider, metrics.OutcomeError, elapsed)
	c.logger.Warn("upstream request failed",
		logger.String("provider", c.provider),
		logger.String("path", path),
		logger.Duration("elapsed", elapsed),
		logger.Error(err))
	return apperror.RequestFailed(c.provider, err)
}

// redact replaces the full URL carried by a *url.Error with path, since
// the base URL and query can hold provider credentials.
func redact(path string, err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	return fmt.Errorf("%s %s: %w", ue.Op, path, ue.Err)
}

// requestID propagates the inbound request id, or mints one for calls made
// outside a request (scheduler reloads).
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
