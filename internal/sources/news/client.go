// Package news searches headlines through the NewsAPI /v2/everything endpoint.
package news

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/sources/upstream"
)

const Provider = "news"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("news provider not configured")

type response struct {
	Status       string       `json:"status"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
}

type rawArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

type Client struct {
	api      *upstream.Client
	apiKey   string
	pageSize int
	logger   logger.Logger
}

func New(opts upstream.Options, apiKey string, pageSize int) *Client {
	opts.Provider = Provider
	if apiKey != "" {
		opts.Headers = http.Header{"X-Api-Key": {apiKey}}
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		api:      upstream.New(opts),
		apiKey:   apiKey,
		pageSize: pageSize,
		logger:   log,
	}
}

// Search returns the latest articles matching query, newest first.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Article, error) {
	if c.apiKey == "" {
		return nil, apperror.RequestFailed(Provider, ErrNotConfigured)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.ValidationFailed("q", "query is required")
	}

	var resp response
	err := c.api.GetJSON(ctx, "everything", url.Values{
		"q":        {query},
		"sortBy":   {"publishedAt"},
		"pageSize": {strconv.Itoa(c.pageSize)},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Status == "error" {
		return nil, apperror.RequestFailed(Provider, errors.New(resp.Code+": "+resp.Message))
	}

	out := make([]domain.Article, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title == "" || a.URL == "" || a.Title == "[Removed]" {
			continue
		}
		// An unparseable date is left zero and omitted from the JSON.
		published, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil {
			c.logger.Debug("article date unparseable",
				logger.String("url", a.URL),
				logger.String("published_at", a.PublishedAt))
		}
		out = append(out, domain.Article{
			Title:       a.Title,
			Author:      a.Author,
			Source:      a.Source.Name,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			PublishedAt: published,
		})
	}
	return out, nil
}
