package domain

import "time"

// Article is one news headline.
type Article struct {
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Source      string    `json:"source,omitempty"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt,omitzero"`
}
