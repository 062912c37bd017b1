package catalog

import "github.com/MrSnakeDoc/scoreline/internal/domain"

// File is the on-disk layout of the catalog YAML.
type File struct {
	Leagues []domain.League `yaml:"leagues"`
	News    NewsSection     `yaml:"news"`
}

type NewsSection struct {
	Query string `yaml:"query"`
}

// Catalog is the validated, normalized catalog.
type Catalog struct {
	Leagues   []domain.League
	NewsQuery string
}

const DefaultNewsQuery = "sports"

// Default is used when no catalog file is configured or present.
func Default() Catalog {
	return Catalog{
		Leagues: []domain.League{
			{ID: "4328", Name: "English Premier League", Sport: "Soccer"},
			{ID: "4335", Name: "Spanish La Liga", Sport: "Soccer"},
			{ID: "4387", Name: "NBA", Sport: "Basketball"},
		},
		NewsQuery: DefaultNewsQuery,
	}
}
