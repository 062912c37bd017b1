// Package catalog loads the featured leagues and the default news query.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/scoreline/internal/domain"
)

// ErrNoLeagues is returned for a catalog file that lists no usable league.
var ErrNoLeagues = errors.New("catalog lists no leagues")

type Loader struct {
	filePath string
}

func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads the catalog file. An unset path or a missing file yields Default().
func (l *Loader) Load() (Catalog, error) {
	if l.filePath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(l.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}

	return normalize(file)
}

// normalize trims fields, drops leagues without an id and keeps the first of duplicated ids.
func normalize(file File) (Catalog, error) {
	seen := make(map[string]bool, len(file.Leagues))
	leagues := make([]domain.League, 0, len(file.Leagues))
	for _, lg := range file.Leagues {
		lg.ID = strings.TrimSpace(lg.ID)
		lg.Name = strings.TrimSpace(lg.Name)
		lg.Sport = strings.TrimSpace(lg.Sport)
		if lg.ID == "" || seen[lg.ID] {
			continue
		}
		if lg.Name == "" {
			lg.Name = lg.ID
		}
		seen[lg.ID] = true
		leagues = append(leagues, lg)
	}
	if len(leagues) == 0 {
		return Catalog{}, ErrNoLeagues
	}

	query := strings.TrimSpace(file.News.Query)
	if query == "" {
		query = DefaultNewsQuery
	}

	return Catalog{Leagues: leagues, NewsQuery: query}, nil
}
