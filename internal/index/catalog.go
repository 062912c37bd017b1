package index

import (
	"slices"
	"sync"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/domain"
)

// Catalog holds the featured leagues, the default news query and the
// provider's sport list between reloads.
type Catalog struct {
	mu               sync.RWMutex
	leagues          []domain.League
	newsQuery        string
	sports           []domain.Sport
	lastReload       time.Time // last catalog file load
	lastSportsReload time.Time // last successful sports fetch
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// UpdateCatalog replaces the leagues and the news query.
func (c *Catalog) UpdateCatalog(leagues []domain.League, newsQuery string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.leagues = slices.Clone(leagues)
	c.newsQuery = newsQuery
	c.lastReload = time.Now()
}

// UpdateSports replaces the sport list.
func (c *Catalog) UpdateSports(sports []domain.Sport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sports = slices.Clone(sports)
	c.lastSportsReload = time.Now()
}

// Leagues returns a copy of the featured leagues.
func (c *Catalog) Leagues() []domain.League {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.leagues)
}

func (c *Catalog) NewsQuery() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.newsQuery
}

// Sports returns a copy of the sport list and whether one was ever loaded.
func (c *Catalog) Sports() ([]domain.Sport, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.sports), !c.lastSportsReload.IsZero()
}

// Count returns the number of featured leagues.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.leagues)
}

func (c *Catalog) GetLastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}

func (c *Catalog) GetLastSportsReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastSportsReload
}
