// Package feed builds the list screens: home, sports, news and favorites.
// Every screen is a plain re-fetch; sections fail independently.
package feed

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/favorites"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/sources/catalog"
)

// maxParallel bounds concurrent upstream calls for one home screen.
const maxParallel = 4

type SportsSource interface {
	NextLeagueEvents(ctx context.Context, leagueID string) ([]domain.Event, error)
	LastTeamEvents(ctx context.Context, teamID string) ([]domain.Event, error)
	Sports(ctx context.Context) ([]domain.Sport, error)
	SearchPlayers(ctx context.Context, name string) ([]domain.Player, error)
}

type NewsSource interface {
	Search(ctx context.Context, query string) ([]domain.Article, error)
}

type FavoritesStore interface {
	Snapshot(ctx context.Context) favorites.Snapshot
	Remove(ctx context.Context, kind domain.Kind, id string) error
}

// Catalog is satisfied by *index.Catalog.
type Catalog interface {
	Leagues() []domain.League
	NewsQuery() string
	Sports() ([]domain.Sport, bool)
}

type Controller struct {
	sports    SportsSource
	news      NewsSource
	favorites FavoritesStore
	catalog   Catalog
	logger    logger.Logger
}

func NewController(sports SportsSource, news NewsSource, favs FavoritesStore, cat Catalog, log logger.Logger) *Controller {
	return &Controller{
		sports:    sports,
		news:      news,
		favorites: favs,
		catalog:   cat,
		logger:    log,
	}
}

type LeagueFixtures struct {
	League domain.League                `json:"league"`
	Events domain.Section[domain.Event] `json:"events"`
}

type HomeView struct {
	Fixtures []LeagueFixtures               `json:"fixtures"`
	News     domain.Section[domain.Article] `json:"news"`
}

// Home lists the next fixtures of every featured league and the latest
// headlines for the catalog's news query.
func (c *Controller) Home(ctx context.Context) HomeView {
	leagues := c.catalog.Leagues()
	view := HomeView{Fixtures: make([]LeagueFixtures, len(leagues))}

	var g errgroup.Group
	g.SetLimit(maxParallel)
	for i, lg := range leagues {
		g.Go(func() error {
			events, err := c.sports.NextLeagueEvents(ctx, lg.ID)
			if err != nil {
				c.logger.Warn("fixtures unavailable", logger.String("league", lg.ID), logger.Error(err))
			}
			view.Fixtures[i] = LeagueFixtures{League: lg, Events: domain.NewSection(events, err)}
			return nil
		})
	}
	g.Go(func() error {
		view.News = c.searchNews(ctx, c.defaultQuery())
		return nil
	})
	_ = g.Wait()

	return view
}

// Sports serves the sport list from the catalog index once it has been
// loaded, and fetches it otherwise.
func (c *Controller) Sports(ctx context.Context) domain.Section[domain.Sport] {
	if sports, loaded := c.catalog.Sports(); loaded {
		return domain.NewSection(sports, nil)
	}
	sports, err := c.sports.Sports(ctx)
	if err != nil {
		c.logger.Warn("sports unavailable", logger.Error(err))
	}
	return domain.NewSection(sports, err)
}

type NewsView struct {
	Query string `json:"query"`
	domain.Section[domain.Article]
}

// News searches headlines; an empty query uses the catalog default.
func (c *Controller) News(ctx context.Context, query string) NewsView {
	query = strings.TrimSpace(query)
	if query == "" {
		query = c.defaultQuery()
	}
	return NewsView{Query: query, Section: c.searchNews(ctx, query)}
}

// TeamResults lists the latest results of a team.
func (c *Controller) TeamResults(ctx context.Context, teamID string) domain.Section[domain.Event] {
	events, err := c.sports.LastTeamEvents(ctx, teamID)
	if err != nil {
		c.logger.Warn("team results unavailable", logger.String("team", teamID), logger.Error(err))
	}
	return domain.NewSection(events, err)
}

func (c *Controller) searchNews(ctx context.Context, query string) domain.Section[domain.Article] {
	articles, err := c.news.Search(ctx, query)
	if err != nil {
		c.logger.Warn("news unavailable", logger.String("query", query), logger.Error(err))
	}
	return domain.NewSection(articles, err)
}

func (c *Controller) defaultQuery() string {
	if q := c.catalog.NewsQuery(); q != "" {
		return q
	}
	return catalog.DefaultNewsQuery
}
