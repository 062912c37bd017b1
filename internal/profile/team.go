package profile

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
)

type TeamSource interface {
	HonoursSource
	LookupTeam(ctx context.Context, id string) (domain.Team, error)
	TeamPlayers(ctx context.Context, teamID string) ([]domain.Player, error)
	LastTeamEvents(ctx context.Context, teamID string) ([]domain.Event, error)
}

type TeamView struct {
	Status     domain.Status                  `json:"status"`
	Team       *domain.Team                   `json:"team,omitempty"`
	Honours    *domain.Section[domain.Honour] `json:"honours,omitempty"`
	Squad      *domain.Section[domain.Player] `json:"squad,omitempty"`
	Results    *domain.Section[domain.Event]  `json:"results,omitempty"`
	IsFavorite bool                           `json:"isFavorite"`
}

type TeamController struct {
	source TeamSource
	toggler
}

func NewTeamController(source TeamSource, favorites Favorites, log logger.Logger) *TeamController {
	return &TeamController{
		source: source,
		toggler: toggler{
			kind:      domain.KindTeam,
			favorites: favorites,
			logger:    log,
			guard:     newInflight(),
		},
	}
}

// Load fetches the team with its honours, and concurrently its squad,
// recent results and favorite flag. Only the team lookup decides the
// view status; the other sections degrade on their own.
func (c *TeamController) Load(ctx context.Context, id string) TeamView {
	id = strings.TrimSpace(id)

	var (
		view    TeamView
		team    domain.Team
		honours domain.Section[domain.Honour]
		squad   domain.Section[domain.Player]
		results domain.Section[domain.Event]
		err     error
	)

	var g errgroup.Group
	g.Go(func() error {
		view.IsFavorite = c.favorites.IsFavorite(ctx, domain.KindTeam, id)
		return nil
	})
	g.Go(func() error {
		team, err = c.source.LookupTeam(ctx, id)
		if err != nil {
			return nil
		}
		list, herr := c.source.Honours(ctx, team.Name)
		if herr != nil {
			c.logger.Warn("team honours unavailable", logger.String("id", id), logger.Error(herr))
		}
		honours = domain.NewSection(list, herr)
		return nil
	})
	g.Go(func() error {
		list, serr := c.source.TeamPlayers(ctx, id)
		if serr != nil {
			c.logger.Warn("team squad unavailable", logger.String("id", id), logger.Error(serr))
		}
		squad = domain.NewSection(list, serr)
		return nil
	})
	g.Go(func() error {
		list, rerr := c.source.LastTeamEvents(ctx, id)
		if rerr != nil {
			c.logger.Warn("team results unavailable", logger.String("id", id), logger.Error(rerr))
		}
		results = domain.NewSection(list, rerr)
		return nil
	})
	_ = g.Wait()

	if err != nil {
		c.logger.Debug("team lookup failed", logger.String("id", id), logger.Error(err))
		view.Status = statusOfDetail(err)
		return view
	}

	view.Status = domain.StatusReady
	view.Team = &team
	view.Honours = &honours
	view.Squad = &squad
	view.Results = &results
	return view
}

// Toggle flips the team's favorite membership.
func (c *TeamController) Toggle(ctx context.Context, id string) (ToggleResult, error) {
	return c.toggle(ctx, id, func(ctx context.Context, id string) (domain.FavoriteEntry, error) {
		t, err := c.source.LookupTeam(ctx, id)
		if err != nil {
			return domain.FavoriteEntry{}, err
		}
		return t.FavoriteEntry(time.Now().UTC()), nil
	})
}
