package profile

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
)

type PlayerSource interface {
	HonoursSource
	LookupPlayer(ctx context.Context, id string) (domain.Player, error)
}

type PlayerView struct {
	Status     domain.Status                  `json:"status"`
	Player     *domain.Player                 `json:"player,omitempty"`
	Honours    *domain.Section[domain.Honour] `json:"honours,omitempty"`
	IsFavorite bool                           `json:"isFavorite"`
}

type PlayerController struct {
	source PlayerSource
	toggler
}

func NewPlayerController(source PlayerSource, favorites Favorites, log logger.Logger) *PlayerController {
	return &PlayerController{
		source: source,
		toggler: toggler{
			kind:      domain.KindPlayer,
			favorites: favorites,
			logger:    log,
			guard:     newInflight(),
		},
	}
}

// Load fetches the player, then the honours for the player's name. The
// favorite flag is read concurrently.
func (c *PlayerController) Load(ctx context.Context, id string) PlayerView {
	id = strings.TrimSpace(id)

	var (
		view    PlayerView
		player  domain.Player
		honours domain.Section[domain.Honour]
		err     error
	)

	var g errgroup.Group
	g.Go(func() error {
		view.IsFavorite = c.favorites.IsFavorite(ctx, domain.KindPlayer, id)
		return nil
	})
	g.Go(func() error {
		player, err = c.source.LookupPlayer(ctx, id)
		if err != nil {
			return nil
		}
		list, herr := c.source.Honours(ctx, player.Name)
		if herr != nil {
			c.logger.Warn("player honours unavailable", logger.String("id", id), logger.Error(herr))
		}
		honours = domain.NewSection(list, herr)
		return nil
	})
	_ = g.Wait()

	if err != nil {
		c.logger.Debug("player lookup failed", logger.String("id", id), logger.Error(err))
		view.Status = statusOfDetail(err)
		return view
	}

	view.Status = domain.StatusReady
	view.Player = &player
	view.Honours = &honours
	return view
}

// Toggle flips the player's favorite membership.
func (c *PlayerController) Toggle(ctx context.Context, id string) (ToggleResult, error) {
	return c.toggle(ctx, id, func(ctx context.Context, id string) (domain.FavoriteEntry, error) {
		p, err := c.source.LookupPlayer(ctx, id)
		if err != nil {
			return domain.FavoriteEntry{}, err
		}
		return p.FavoriteEntry(time.Now().UTC()), nil
	})
}
