package feed

import (
	"context"
	"strings"

	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/favorites"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
)

// PlayerResult is a search hit with its favorite flag.
type PlayerResult struct {
	domain.Player
	IsFavorite bool `json:"isFavorite"`
}

type SearchSection struct {
	Query string `json:"query"`
	domain.Section[PlayerResult]
}

type FavoritesView struct {
	Players domain.Section[domain.FavoriteEntry] `json:"players"`
	Teams   domain.Section[domain.FavoriteEntry] `json:"teams"`
	Search  SearchSection                        `json:"search"`
}

// Favorites lists saved players and teams in persisted order, plus player
// search results for query ranked by name relevance. Both come from one
// snapshot so the search flags agree with the saved sections.
func (c *Controller) Favorites(ctx context.Context, query string) FavoritesView {
	snap := c.favorites.Snapshot(ctx)
	view := savedSections(snap)

	query = strings.TrimSpace(query)
	view.Search.Query = query
	if query == "" {
		view.Search.Section = domain.NewSection[PlayerResult](nil, nil)
		return view
	}

	players, err := c.sports.SearchPlayers(ctx, query)
	if err != nil {
		c.logger.Warn("player search unavailable", logger.String("query", query), logger.Error(err))
	}
	results := make([]PlayerResult, 0, len(players))
	for _, p := range domain.RankPlayers(query, players) {
		results = append(results, PlayerResult{Player: p, IsFavorite: snap.Contains(domain.KindPlayer, p.ID)})
	}
	view.Search.Section = domain.NewSection(results, err)
	return view
}

// RemoveFavorite drops one entry from the favorites screen and returns the
// saved sections as they are after the removal.
func (c *Controller) RemoveFavorite(ctx context.Context, kind, id string) (FavoritesView, error) {
	k, err := domain.ParseKind(kind)
	if err != nil {
		return FavoritesView{}, err
	}
	if err := c.favorites.Remove(ctx, k, id); err != nil {
		return FavoritesView{}, err
	}
	view := savedSections(c.favorites.Snapshot(ctx))
	view.Search.Section = domain.NewSection[PlayerResult](nil, nil)
	return view, nil
}

func savedSections(snap favorites.Snapshot) FavoritesView {
	return FavoritesView{
		Players: domain.NewSection(snap.Of(domain.KindPlayer), nil),
		Teams:   domain.NewSection(snap.Of(domain.KindTeam), nil),
	}
}
