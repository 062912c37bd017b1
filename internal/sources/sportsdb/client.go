// Package sportsdb reads fixtures, players, teams and sports from TheSportsDB v1 API.
package sportsdb

import (
	"context"
	"net/url"
	"strings"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/sources/upstream"
)

const Provider = "sportsdb"

type Client struct {
	api *upstream.Client
}

// New expects opts.BaseURL to include the API key segment,
// ex: https://www.thesportsdb.com/api/v1/json/3
func New(opts upstream.Options) *Client {
	opts.Provider = Provider
	return &Client{api: upstream.New(opts)}
}

// BaseURL joins the versioned API root and the key.
func BaseURL(root, apiKey string) string {
	return strings.TrimRight(root, "/") + "/" + url.PathEscape(apiKey)
}

func (c *Client) LookupPlayer(ctx context.Context, id string) (domain.Player, error) {
	var resp playersResponse
	if err := c.api.GetJSON(ctx, "lookupplayer.php", url.Values{"id": {id}}, &resp); err != nil {
		return domain.Player{}, err
	}
	players := mapPlayers(resp.Players)
	if len(players) == 0 {
		return domain.Player{}, apperror.NotFound("player", id)
	}
	return players[0], nil
}

func (c *Client) LookupTeam(ctx context.Context, id string) (domain.Team, error) {
	var resp teamsResponse
	if err := c.api.GetJSON(ctx, "lookupteam.php", url.Values{"id": {id}}, &resp); err != nil {
		return domain.Team{}, err
	}
	teams := mapTeams(resp.Teams)
	if len(teams) == 0 {
		return domain.Team{}, apperror.NotFound("team", id)
	}
	return teams[0], nil
}

func (c *Client) SearchPlayers(ctx context.Context, name string) ([]domain.Player, error) {
	var resp playerListResponse
	if err := c.api.GetJSON(ctx, "searchplayers.php", url.Values{"p": {name}}, &resp); err != nil {
		return nil, err
	}
	return mapPlayers(resp.Player), nil
}

func (c *Client) Sports(ctx context.Context) ([]domain.Sport, error) {
	var resp sportsResponse
	if err := c.api.GetJSON(ctx, "all_sports.php", nil, &resp); err != nil {
		return nil, err
	}
	return mapSports(resp.Sports), nil
}

// NextLeagueEvents lists upcoming fixtures of a league.
func (c *Client) NextLeagueEvents(ctx context.Context, leagueID string) ([]domain.Event, error) {
	var resp eventsResponse
	if err := c.api.GetJSON(ctx, "eventsnextleague.php", url.Values{"id": {leagueID}}, &resp); err != nil {
		return nil, err
	}
	return mapEvents(resp.Events), nil
}

// LastTeamEvents lists the most recent results of a team.
func (c *Client) LastTeamEvents(ctx context.Context, teamID string) ([]domain.Event, error) {
	var resp resultsResponse
	if err := c.api.GetJSON(ctx, "eventslast.php", url.Values{"id": {teamID}}, &resp); err != nil {
		return nil, err
	}
	raw := resp.Results
	if len(raw) == 0 {
		raw = resp.Events
	}
	return mapEvents(raw), nil
}

// TeamPlayers lists the squad of a team.
func (c *Client) TeamPlayers(ctx context.Context, teamID string) ([]domain.Player, error) {
	var resp playerListResponse
	if err := c.api.GetJSON(ctx, "lookup_all_players.php", url.Values{"id": {teamID}}, &resp); err != nil {
		return nil, err
	}
	return mapPlayers(resp.Player), nil
}

// Honours searches achievements by display name; the provider has no id-based lookup.
func (c *Client) Honours(ctx context.Context, name string) ([]domain.Honour, error) {
	var resp honoursResponse
	if err := c.api.GetJSON(ctx, "searchhonours.php", url.Values{"p": {name}}, &resp); err != nil {
		return nil, err
	}
	return mapHonours(resp.Honours), nil
}
