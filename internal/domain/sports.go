package domain

import "time"

// Player is the detail record for one athlete.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TeamID       string `json:"teamId,omitempty"`
	Team         string `json:"team,omitempty"`
	Position     string `json:"position,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
	Sport        string `json:"sport,omitempty"`
	BirthDate    string `json:"birthDate,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	CutoutURL    string `json:"cutoutUrl,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Complete reports whether the identity fields are present.
// Incomplete records are treated as not found, never rendered with blanks.
func (p Player) Complete() bool {
	return p.ID != "" && p.Name != ""
}

// FavoriteEntry snapshots the display fields of p.
func (p Player) FavoriteEntry(now time.Time) FavoriteEntry {
	thumb := p.ThumbnailURL
	if thumb == "" {
		thumb = p.CutoutURL
	}
	return FavoriteEntry{
		Kind:         KindPlayer,
		ID:           p.ID,
		DisplayName:  p.Name,
		ThumbnailURL: thumb,
		Metadata: compactMeta(map[string]string{
			MetaTeam:        p.Team,
			MetaPosition:    p.Position,
			MetaNationality: p.Nationality,
			MetaSport:       p.Sport,
		}),
		AddedAt: now.UTC(),
	}
}

// Team is the detail record for one club or franchise.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	League       string `json:"league,omitempty"`
	LeagueID     string `json:"leagueId,omitempty"`
	Country      string `json:"country,omitempty"`
	Sport        string `json:"sport,omitempty"`
	Stadium      string `json:"stadium,omitempty"`
	Founded      string `json:"founded,omitempty"`
	BadgeURL     string `json:"badgeUrl,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	StadiumThumb string `json:"stadiumThumbUrl,omitempty"`
	Description  string `json:"description,omitempty"`
}

func (t Team) Complete() bool {
	return t.ID != "" && t.Name != ""
}

// Thumbnail picks the first available image: badge, then logo, then stadium.
func (t Team) Thumbnail() string {
	for _, s := range []string{t.BadgeURL, t.LogoURL, t.StadiumThumb} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (t Team) FavoriteEntry(now time.Time) FavoriteEntry {
	return FavoriteEntry{
		Kind:         KindTeam,
		ID:           t.ID,
		DisplayName:  t.Name,
		ThumbnailURL: t.Thumbnail(),
		Metadata: compactMeta(map[string]string{
			MetaLeague:  t.League,
			MetaCountry: t.Country,
			MetaSport:   t.Sport,
		}),
		AddedAt: now.UTC(),
	}
}

// Event is a fixture, upcoming or played.
// Scores are nil until the provider reports them.
type Event struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	League    string `json:"league,omitempty"`
	LeagueID  string `json:"leagueId,omitempty"`
	Season    string `json:"season,omitempty"`
	HomeTeam  string `json:"homeTeam,omitempty"`
	AwayTeam  string `json:"awayTeam,omitempty"`
	HomeScore *int   `json:"homeScore,omitempty"`
	AwayScore *int   `json:"awayScore,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Venue     string `json:"venue,omitempty"`
	Status    string `json:"status,omitempty"`
	Thumbnail string `json:"thumbnailUrl,omitempty"`
}

// Honour is one achievement attached to a player or team name.
type Honour struct {
	Title  string `json:"title"`
	Season string `json:"season,omitempty"`
	Team   string `json:"team,omitempty"`
	Sport  string `json:"sport,omitempty"`
}

// Sport is one category from the provider's sport list.
type Sport struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Format       string `json:"format,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	IconURL      string `json:"iconUrl,omitempty"`
	Description  string `json:"description,omitempty"`
}

// League is a featured competition from the catalog.
type League struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Sport string `json:"sport,omitempty" yaml:"sport"`
}

func compactMeta(m map[string]string) map[string]string {
	for k, v := range m {
		if v == "" {
			delete(m, k)
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
