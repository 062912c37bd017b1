package sportsdb

import (
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/scoreline/internal/domain"
)

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func mapPlayer(p rawPlayer) domain.Player {
	return domain.Player{
		ID:           strings.TrimSpace(p.IDPlayer),
		Name:         strings.TrimSpace(p.StrPlayer),
		TeamID:       p.IDTeam,
		Team:         p.StrTeam,
		Position:     p.StrPosition,
		Nationality:  p.StrNation,
		Sport:        p.StrSport,
		BirthDate:    p.DateBorn,
		ThumbnailURL: p.StrThumb,
		CutoutURL:    p.StrCutout,
		Description:  p.StrDescEN,
	}
}

func mapTeam(t rawTeam) domain.Team {
	return domain.Team{
		ID:           strings.TrimSpace(t.IDTeam),
		Name:         strings.TrimSpace(t.StrTeam),
		League:       t.StrLeague,
		LeagueID:     t.IDLeague,
		Country:      t.StrCountry,
		Sport:        t.StrSport,
		Stadium:      t.StrStadium,
		Founded:      t.IntFormedYear,
		BadgeURL:     firstNonEmpty(t.StrTeamBadge, t.StrBadge),
		LogoURL:      firstNonEmpty(t.StrTeamLogo, t.StrLogo),
		StadiumThumb: t.StrStadiumThumb,
		Description:  t.StrDescEN,
	}
}

func mapSport(s rawSport) domain.Sport {
	return domain.Sport{
		ID:           s.IDSport,
		Name:         strings.TrimSpace(s.StrSport),
		Format:       s.StrFormat,
		ThumbnailURL: s.StrSportThumb,
		IconURL:      s.StrSportIcon,
		Description:  s.StrDescription,
	}
}

func mapEvent(e rawEvent) domain.Event {
	return domain.Event{
		ID:        e.IDEvent,
		Name:      e.StrEvent,
		League:    e.StrLeague,
		LeagueID:  e.IDLeague,
		Season:    e.StrSeason,
		HomeTeam:  e.StrHomeTeam,
		AwayTeam:  e.StrAwayTeam,
		HomeScore: parseScore(e.IntHomeScore),
		AwayScore: parseScore(e.IntAwayScore),
		Date:      e.DateEvent,
		Time:      e.StrTime,
		Venue:     e.StrVenue,
		Status:    e.StrStatus,
		Thumbnail: e.StrThumb,
	}
}

func mapHonour(h rawHonour) domain.Honour {
	return domain.Honour{
		Title:  strings.TrimSpace(h.StrHonour),
		Season: h.StrSeason,
		Team:   h.StrTeam,
		Sport:  h.StrSport,
	}
}

// parseScore returns nil for a fixture that has not been played.
func parseScore(s *string) *int {
	if s == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &n
}

// mapPlayers keeps only records with an identity.
func mapPlayers(raw []rawPlayer) []domain.Player {
	out := make([]domain.Player, 0, len(raw))
	for _, r := range raw {
		if p := mapPlayer(r); p.Complete() {
			out = append(out, p)
		}
	}
	return out
}

func mapTeams(raw []rawTeam) []domain.Team {
	out := make([]domain.Team, 0, len(raw))
	for _, r := range raw {
		if t := mapTeam(r); t.Complete() {
			out = append(out, t)
		}
	}
	return out
}

func mapSports(raw []rawSport) []domain.Sport {
	out := make([]domain.Sport, 0, len(raw))
	for _, r := range raw {
		if s := mapSport(r); s.Name != "" {
			out = append(out, s)
		}
	}
	return out
}

func mapEvents(raw []rawEvent) []domain.Event {
	out := make([]domain.Event, 0, len(raw))
	for _, r := range raw {
		if r.IDEvent == "" {
			continue
		}
		out = append(out, mapEvent(r))
	}
	return out
}

func mapHonours(raw []rawHonour) []domain.Honour {
	out := make([]domain.Honour, 0, len(raw))
	for _, r := range raw {
		if h := mapHonour(r); h.Title != "" {
			out = append(out, h)
		}
	}
	return out
}
