package sportsdb

// Wire shapes of TheSportsDB v1 responses. Every list field is null when
// nothing matched.

type playersResponse struct {
	Players []rawPlayer `json:"players"`
}

// lookup_all_players.php and searchplayers.php use the singular key.
type playerListResponse struct {
	Player []rawPlayer `json:"player"`
}

type teamsResponse struct {
	Teams []rawTeam `json:"teams"`
}

type sportsResponse struct {
	Sports []rawSport `json:"sports"`
}

type eventsResponse struct {
	Events []rawEvent `json:"events"`
}

// eventslast.php answers under "results".
type resultsResponse struct {
	Results []rawEvent `json:"results"`
	Events  []rawEvent `json:"events"`
}

type honoursResponse struct {
	Honours []rawHonour `json:"honours"`
}

type rawPlayer struct {
	IDPlayer    string `json:"idPlayer"`
	IDTeam      string `json:"idTeam"`
	StrPlayer   string `json:"strPlayer"`
	StrTeam     string `json:"strTeam"`
	StrPosition string `json:"strPosition"`
	StrNation   string `json:"strNationality"`
	StrSport    string `json:"strSport"`
	DateBorn    string `json:"dateBorn"`
	StrThumb    string `json:"strThumb"`
	StrCutout   string `json:"strCutout"`
	StrDescEN   string `json:"strDescriptionEN"`
}

type rawTeam struct {
	IDTeam          string `json:"idTeam"`
	StrTeam         string `json:"strTeam"`
	StrLeague       string `json:"strLeague"`
	IDLeague        string `json:"idLeague"`
	StrCountry      string `json:"strCountry"`
	StrSport        string `json:"strSport"`
	StrStadium      string `json:"strStadium"`
	IntFormedYear   string `json:"intFormedYear"`
	StrTeamBadge    string `json:"strTeamBadge"`
	StrBadge        string `json:"strBadge"`
	StrTeamLogo     string `json:"strTeamLogo"`
	StrLogo         string `json:"strLogo"`
	StrStadiumThumb string `json:"strStadiumThumb"`
	StrDescEN       string `json:"strDescriptionEN"`
}

type rawSport struct {
	IDSport        string `json:"idSport"`
	StrSport       string `json:"strSport"`
	StrFormat      string `json:"strFormat"`
	StrSportThumb  string `json:"strSportThumb"`
	StrSportIcon   string `json:"strSportIconGreen"`
	StrDescription string `json:"strSportDescription"`
}

type rawEvent struct {
	IDEvent      string  `json:"idEvent"`
	StrEvent     string  `json:"strEvent"`
	StrLeague    string  `json:"strLeague"`
	IDLeague     string  `json:"idLeague"`
	StrSeason    string  `json:"strSeason"`
	StrHomeTeam  string  `json:"strHomeTeam"`
	StrAwayTeam  string  `json:"strAwayTeam"`
	IntHomeScore *string `json:"intHomeScore"`
	IntAwayScore *string `json:"intAwayScore"`
	DateEvent    string  `json:"dateEvent"`
	StrTime      string  `json:"strTime"`
	StrVenue     string  `json:"strVenue"`
	StrStatus    string  `json:"strStatus"`
	StrThumb     string  `json:"strThumb"`
}

type rawHonour struct {
	StrHonour string `json:"strHonour"`
	StrSeason string `json:"strSeason"`
	StrTeam   string `json:"strTeam"`
	StrSport  string `json:"strSport"`
}
