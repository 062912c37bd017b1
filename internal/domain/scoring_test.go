package domain

import (
	"testing"
)

func TestNameScore(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		target string
		want   func(float64) bool
	}{
		{name: "exact first word", query: "lionel", target: "Lionel Messi", want: func(s float64) bool { return s >= ScoreExactMatch }},
		{name: "prefix", query: "mes", target: "Lionel Messi", want: func(s float64) bool { return s >= ScorePrefixMatch && s < ScoreExactMatch }},
		{name: "substring", query: "ess", target: "Lionel Messi", want: func(s float64) bool { return s >= ScoreSubstringMatch && s < ScorePrefixMatch }},
		{name: "hyphenated name", query: "saint maximin", target: "Allan Saint-Maximin", want: func(s float64) bool { return s >= 2*ScoreExactMatch }},
		{name: "no match", query: "zzz", target: "Lionel Messi", want: func(s float64) bool { return s == 0 }},
		{name: "empty query", query: "  ", target: "Lionel Messi", want: func(s float64) bool { return s == 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameScore(tt.query, tt.target); !tt.want(got) {
				t.Errorf("NameScore(%q, %q) = %v", tt.query, tt.target, got)
			}
		})
	}
}

func TestNameScoreFavorsEarlierWords(t *testing.T) {
	first := NameScore("messi", "Messi Lionel")
	second := NameScore("messi", "Lionel Messi")
	if first <= second {
		t.Errorf("first-word match %v should outrank later-word match %v", first, second)
	}
}

func TestRankPlayers(t *testing.T) {
	players := []Player{
		{ID: "1", Name: "Kane Wilson"},
		{ID: "2", Name: "Harry Kane"},
		{ID: "3", Name: "Kanellos"},
		{ID: "4", Name: "Martin Kane"},
		{ID: "5", Name: "Someone Else"},
	}

	got := RankPlayers("kane", players)

	want := []string{"1", "2", "4", "3", "5"}
	if len(got) != len(want) {
		t.Fatalf("RankPlayers() returned %d players, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %s (%s), want %s", i, got[i].ID, got[i].Name, id)
		}
	}
	if players[0].ID != "1" || players[1].ID != "2" {
		t.Error("RankPlayers must not reorder its input")
	}
}
