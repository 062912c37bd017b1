package domain

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

const (
	// Scoring weights
	ScoreExactMatch     = 100.0
	ScorePrefixMatch    = 75.0
	ScoreSubstringMatch = 50.0
	ScoreFuzzyMatch     = 25.0

	// Position bonus (earlier name word is better)
	ScorePositionBonus = 10.0
)

// NameScore rates how well query matches a display name. Each query word
// is scored against its best name word; zero means no word matched.
func NameScore(query, name string) float64 {
	queryWords := words(query)
	nameWords := words(name)
	if len(queryWords) == 0 || len(nameWords) == 0 {
		return 0.0
	}

	var total float64
	for _, q := range queryWords {
		best := 0.0
		for i, n := range nameWords {
			if s := scoreWord(q, n, i); s > best {
				best = s
			}
		}
		total += best
	}
	return total
}

// RankPlayers orders search hits by NameScore, best first.
// Ties keep the provider's order.
func RankPlayers(query string, players []Player) []Player {
	type scored struct {
		player Player
		score  float64
	}
	candidates := make([]scored, len(players))
	for i, p := range players {
		candidates[i] = scored{player: p, score: NameScore(query, p.Name)}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	out := make([]Player, len(candidates))
	for i, c := range candidates {
		out[i] = c.player
	}
	return out
}

// scoreWord scores a single query word against a name word
func scoreWord(queryWord, nameWord string, position int) float64 {
	if queryWord == nameWord {
		return ScoreExactMatch + positionBonus(position)
	}

	if strings.HasPrefix(nameWord, queryWord) {
		return ScorePrefixMatch + positionBonus(position)
	}

	if index := strings.Index(nameWord, queryWord); index >= 0 {
		// Earlier substring matches get higher score
		return ScoreSubstringMatch + ScorePositionBonus*(1.0-float64(index)/float64(len(nameWord)))
	}

	if similarity := similarity(queryWord, nameWord); similarity > 0.5 {
		return ScoreFuzzyMatch * similarity
	}

	return 0.0
}

func positionBonus(position int) float64 {
	return ScorePositionBonus * math.Exp(-float64(position)*0.3)
}

// similarity is the share of a's runes found in b.
func similarity(a, b string) float64 {
	runes := []rune(a)
	if len(runes) == 0 || b == "" {
		return 0.0
	}
	matches := 0
	for _, r := range runes {
		if strings.ContainsRune(b, r) {
			matches++
		}
	}
	return float64(matches) / float64(len(runes))
}

// words lowercases s and splits it on anything that is not a letter or digit,
// so "Saint-Maximin" and "saint maximin" compare equal.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
