package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
)

// Kind tags the entity type a favorite points to.
// Players and teams share the provider's id space, so the pair (Kind, ID)
// is what identifies a favorite.
type Kind string

const (
	KindPlayer Kind = "player"
	KindTeam   Kind = "team"
)

// ParseKind accepts the serialized form only ("player", "team").
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPlayer, KindTeam:
		return k, nil
	default:
		return "", apperror.ValidationFailed("kind", fmt.Sprintf("unknown kind %q, expected player or team", s))
	}
}

func (k Kind) Valid() bool {
	return k == KindPlayer || k == KindTeam
}

func (k Kind) String() string { return string(k) }

// Metadata keys copied from the detail record at add time.
const (
	MetaTeam        = "team"
	MetaPosition    = "position"
	MetaNationality = "nationality"
	MetaLeague      = "league"
	MetaCountry     = "country"
	MetaSport       = "sport"
)

// FavoriteEntry is one persisted favorite.
//
// Display fields are a snapshot taken when the entry was added; they are
// never refreshed from the provider. An entry is replaced only by a
// remove followed by a new add.
type FavoriteEntry struct {
	Kind         Kind              `json:"kind"`
	ID           string            `json:"id"`
	DisplayName  string            `json:"displayName"`
	ThumbnailURL string            `json:"thumbnailUrl,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	AddedAt      time.Time         `json:"addedAt,omitzero"`
}

// Matches reports whether the entry identifies (kind, id).
func (e FavoriteEntry) Matches(kind Kind, id string) bool {
	return e.Kind == kind && e.ID == id
}

// Validate checks the identity fields. Metadata is provider-supplied and not validated.
func (e FavoriteEntry) Validate() error {
	if !e.Kind.Valid() {
		return apperror.ValidationFailed("kind", fmt.Sprintf("unknown kind %q, expected player or team", e.Kind))
	}
	if strings.TrimSpace(e.ID) == "" {
		return apperror.ValidationFailed("id", "id is required")
	}
	return nil
}
