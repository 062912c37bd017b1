package favorites

import "github.com/MrSnakeDoc/scoreline/internal/domain"

// Snapshot is one read of the collection. Screens that show favorites and
// favorite flags side by side compute both from the same Snapshot.
type Snapshot []domain.FavoriteEntry

func (s Snapshot) Contains(kind domain.Kind, id string) bool {
	for _, e := range s {
		if e.Matches(kind, id) {
			return true
		}
	}
	return false
}

// Of returns the entries of one kind, in persisted order.
func (s Snapshot) Of(kind domain.Kind) []domain.FavoriteEntry {
	out := make([]domain.FavoriteEntry, 0, len(s))
	for _, e := range s {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// without returns a copy of s minus (kind, id) and whether anything was dropped.
func (s Snapshot) without(kind domain.Kind, id string) (Snapshot, bool) {
	out := make(Snapshot, 0, len(s))
	for _, e := range s {
		if e.Matches(kind, id) {
			continue
		}
		out = append(out, e)
	}
	return out, len(out) != len(s)
}
