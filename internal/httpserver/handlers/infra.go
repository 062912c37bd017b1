package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/httpserver/deps"
	"github.com/MrSnakeDoc/scoreline/internal/store"
)

const (
	modeOptimal  = "optimal"
	modeDegraded = "degraded"
	modeCritical = "critical"
)

type componentStatus struct {
	OK         bool     `json:"ok"`
	Loaded     *int     `json:"loaded,omitempty"`
	LastReload string   `json:"last_reload,omitempty"`
	Backend    string   `json:"backend,omitempty"`
	Keys       []string `json:"keys,omitempty"`
	Impact     string   `json:"impact,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"store":   checkStore(r, d),
			"catalog": checkCatalog(d),
			"sports":  checkSports(d),
		}

		writeJSON(w, d.Logger, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

// determineMode: the store is required for favorites and sessions, the
// sports list only for the sports screen.
func determineMode(components map[string]componentStatus) string {
	if !components["store"].OK || !components["catalog"].OK {
		return modeCritical
	}
	if !components["sports"].OK {
		return modeDegraded
	}
	return modeOptimal
}

func checkStore(r *http.Request, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{Backend: d.StoreBackend, Impact: "favorites-disabled", Error: "store not initialized"}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{Backend: d.StoreBackend, Impact: "favorites-disabled", Error: err.Error()}
	}

	st := componentStatus{OK: true, Backend: d.StoreBackend}
	if l, ok := d.Store.(store.Lister); ok {
		if keys, err := l.Keys(ctx); err == nil {
			st.Keys = keys
		}
	}
	return st
}

func checkCatalog(d deps.Deps) componentStatus {
	if d.Catalog == nil {
		return componentStatus{Error: "catalog not initialized"}
	}
	n := d.Catalog.Count()
	return componentStatus{
		OK:         n > 0,
		Loaded:     &n,
		LastReload: formatReload(d.Catalog.GetLastReload()),
	}
}

func checkSports(d deps.Deps) componentStatus {
	if d.Catalog == nil {
		return componentStatus{Error: "catalog not initialized"}
	}
	sports, loaded := d.Catalog.Sports()
	n := len(sports)
	st := componentStatus{
		OK:         loaded,
		Loaded:     &n,
		LastReload: formatReload(d.Catalog.GetLastSportsReload()),
	}
	if !loaded {
		st.Impact = "sports-fetched-per-request"
	}
	return st
}

func formatReload(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.UTC().Format(time.RFC3339)
}
