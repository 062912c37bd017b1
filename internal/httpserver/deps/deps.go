package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/feed"
	"github.com/MrSnakeDoc/scoreline/internal/index"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/metrics"
	"github.com/MrSnakeDoc/scoreline/internal/profile"
	"github.com/MrSnakeDoc/scoreline/internal/session"
	"github.com/MrSnakeDoc/scoreline/internal/store"
)

// Accounts is the demo accounts provider.
type Accounts interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.SessionUser, error)
	Register(ctx context.Context, reg domain.Registration) (domain.SessionUser, error)
}

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	// Access control
	AllowedHosts   []string // Host headers allowed on admin endpoints
	AllowedCIDRS   []string // client IPs/CIDRs allowed on infra endpoints
	TrustProxy     bool     // resolve client IP from X-Forwarded-For
	CORSOrigins    []string
	AuthRateBurst  int
	AuthRatePerMin int

	StoreBackend string       // redis | sqlite | memory
	Store        store.Pinger // health of the favorites/session store
	Catalog      *index.Catalog
	Metrics      *metrics.Manager

	Feed     *feed.Controller
	Players  *profile.PlayerController
	Teams    *profile.TeamController
	Session  *session.Store
	Accounts Accounts

	ReloadTrigger chan struct{} // manual catalog reload
}
