package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/config"
	"github.com/MrSnakeDoc/scoreline/internal/favorites"
	"github.com/MrSnakeDoc/scoreline/internal/feed"
	"github.com/MrSnakeDoc/scoreline/internal/httpserver"
	"github.com/MrSnakeDoc/scoreline/internal/httpserver/deps"
	"github.com/MrSnakeDoc/scoreline/internal/index"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/metrics"
	"github.com/MrSnakeDoc/scoreline/internal/profile"
	"github.com/MrSnakeDoc/scoreline/internal/redis"
	"github.com/MrSnakeDoc/scoreline/internal/scheduler"
	"github.com/MrSnakeDoc/scoreline/internal/session"
	"github.com/MrSnakeDoc/scoreline/internal/sources/accounts"
	"github.com/MrSnakeDoc/scoreline/internal/sources/news"
	"github.com/MrSnakeDoc/scoreline/internal/sources/sportsdb"
	"github.com/MrSnakeDoc/scoreline/internal/sources/upstream"
	"github.com/MrSnakeDoc/scoreline/internal/store"
	redisstore "github.com/MrSnakeDoc/scoreline/internal/store/redis"
	"github.com/MrSnakeDoc/scoreline/internal/store/sqlite"
	"github.com/MrSnakeDoc/scoreline/internal/utils"
	"github.com/MrSnakeDoc/scoreline/internal/version"
)

// backend is what every SCORELINE_STORE implementation provides.
type backend interface {
	store.KV
	store.Pinger
}

type App struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	closer   io.Closer // nil for the memory store
	reloader *scheduler.CatalogReloader
	auditor  *scheduler.FavoritesAuditor
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open the store early - fail fast if unavailable
	kv, closer, err := openStore(cfg, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open %s store: %v", cfg.Store, err)
		os.Exit(1)
	}
	loggerClient.Info("store initialized", logger.String("backend", cfg.Store))

	m := metrics.New(metrics.WithRuntimeCollectors())

	// One transport for every provider.
	httpClient := &http.Client{Transport: http.DefaultTransport}
	opts := func(baseURL string) upstream.Options {
		return upstream.Options{
			BaseURL:    baseURL,
			Timeout:    cfg.UpstreamTimeout,
			HTTPClient: httpClient,
			Logger:     loggerClient,
			Metrics:    m,
		}
	}
	sports := sportsdb.New(opts(sportsdb.BaseURL(cfg.SportsDBBaseURL, cfg.SportsDBAPIKey)))
	newsClient := news.New(opts(cfg.NewsBaseURL), cfg.NewsAPIKey, cfg.NewsPageSize)
	accountsClient := accounts.New(opts(cfg.AccountsBaseURL))
	if cfg.NewsAPIKey == "" {
		loggerClient.Warn("SCORELINE_NEWS_API_KEY not set, news sections will report unavailable")
	}

	favRepo := favorites.NewRepository(kv, loggerClient.Named("favorites"), m)
	catalogIndex := index.NewCatalog()

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewCatalogReloader(
		cfg.CatalogFile,
		sports,
		catalogIndex,
		loggerClient.Named("catalog"),
		m,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	auditor := scheduler.NewFavoritesAuditor(
		favRepo,
		loggerClient.Named("audit"),
		m,
		cfg.AuditInterval,
	)

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		CORSOrigins:    cfg.CORSOrigins,
		AuthRateBurst:  cfg.AuthRateBurst,
		AuthRatePerMin: cfg.AuthRatePerMin,
		StoreBackend:   cfg.Store,
		Store:          kv,
		Catalog:        catalogIndex,
		Metrics:        m,
		Feed:           feed.NewController(sports, newsClient, favRepo, catalogIndex, loggerClient.Named("feed")),
		Players:        profile.NewPlayerController(sports, favRepo, loggerClient.Named("player")),
		Teams:          profile.NewTeamController(sports, favRepo, loggerClient.Named("team")),
		Session:        session.New(kv, loggerClient.Named("session")),
		Accounts:       accountsClient,
		ReloadTrigger:  reloadTrigger,
	}

	loggerClient.Info("access control",
		logger.Strings("allowed_hosts", cfg.AllowedHosts),
		logger.Strings("allowed_cidrs", cfg.AllowedCIDRS),
		logger.Strings("cors_origins", cfg.CORSOrigins),
		logger.Bool("trust_proxy", cfg.TrustProxy))

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:      cfg,
		logger:   loggerClient,
		server:   server,
		closer:   closer,
		reloader: reloader,
		auditor:  auditor,
	}
}

// openStore returns the configured backend and, when it holds a
// connection, what must be closed on shutdown.
func openStore(cfg *config.Config, log logger.Logger) (backend, io.Closer, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.Connect(context.Background(), redis.OptionsFromConfig(cfg), log)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewStore(client, cfg.Namespace), client, nil
	case config.StoreSQLite:
		s, err := sqlite.New(cfg.SQLitePath, cfg.Namespace)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return store.NewMemory(cfg.Namespace), nil, nil
	}
}

func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Infof("🚀 Starting Scoreline v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the catalog and sport list, then refresh periodically
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog reloader: %w", err)
	}
	a.logger.Info("catalog reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	a.auditor.Start(ctx)
	a.logger.Info("favorites auditor started",
		logger.Duration("interval", a.cfg.AuditInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reloader.Stop()
	a.auditor.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.closer != nil {
		utils.MustClose(a.closer, a.cfg.Store)
		a.logger.Info("✅ Store closed", logger.String("backend", a.cfg.Store))
	}

	a.logger.Info("✅ Scoreline stopped cleanly")
	return nil
}
