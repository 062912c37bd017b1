package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/index"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/metrics"
	"github.com/MrSnakeDoc/scoreline/internal/sources/catalog"
)

// SportsSource lists the provider's sport categories.
type SportsSource interface {
	Sports(ctx context.Context) ([]domain.Sport, error)
}

// CatalogReloader keeps the catalog index fresh: the featured leagues from
// the catalog file and the provider's sport list.
type CatalogReloader struct {
	loader        *catalog.Loader
	sports        SportsSource
	index         *index.Catalog
	logger        logger.Logger
	metrics       *metrics.Manager
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

func NewCatalogReloader(
	catalogFile string,
	sports SportsSource,
	idx *index.Catalog,
	log logger.Logger,
	m *metrics.Manager,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        catalog.NewLoader(catalogFile),
		sports:        sports,
		index:         idx,
		logger:        log,
		metrics:       m,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the catalog once, then reloads it on every tick and manual
// trigger until Stop or ctx cancellation. A bad catalog file at start is fatal.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog", logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog", logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload refreshes the index. A catalog file error leaves the index as it
// was and is returned. A sports provider error keeps the previous sport
// list and is only logged.
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading catalog")

	cat, err := cr.loader.Load()
	if err != nil {
		cr.metrics.RecordCatalogReload(false, time.Now())
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	cr.index.UpdateCatalog(cat.Leagues, cat.NewsQuery)

	cr.logger.Info("loaded catalog",
		logger.Int("leagues", len(cat.Leagues)),
		logger.String("news_query", cat.NewsQuery))

	if cr.sports == nil {
		cr.metrics.RecordCatalogReload(true, time.Now())
		return nil
	}

	sports, err := cr.sports.Sports(ctx)
	if err != nil {
		cr.logger.Warn("failed to refresh sports, keeping previous list", logger.Error(err))
		cr.metrics.RecordCatalogReload(false, time.Now())
		return nil
	}
	cr.index.UpdateSports(sports)
	cr.logger.Info("sports refreshed", logger.Int("count", len(sports)))
	cr.metrics.RecordCatalogReload(true, time.Now())

	return nil
}
