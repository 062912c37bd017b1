package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/favorites"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/metrics"
)

// FavoritesAuditor periodically re-reads the favorites collection and
// publishes its size. Another process sharing the namespace can change the
// collection without going through this process's repository.
type FavoritesAuditor struct {
	repo     *favorites.Repository
	logger   logger.Logger
	metrics  *metrics.Manager
	interval time.Duration
	stopCh   chan struct{}
}

func NewFavoritesAuditor(
	repo *favorites.Repository,
	log logger.Logger,
	m *metrics.Manager,
	interval time.Duration,
) *FavoritesAuditor {
	return &FavoritesAuditor{
		repo:     repo,
		logger:   log,
		metrics:  m,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (fa *FavoritesAuditor) Start(ctx context.Context) {
	fa.Audit(ctx)

	ticker := time.NewTicker(fa.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fa.Audit(ctx)
			case <-fa.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (fa *FavoritesAuditor) Stop() {
	close(fa.stopCh)
}

// Audit returns the number of favorites currently persisted.
func (fa *FavoritesAuditor) Audit(ctx context.Context) int {
	snap := fa.repo.Snapshot(ctx)
	fa.metrics.SetFavoritesCount(len(snap))
	fa.logger.Debug("favorites audited", logger.Int("count", len(snap)))
	return len(snap)
}
