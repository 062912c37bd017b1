package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/scoreline/internal/httpserver/deps"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
)

// Reload asks the catalog reloader for an immediate pass. It answers 429
// while a previous request is still queued.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual catalog reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
			if _, err := w.Write([]byte("✅ Reload triggered successfully\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		default:
			d.Logger.Warn("catalog reload already pending",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte("⏳ Reload already in progress, please wait\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		}
	}
}

// Metrics serves the Prometheus registry.
func Metrics(d deps.Deps) http.HandlerFunc {
	h := d.Metrics.Handler()
	return h.ServeHTTP
}
