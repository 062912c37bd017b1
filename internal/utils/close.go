package utils

import (
	"io"

	"go.uber.org/zap"
)

// DrainAndClose discards what is left of an HTTP response body so the
// connection can go back to the pool, then closes it.
func DrainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64<<10))
	_ = body.Close()
}

// MustClose closes c and reports any error through the global zap logger.
func MustClose(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		zap.L().Warn("failed to close", zap.String("what", what), zap.Error(err))
	}
}
