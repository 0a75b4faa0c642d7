// Package slog provides logging decorators for the library's
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webpage"
)

// Ensure LoggingFetcher implements webpage.Fetcher.
var _ webpage.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   webpage.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webpage.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, opts webpage.HTTPOptions) (*webpage.HTTPInfo, error) {
	begin := time.Now()
	info, err := f.next.Fetch(ctx, url, opts)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"code", webpage.ErrorCode(err),
			"error", webpage.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"final_url", info.URL,
		"status", info.StatusCode,
		"content_type", info.ContentType,
		"redirects", info.RedirectCount,
		"bytes", len(info.Body),
		"duration", time.Since(begin),
	)
	return info, nil
}
