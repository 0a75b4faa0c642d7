package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webpage"
)

// Ensure LoggingExtractor implements webpage.Extractor.
var _ webpage.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   webpage.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webpage.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, logging the outcome.
func (e *LoggingExtractor) Extract(html string, baseURL string) (*webpage.HTMLInfo, error) {
	begin := time.Now()
	info, err := e.next.Extract(html, baseURL)
	if err != nil {
		e.logger.Error("extract failed",
			"base_url", baseURL,
			"code", webpage.ErrorCode(err),
			"error", webpage.ErrorMessage(err),
		)
		return nil, err
	}
	e.logger.Debug("extract",
		"base_url", baseURL,
		"links", len(info.Links),
		"schema_org", len(info.SchemaOrg),
		"text_bytes", len(info.TextContent),
		"duration", time.Since(begin),
	)
	return info, nil
}
