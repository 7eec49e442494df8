package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/prospect"
)

// Ensure LoggingEngine implements prospect.Engine.
var _ prospect.Engine = (*LoggingEngine)(nil)

// LoggingEngine wraps an Engine with info logging of per-page results.
type LoggingEngine struct {
	next   prospect.Engine
	logger *slog.Logger
}

// NewLoggingEngine creates a new LoggingEngine.
func NewLoggingEngine(next prospect.Engine, logger *slog.Logger) *LoggingEngine {
	return &LoggingEngine{next: next, logger: logger}
}

// Extract delegates to the wrapped engine and logs the outcome.
func (e *LoggingEngine) Extract(page *prospect.RawPage) []prospect.Candidate {
	begin := time.Now()
	found := e.next.Extract(page)
	var url string
	if page != nil {
		url = page.SourceURL
	}
	e.logger.Info("page extracted",
		slog.String("url", url),
		slog.Int("found", len(found)),
		slog.Duration("duration", time.Since(begin)),
	)
	return found
}
