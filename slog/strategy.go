// Package slog provides logging decorators for the extraction pipeline.
// Domain packages stay silent; the CLI wraps them here when verbose output
// is requested.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/prospect"
)

// Ensure LoggingStrategy implements prospect.Strategy.
var _ prospect.Strategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps a Strategy with debug logging of candidate yield
// and duration.
type LoggingStrategy struct {
	next   prospect.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next prospect.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Name delegates to the wrapped strategy.
func (s *LoggingStrategy) Name() string {
	return s.next.Name()
}

// Extract delegates to the wrapped strategy and logs the outcome.
func (s *LoggingStrategy) Extract(page *prospect.RawPage) []prospect.Candidate {
	begin := time.Now()
	found := s.next.Extract(page)
	var url string
	if page != nil {
		url = page.SourceURL
	}
	s.logger.Debug("strategy run",
		slog.String("strategy", s.next.Name()),
		slog.String("url", url),
		slog.Int("found", len(found)),
		slog.Duration("duration", time.Since(begin)),
	)
	return found
}
