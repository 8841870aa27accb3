package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Bluscream/acedocs"
)

// Ensure LoggingPageParser implements acedocs.PageParser.
var _ acedocs.PageParser = (*LoggingPageParser)(nil)

// LoggingPageParser wraps a PageParser with debug logging.
type LoggingPageParser struct {
	next   acedocs.PageParser
	logger *slog.Logger
}

// NewLoggingPageParser creates a new LoggingPageParser.
func NewLoggingPageParser(next acedocs.PageParser, logger *slog.Logger) *LoggingPageParser {
	return &LoggingPageParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingPageParser) Parse(ctx context.Context, page *acedocs.Page) (entries []*acedocs.Entry, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse page",
			"page", page.Path,
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(ctx, page)
}

// Ensure LoggingParserFactory implements acedocs.ParserFactory.
var _ acedocs.ParserFactory = (*LoggingParserFactory)(nil)

// LoggingParserFactory wraps every parser it builds in a LoggingPageParser.
type LoggingParserFactory struct {
	next   acedocs.ParserFactory
	logger *slog.Logger
}

// NewLoggingParserFactory creates a new LoggingParserFactory.
func NewLoggingParserFactory(next acedocs.ParserFactory, logger *slog.Logger) *LoggingParserFactory {
	return &LoggingParserFactory{next: next, logger: logger}
}

// ParserFor delegates to the wrapped factory and decorates the result.
func (f *LoggingParserFactory) ParserFor(step acedocs.PlanStep) (acedocs.PageParser, error) {
	parser, err := f.next.ParserFor(step)
	if err != nil {
		return nil, err
	}
	return NewLoggingPageParser(parser, f.logger.With("step", step.String())), nil
}
