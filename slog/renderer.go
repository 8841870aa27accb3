package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/Bluscream/acedocs"
)

// Ensure LoggingRenderer implements acedocs.Renderer.
var _ acedocs.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   acedocs.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next acedocs.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs input and output sizes.
func (r *LoggingRenderer) Render(html string, opts acedocs.RenderOptions) (out string) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"in", len(html),
			"out", utf8.RuneCountInString(out),
			"max", opts.MaxLength,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Render(html, opts)
}
