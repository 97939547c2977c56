package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natefinch/lumberjack"

	"github.com/matzehuels/graphnet/internal/config"
	"github.com/matzehuels/graphnet/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// useLogFile redirects the logger to a rotating file and returns the file
// so that it can be closed on exit.
func (c *CLI) useLogFile(cfg config.LogConfig) io.Closer {
	l := &lumberjack.Logger{
		Filename: cfg.File,
		MaxSize:  cfg.MaxSize, // megabytes
		MaxAge:   cfg.MaxAge,  // days
	}
	c.Logger.SetOutput(l)
	c.Logger.Debug("logging to file", "path", cfg.File)
	return l
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Loaded 3 graphs (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports library, render and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetLibraryHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnLoad(_ context.Context, path string, graphs int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("loaded", "path", path, "graphs", graphs, "took", d)
}

func (h logHooks) OnSave(_ context.Context, path string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("save failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("saved", "path", path, "bytes", size, "took", d)
}

func (h logHooks) OnRenderStart(_ context.Context, graph, format string) {
	h.logger.Debug("rendering", "graph", graph, "format", format)
}

func (h logHooks) OnRenderComplete(_ context.Context, graph, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "graph", graph, "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "graph", graph, "format", format, "took", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
