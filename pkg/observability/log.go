package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks forwards pipeline and server events to a structured logger.
// Completions are logged at debug level; failures and panics at error level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnValidateComplete(_ context.Context, chartType string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("validation rejected", "chart_type", chartType, "err", err)
		return
	}
	h.logger.Debug("validated", "chart_type", chartType, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, kind string, width, height int) {
	h.logger.Debug("render start", "kind", kind, "width", width, "height", height)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, kind string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "kind", kind, "duration", d, "err", err)
		return
	}
	h.logger.Debug("rendered", "kind", kind, "bytes", size, "duration", d)
}

func (h *LogHooks) OnDocumentStart(_ context.Context, kind, pageSize string) {
	h.logger.Debug("document start", "kind", kind, "page", pageSize)
}

func (h *LogHooks) OnDocumentComplete(_ context.Context, kind string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("document failed", "kind", kind, "duration", d, "err", err)
		return
	}
	h.logger.Debug("document assembled", "kind", kind, "bytes", size, "duration", d)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status, size int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status, "bytes", size, "duration", d)
}

func (h *LogHooks) OnPanic(_ context.Context, method, path string, recovered any) {
	h.logger.Error("panic recovered", "method", method, "path", path, "panic", recovered)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)
