package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/xformstack/pkg/observability"
)

// logHooks reports chain, pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

// InstallHooks routes observability events to the CLI logger.
func (c *CLI) InstallHooks() {
	h := logHooks{logger: c.Logger}
	observability.SetChainHooks(h)
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnInvalidate(chainID string) {
	h.logger.Debug("chain invalidated", "chain", shortID(chainID))
}

func (h logHooks) OnRecalculate(chainID string, recomputed, total int, d time.Duration) {
	h.logger.Debug("chain recalculated", "chain", shortID(chainID), "recomputed", recomputed, "total", total, "duration", d)
}

func (h logHooks) OnRecall(chainID string, popped int) {
	h.logger.Debug("bookmark recalled", "chain", shortID(chainID), "popped", popped)
}

func (h logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("loading document", "path", path)
}

func (h logHooks) OnLoadComplete(_ context.Context, path string, entries int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("document loaded", "path", path, "transforms", entries, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("rendering", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("render finished", "formats", formats, "duration", d, "err", err)
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

// shortID trims a chain UUID to its first block.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
