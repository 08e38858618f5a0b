// Package observability lets applications watch chains, the pipeline and
// the artifact cache without those packages importing a logging or metrics
// backend.
//
// Each event category has a hook interface with a no-op default. main
// registers implementations once at startup:
//
//	observability.SetChainHooks(myHooks)
//
// and libraries emit through the accessors:
//
//	observability.Chain().OnRecalculate(chainID, recomputed, total, d)
//
// Chain hooks run synchronously inside chain operations and must not mutate
// the chain that emitted the event.
package observability

import (
	"context"
	"sync"
	"time"
)

// ChainHooks receives events from transformation chains.
type ChainHooks interface {
	// OnInvalidate reports that a chain's composed operand became stale.
	OnInvalidate(chainID string)

	// OnRecalculate reports a lazy recalculation pass that rebuilt
	// recomputed of total entries.
	OnRecalculate(chainID string, recomputed, total int, duration time.Duration)

	// OnRecall reports a bookmark recall that popped entries.
	OnRecall(chainID string, popped int)
}

// PipelineHooks receives events from the load and render stages.
type PipelineHooks interface {
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, entryCount int, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from the artifact cache.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopChainHooks ignores every chain event.
type NoopChainHooks struct{}

func (NoopChainHooks) OnInvalidate(string)                           {}
func (NoopChainHooks) OnRecalculate(string, int, int, time.Duration) {}
func (NoopChainHooks) OnRecall(string, int)                          {}

// NoopPipelineHooks ignores every pipeline event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

// NoopCacheHooks ignores every cache event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// slot holds one registered hook implementation.
type slot[H any] struct {
	mu  sync.RWMutex
	h   H
	def H
}

func newSlot[H any](def H) *slot[H] {
	return &slot[H]{h: def, def: def}
}

func (s *slot[H]) get() H {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.h
}

func (s *slot[H]) set(h H, ok bool) {
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h = h
}

func (s *slot[H]) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h = s.def
}

var (
	chainSlot    = newSlot[ChainHooks](NoopChainHooks{})
	pipelineSlot = newSlot[PipelineHooks](NoopPipelineHooks{})
	cacheSlot    = newSlot[CacheHooks](NoopCacheHooks{})
)

// SetChainHooks registers chain hooks. A nil h is ignored.
func SetChainHooks(h ChainHooks) { chainSlot.set(h, h != nil) }

// SetPipelineHooks registers pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) { pipelineSlot.set(h, h != nil) }

// SetCacheHooks registers cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) { cacheSlot.set(h, h != nil) }

// Chain returns the registered chain hooks.
func Chain() ChainHooks { return chainSlot.get() }

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return pipelineSlot.get() }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheSlot.get() }

// Reset restores the no-op hooks. Tests call it in cleanup.
func Reset() {
	chainSlot.reset()
	pipelineSlot.reset()
	cacheSlot.reset()
}
