// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about tree generation and export.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGeneratorHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generator().OnBuildStart(ctx, count, seed)
//	// ... build tree ...
//	observability.Generator().OnBuildComplete(ctx, count, depth, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// GeneratorHooks receives events from the generation pipeline.
type GeneratorHooks interface {
	// OnBuildStart is called before a tree of count nodes is built.
	OnBuildStart(ctx context.Context, count int, seed uint64)

	// OnBuildComplete is called after the tree is built.
	OnBuildComplete(ctx context.Context, count, depth int, duration time.Duration)

	// OnExportComplete is called after an artifact (JSON, DOT, SVG) is written,
	// or failed to be written.
	OnExportComplete(ctx context.Context, format, path string, size int64, duration time.Duration, err error)
}

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnBuildStart(context.Context, int, uint64)                {}
func (NoopGeneratorHooks) OnBuildComplete(context.Context, int, int, time.Duration) {}
func (NoopGeneratorHooks) OnExportComplete(context.Context, string, string, int64, time.Duration, error) {
}

var (
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	hooksMu        sync.RWMutex
)

// SetGeneratorHooks registers custom generator hooks.
// This should be called once at application startup. Nil is ignored.
func SetGeneratorHooks(h GeneratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generatorHooks = h
	}
}

// Generator returns the registered generator hooks.
func Generator() GeneratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generatorHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
}
