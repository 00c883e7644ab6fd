// Package observability provides hooks for instrumenting overlays.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Hosts register hooks at
// startup to receive overlay phase transitions, animation stages and action
// selections.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for overlay events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetOverlayHooks(&myOverlayHooks{})
//	    // ... run application
//	}
//
// The overlay package calls hooks to emit events:
//
//	observability.Overlay().OnTransition(id, "collapsed", "expanding")
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Overlay Hooks
// =============================================================================

// OverlayHooks receives events from overlay state machines. Every event
// carries the overlay's instance ID. Hooks are called synchronously on the
// UI thread and must not block.
type OverlayHooks interface {
	// OnTransition records a phase change, e.g. "collapsed" -> "expanding".
	OnTransition(id, from, to string)

	// OnStage records the start of an animation stage.
	OnStage(id, stage string, duration time.Duration)

	// OnActionSelected records a tap on an action item.
	OnActionSelected(id, title string)

	// OnIgnored records an expand or collapse call rejected by the
	// current phase.
	OnIgnored(id, call, phase string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopOverlayHooks is a no-op implementation of OverlayHooks.
type NoopOverlayHooks struct{}

func (NoopOverlayHooks) OnTransition(string, string, string)   {}
func (NoopOverlayHooks) OnStage(string, string, time.Duration) {}
func (NoopOverlayHooks) OnActionSelected(string, string)       {}
func (NoopOverlayHooks) OnIgnored(string, string, string)      {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	overlayHooks OverlayHooks = NoopOverlayHooks{}
	hooksMu      sync.RWMutex
)

// SetOverlayHooks registers custom overlay hooks.
// This should be called once at application startup before any overlay is
// expanded. A nil value is ignored.
func SetOverlayHooks(h OverlayHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		overlayHooks = h
	}
}

// Overlay returns the registered overlay hooks.
func Overlay() OverlayHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return overlayHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	overlayHooks = NoopOverlayHooks{}
}
