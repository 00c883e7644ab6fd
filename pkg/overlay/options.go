package overlay

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/overlay/anim"
)

// Option configures an Overlay.
type Option func(*Overlay)

// WithAnimator sets the animator used by animated transitions.
func WithAnimator(a anim.Animator) Option {
	return func(o *Overlay) {
		if a != nil {
			o.animator = a
		}
	}
}

// WithLogger sets the logger for phase transitions and ignored calls.
func WithLogger(l *log.Logger) Option {
	return func(o *Overlay) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithItemSize sets the function that reports an item's fitting size.
func WithItemSize(fn func(Item) geom.Size) Option {
	return func(o *Overlay) {
		if fn != nil {
			o.itemSize = fn
		}
	}
}

// WithMargins sets the horizontal layout margins used by grid modes.
func WithMargins(m geom.Insets) Option {
	return func(o *Overlay) { o.margins = m }
}

// WithID overrides the generated instance ID.
func WithID(id string) Option {
	return func(o *Overlay) {
		if id != "" {
			o.id = id
		}
	}
}
