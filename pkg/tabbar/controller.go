package tabbar

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/overlay"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
)

// =============================================================================
// Metrics
// =============================================================================

const (
	// BarHeight is the compact tab bar height above the bottom safe area.
	BarHeight = 49.0

	// AccessorySize is the side of the square accessory button.
	AccessorySize = 56.0

	// AccessoryRaise lifts the compact accessory above the bar's top edge.
	AccessoryRaise = 7.0

	// RegularTrailingInset and RegularBottomInset position the floating
	// accessory button in regular environments.
	RegularTrailingInset = 24.0
	RegularBottomInset   = 56.0

	// RailWidth is the width of the regular environment's vertical rail.
	RailWidth = 120.0

	// RailTopInset, RailSpacing and RailButtonHeight lay out rail buttons.
	RailTopInset     = 16.0
	RailSpacing      = 64.0
	RailButtonHeight = 56.0

	// GlyphExpanded is the accessory glyph rotation, in degrees, while the
	// overlay is open.
	GlyphExpanded = 45.0
)

// Tab is one entry of the tab bar.
type Tab struct {
	Title string
	Icon  string
	Badge string
}

// Slot is one displayed position of the bar. Index is the logical tab
// index, or -1 for the placeholder under the compact accessory button.
type Slot struct {
	Tab   Tab
	Index int
	Frame geom.Rect
}

// Placeholder reports whether s is the empty slot under the accessory.
func (s Slot) Placeholder() bool { return s.Index < 0 }

// Option configures a Controller.
type Option func(*Controller)

// WithCompactMode overrides the overlay mode used in compact environments.
func WithCompactMode(m layout.Mode) Option {
	return func(c *Controller) { c.compactMode = m.Normalize() }
}

// WithRegularMode overrides the overlay mode used in regular environments.
func WithRegularMode(m layout.Mode) Option {
	return func(c *Controller) { c.regularMode = m.Normalize() }
}

// WithLogger sets the controller logger. It is also handed to the overlay.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOverlayOptions passes options through to the owned overlay.
func WithOverlayOptions(opts ...overlay.Option) Option {
	return func(c *Controller) { c.overlayOpts = append(c.overlayOpts, opts...) }
}

// Controller is the adaptive tab bar host. It is not safe for concurrent
// use.
type Controller struct {
	tabs        []Tab
	actions     int
	overlay     *overlay.Overlay
	overlayOpts []overlay.Option
	logger      *log.Logger

	compactMode layout.Mode
	regularMode layout.Mode

	sizeClass  layout.SizeClass
	bounds     geom.Rect
	safeBottom float64

	selected int
	glyph    float64

	onSelect    func(index int, tab Tab)
	onDidExpand func()
	configured  bool
}

// New returns a controller for tabs. Call Configure before reading any
// geometry.
func New(tabs []Tab, opts ...Option) *Controller {
	c := &Controller{
		tabs:        append([]Tab(nil), tabs...),
		compactMode: layout.GridCentered(layout.DefaultCenteredPerRow),
		regularMode: layout.GridTrailing(layout.DefaultTrailingPerRow),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	ovOpts := append([]overlay.Option{overlay.WithLogger(c.logger)}, c.overlayOpts...)
	c.overlay = overlay.New(ovOpts...)
	c.overlay.SetLayoutMode(c.compactMode)
	c.overlay.SetListener(overlay.ListenerFuncs{
		OnWillExpand:   func(*overlay.Overlay) { c.glyph = GlyphExpanded },
		OnWillCollapse: func(*overlay.Overlay) { c.glyph = 0 },
		OnDidExpand: func(*overlay.Overlay) {
			if c.onDidExpand != nil {
				c.onDidExpand()
			}
		},
	})
	return c
}

// Overlay returns the owned action overlay.
func (c *Controller) Overlay() *overlay.Overlay { return c.overlay }

// Tabs returns the logical tabs.
func (c *Controller) Tabs() []Tab { return append([]Tab(nil), c.tabs...) }

// AddAction registers an action with the overlay. The first action enables
// the accessory button.
func (c *Controller) AddAction(item overlay.Item) {
	c.overlay.Register(item)
	c.actions++
	if c.configured {
		c.Configure(c.sizeClass, c.bounds, c.safeBottom)
	}
}

// HasAccessory reports whether any action is registered.
func (c *Controller) HasAccessory() bool { return c.actions > 0 }

// OnSelect sets the handler called when a tab is selected by a tap.
func (c *Controller) OnSelect(fn func(index int, tab Tab)) { c.onSelect = fn }

// OnAccessoryDidExpand sets the handler called once the overlay finishes
// expanding.
func (c *Controller) OnAccessoryDidExpand(fn func()) { c.onDidExpand = fn }

// SizeClass returns the current environment.
func (c *Controller) SizeClass() layout.SizeClass { return c.sizeClass }

// Bounds returns the container bounds of the last Configure pass.
func (c *Controller) Bounds() geom.Rect { return c.bounds }

// SafeBottom returns the bottom safe-area inset of the last Configure pass.
func (c *Controller) SafeBottom() float64 { return c.safeBottom }

// GlyphRotation returns the accessory glyph rotation in degrees.
func (c *Controller) GlyphRotation() float64 { return c.glyph }

// =============================================================================
// Layout
// =============================================================================

// Configure runs a layout pass for the given environment. The logical
// selection survives size class changes. When the overlay is expanded its
// items are moved to the new expanded positions.
func (c *Controller) Configure(sc layout.SizeClass, bounds geom.Rect, safeBottom float64) {
	if c.sizeClass != sc || !c.configured {
		c.logger.Debug("environment", "size_class", sc, "selected", c.selected)
	}
	c.sizeClass = sc
	c.bounds = bounds
	c.safeBottom = safeBottom
	c.configured = true

	if sc == layout.Compact {
		c.overlay.SetLayoutMode(c.compactMode)
	} else {
		c.overlay.SetLayoutMode(c.regularMode)
	}
	c.overlay.SetAnchor(c.AccessoryCenter(), bounds, sc)
	if c.overlay.Phase() == overlay.Expanded {
		c.overlay.RepositionExpandedItems()
	}
}

// AccessoryCenter returns the accessory button center, which is also the
// overlay anchor.
func (c *Controller) AccessoryCenter() geom.Point {
	b := c.bounds
	if c.sizeClass == layout.Compact {
		barTop := b.MaxY() - (BarHeight + c.safeBottom)
		return geom.Pt(b.MidX(), barTop+AccessorySize/2-AccessoryRaise)
	}
	return geom.Pt(
		b.MaxX()-AccessorySize/2-RegularTrailingInset,
		b.MaxY()-AccessorySize/2-RegularBottomInset-c.safeBottom,
	)
}

// AccessoryFrame returns the accessory button rectangle.
func (c *Controller) AccessoryFrame() geom.Rect {
	return geom.RectAround(c.AccessoryCenter(), geom.Size{W: AccessorySize, H: AccessorySize})
}

// BarFrame returns the compact tab bar or the regular rail rectangle.
func (c *Controller) BarFrame() geom.Rect {
	b := c.bounds
	if c.sizeClass == layout.Compact {
		h := BarHeight + c.safeBottom
		return geom.Rect{X: b.X, Y: b.MaxY() - h, W: b.W, H: h}
	}
	return geom.Rect{X: b.X, Y: b.Y, W: RailWidth, H: b.H}
}

// Slots returns the displayed slots in order. In compact environments a
// placeholder is inserted at the middle when actions exist and the tab
// count is even, so the accessory button sits over an empty slot.
func (c *Controller) Slots() []Slot {
	slots := make([]Slot, 0, len(c.tabs)+1)
	for i, t := range c.tabs {
		slots = append(slots, Slot{Tab: t, Index: i})
	}
	if c.sizeClass == layout.Compact && c.HasAccessory() && len(c.tabs)%2 == 0 {
		slots = slices.Insert(slots, len(c.tabs)/2, Slot{Index: -1})
	}

	bar := c.BarFrame()
	for i := range slots {
		if c.sizeClass == layout.Compact {
			w := bar.W / float64(len(slots))
			slots[i].Frame = geom.Rect{X: bar.X + float64(i)*w, Y: bar.Y, W: w, H: BarHeight}
			continue
		}
		y := bar.Y + RailTopInset + float64(i)*(RailButtonHeight+RailSpacing)
		slots[i].Frame = geom.Rect{X: bar.X, Y: y, W: RailWidth, H: RailButtonHeight}
	}
	return slots
}

// =============================================================================
// Selection and input
// =============================================================================

// SelectedIndex returns the logical selected tab index.
func (c *Controller) SelectedIndex() int { return c.selected }

// SetSelectedIndex selects the logical tab i. It reports false when i is
// out of range.
func (c *Controller) SetSelectedIndex(i int) bool {
	if i < 0 || i >= len(c.tabs) {
		return false
	}
	c.selected = i
	return true
}

// SelectSlot selects the tab displayed at slot position i and calls the
// OnSelect handler. The placeholder cannot be selected.
func (c *Controller) SelectSlot(i int) bool {
	slots := c.Slots()
	if i < 0 || i >= len(slots) || slots[i].Placeholder() {
		return false
	}
	c.selected = slots[i].Index
	if c.onSelect != nil {
		c.onSelect(c.selected, slots[i].Tab)
	}
	return true
}

// ToggleAccessory expands the overlay when it is collapsed and collapses it
// otherwise. Without actions it does nothing.
func (c *Controller) ToggleAccessory() {
	if !c.HasAccessory() {
		return
	}
	if c.overlay.IsCollapsed() {
		c.overlay.Expand(true)
		return
	}
	c.overlay.Collapse(true)
}

// Tap routes a tap at p. The accessory button wins over everything; an
// open overlay swallows every other tap; otherwise tab slots are selected.
func (c *Controller) Tap(p geom.Point) {
	if c.HasAccessory() && c.AccessoryFrame().Contains(p) {
		c.ToggleAccessory()
		return
	}
	if !c.overlay.IsCollapsed() {
		c.overlay.Tap(p)
		return
	}
	for i, s := range c.Slots() {
		if s.Frame.Contains(p) {
			c.SelectSlot(i)
			return
		}
	}
}
