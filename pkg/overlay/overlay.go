package overlay

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/observability"
	"github.com/matzehuels/tabbar/pkg/overlay/anim"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
)

// Overlay is the action overlay state machine. Create one with New.
type Overlay struct {
	id       string
	logger   *log.Logger
	animator anim.Animator
	itemSize func(Item) geom.Size
	margins  geom.Insets

	mode      layout.Mode
	anchor    geom.Point
	bounds    geom.Rect
	sizeClass layout.SizeClass

	states     []ItemState
	background float64
	phase      Phase
	listener   Listener

	// shown holds the registration indices laid out by the last expansion
	// or reposition, in visible order.
	shown []int
}

// New returns a collapsed overlay in GridCentered(3) mode with no items.
func New(opts ...Option) *Overlay {
	o := &Overlay{
		id:       uuid.NewString(),
		animator: anim.Immediate{},
		itemSize: func(Item) geom.Size { return layout.DefaultItemSize },
		margins:  layout.DefaultMargins,
		mode:     layout.GridCentered(layout.DefaultCenteredPerRow),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.logger = o.logger.With("overlay", o.id)
	return o
}

// ID returns the instance ID used in logs and hooks.
func (o *Overlay) ID() string { return o.id }

// Phase returns the current lifecycle phase.
func (o *Overlay) Phase() Phase { return o.phase }

// IsCollapsed reports whether the overlay is at rest in the Collapsed phase.
func (o *Overlay) IsCollapsed() bool { return o.phase == Collapsed }

// Mode returns the layout mode used by the next layout pass.
func (o *Overlay) Mode() layout.Mode { return o.mode }

// Anchor returns the last anchor supplied by SetAnchor.
func (o *Overlay) Anchor() geom.Point { return o.anchor }

// Bounds returns the container bounds supplied by SetAnchor.
func (o *Overlay) Bounds() geom.Rect { return o.bounds }

// SizeClass returns the size class supplied by SetAnchor.
func (o *Overlay) SizeClass() layout.SizeClass { return o.sizeClass }

// Background returns the dimming background alpha in [0,1].
func (o *Overlay) Background() float64 { return o.background }

// SetListener installs l as the only listener. Nil removes it.
func (o *Overlay) SetListener(l Listener) { o.listener = l }

// Register appends item to the registration list. A new item starts
// detached on the anchor.
func (o *Overlay) Register(item Item) {
	o.states = append(o.states, ItemState{
		Item:   item,
		Center: o.anchor,
		Size:   o.itemSize(item),
	})
}

// SetLayoutMode sets the mode for the next expansion or reposition. Items
// already expanded keep their positions.
func (o *Overlay) SetLayoutMode(m layout.Mode) { o.mode = m.Normalize() }

// SetAnchor records the geometry of the current layout pass. It takes
// effect at the next expansion or reposition.
func (o *Overlay) SetAnchor(anchor geom.Point, bounds geom.Rect, sc layout.SizeClass) {
	o.anchor = anchor
	o.bounds = bounds
	o.sizeClass = sc
}

// Items returns a copy of every registered item's presentation state in
// registration order.
func (o *Overlay) Items() []ItemState {
	out := make([]ItemState, len(o.states))
	copy(out, o.states)
	return out
}

// Visible returns the items whose visibility predicate currently holds.
// Predicates are evaluated on every call.
func (o *Overlay) Visible() []Item {
	var out []Item
	for _, i := range o.visibleIndices() {
		out = append(out, o.states[i].Item)
	}
	return out
}

// Shown returns the items laid out by the last expansion or reposition.
// The index of an item in the result is its visible index for TapItem.
func (o *Overlay) Shown() []ItemState {
	out := make([]ItemState, 0, len(o.shown))
	for _, i := range o.shown {
		out = append(out, o.states[i])
	}
	return out
}

// Layout computes the positions the visible items would take if the
// overlay expanded now.
func (o *Overlay) Layout() layout.Layout {
	vis := o.visibleIndices()
	size := layout.DefaultItemSize
	if len(vis) > 0 {
		size = o.states[vis[0]].Size
	}

	l := layout.Layout{Mode: o.mode, Params: o.paramsFor(size)}
	for k, i := range vis {
		s := layout.Slot{
			Index:     k,
			Collapsed: layout.Collapsed(k, o.anchor),
			Expanded:  layout.Expanded(o.mode, k, len(vis), o.paramsFor(o.states[i].Size)),
		}
		if o.mode.Kind == layout.KindArc {
			s.Angle = layout.ArcAngle(k, len(vis))
		}
		l.Slots = append(l.Slots, s)
	}
	return l
}

// =============================================================================
// Transitions
// =============================================================================

// Expand opens the overlay. It is ignored unless the overlay is Collapsed.
func (o *Overlay) Expand(animated bool) {
	if o.phase != Collapsed {
		o.ignore("expand")
		return
	}

	a := o.animatorFor(animated)
	o.setPhase(Expanding)
	if o.listener != nil {
		o.listener.WillExpand(o)
	}

	o.run(a, anim.ExpandFadeIn, func() {
		o.background = 1
	}, func() {
		o.resetItems()
		vis := o.visibleIndices()
		o.shown = vis
		o.run(a, anim.ExpandSpring, func() {
			o.placeShown()
		}, func() {
			o.setPhase(Expanded)
			if o.listener != nil {
				o.listener.DidExpand(o)
			}
		})
	})
}

// Collapse closes the overlay. It is ignored unless the overlay is Expanded.
func (o *Overlay) Collapse(animated bool) {
	if o.phase != Expanded {
		o.ignore("collapse")
		return
	}

	a := o.animatorFor(animated)
	o.setPhase(Collapsing)
	if o.listener != nil {
		o.listener.WillCollapse(o)
	}

	o.run(a, anim.CollapseItems, func() {
		for i := range o.states {
			o.states[i].Center = layout.Collapsed(i, o.anchor)
			o.states[i].Alpha = 0
		}
	}, func() {
		o.run(a, anim.CollapseFadeOut, func() {
			o.background = 0
		}, func() {
			for i := range o.states {
				o.states[i].Attached = false
			}
			o.shown = nil
			o.setPhase(Collapsed)
			if o.listener != nil {
				o.listener.DidCollapse(o)
			}
		})
	})
}

// RepositionExpandedItems recomputes expanded positions for the current
// anchor, bounds and mode without a collapse cycle. Visibility is evaluated
// again; items that stopped being visible are detached. It is ignored
// unless the overlay is Expanded.
func (o *Overlay) RepositionExpandedItems() {
	if o.phase != Expanded {
		o.ignore("reposition")
		return
	}

	vis := o.visibleIndices()
	shown := make(map[int]bool, len(vis))
	for _, i := range vis {
		shown[i] = true
	}
	for i := range o.states {
		if !shown[i] {
			o.states[i].Attached = false
			o.states[i].Alpha = 0
			o.states[i].Center = o.anchor
		}
	}
	o.shown = vis
	o.placeShown()
	o.logger.Debug("repositioned", "items", len(vis), "mode", o.mode)
}

// =============================================================================
// Input
// =============================================================================

// TapBackground handles a tap outside every item by collapsing.
func (o *Overlay) TapBackground() {
	o.Collapse(true)
}

// TapItem selects the item at visibleIndex among the shown items: its
// handler runs and the overlay collapses. Taps are only accepted while
// Expanded.
func (o *Overlay) TapItem(visibleIndex int) {
	if o.phase != Expanded {
		o.ignore("tap-item")
		return
	}
	if visibleIndex < 0 || visibleIndex >= len(o.shown) {
		o.logger.Debug("tap outside shown items", "index", visibleIndex, "shown", len(o.shown))
		return
	}

	item := o.states[o.shown[visibleIndex]].Item
	o.logger.Debug("action selected", "title", item.Title)
	observability.Overlay().OnActionSelected(o.id, item.Title)
	if item.Handler != nil {
		item.Handler()
	}
	o.Collapse(true)
}

// Tap hit-tests p against the shown item frames, last drawn first, and
// dispatches to TapItem or TapBackground.
func (o *Overlay) Tap(p geom.Point) {
	for k := len(o.shown) - 1; k >= 0; k-- {
		st := o.states[o.shown[k]]
		if st.Shown() && st.Frame().Contains(p) {
			o.TapItem(k)
			return
		}
	}
	o.TapBackground()
}

// =============================================================================
// anim.Scene
// =============================================================================

// Snapshot captures the animatable state of the overlay.
func (o *Overlay) Snapshot() anim.Frame {
	f := anim.Frame{
		Background: o.background,
		Items:      make([]anim.ItemFrame, len(o.states)),
	}
	for i, st := range o.states {
		f.Items[i] = anim.ItemFrame{Center: st.Center, Alpha: st.Alpha, Attached: st.Attached}
	}
	return f
}

// Apply restores a frame captured by Snapshot. Items registered after the
// frame was captured keep their state.
func (o *Overlay) Apply(f anim.Frame) {
	o.background = f.Background
	for i := 0; i < len(f.Items) && i < len(o.states); i++ {
		o.states[i].Center = f.Items[i].Center
		o.states[i].Alpha = f.Items[i].Alpha
		o.states[i].Attached = f.Items[i].Attached
	}
}

// =============================================================================
// Internals
// =============================================================================

func (o *Overlay) visibleIndices() []int {
	var out []int
	for i, st := range o.states {
		if st.Item.visible() {
			out = append(out, i)
		}
	}
	return out
}

func (o *Overlay) paramsFor(size geom.Size) layout.Params {
	return layout.Params{
		Anchor:    o.anchor,
		Bounds:    o.bounds,
		SizeClass: o.sizeClass,
		ItemSize:  size,
		Margins:   o.margins,
	}
}

// resetItems moves every registered item onto its collapsed position,
// transparent and detached.
func (o *Overlay) resetItems() {
	for i := range o.states {
		o.states[i].Center = layout.Collapsed(i, o.anchor)
		o.states[i].Alpha = 0
		o.states[i].Attached = false
	}
}

// placeShown attaches the shown items at their expanded positions.
func (o *Overlay) placeShown() {
	n := len(o.shown)
	for k, i := range o.shown {
		st := &o.states[i]
		st.Center = layout.Expanded(o.mode, k, n, o.paramsFor(st.Size))
		st.Alpha = 1
		st.Attached = true
	}
}

func (o *Overlay) animatorFor(animated bool) anim.Animator {
	if animated {
		return o.animator
	}
	return anim.Immediate{}
}

func (o *Overlay) run(a anim.Animator, stage anim.Stage, changes, done func()) {
	observability.Overlay().OnStage(o.id, stage.Name, stage.Duration)
	a.Animate(o, stage, changes, done)
}

func (o *Overlay) setPhase(p Phase) {
	from := o.phase
	o.phase = p
	o.logger.Debug("phase", "from", from, "to", p)
	observability.Overlay().OnTransition(o.id, from.String(), p.String())
}

func (o *Overlay) ignore(call string) {
	o.logger.Debug("ignored", "call", call, "phase", o.phase)
	observability.Overlay().OnIgnored(o.id, call, o.phase.String())
}
