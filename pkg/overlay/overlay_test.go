package overlay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/observability"
	"github.com/matzehuels/tabbar/pkg/overlay/anim"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
)

var (
	testAnchor = geom.Pt(150, 500)
	testBounds = geom.Rect{W: 300, H: 600}
)

type recorder struct {
	events []string
}

func (r *recorder) WillExpand(*Overlay)   { r.events = append(r.events, "willExpand") }
func (r *recorder) DidExpand(*Overlay)    { r.events = append(r.events, "didExpand") }
func (r *recorder) WillCollapse(*Overlay) { r.events = append(r.events, "willCollapse") }
func (r *recorder) DidCollapse(*Overlay)  { r.events = append(r.events, "didCollapse") }

func newTestOverlay(t *testing.T, n int, opts ...Option) (*Overlay, *recorder) {
	t.Helper()
	o := New(opts...)
	o.SetAnchor(testAnchor, testBounds, layout.Compact)
	for i := 0; i < n; i++ {
		o.Register(Item{Title: string(rune('A' + i))})
	}
	rec := &recorder{}
	o.SetListener(rec)
	return o, rec
}

func TestExpandCollapseImmediate(t *testing.T) {
	o, rec := newTestOverlay(t, 3)

	require.True(t, o.IsCollapsed())
	o.Expand(false)

	assert.Equal(t, Expanded, o.Phase())
	assert.Equal(t, []string{"willExpand", "didExpand"}, rec.events)
	assert.Equal(t, 1.0, o.Background())

	want := []geom.Point{geom.Pt(64, 400), geom.Pt(150, 400), geom.Pt(236, 400)}
	for i, st := range o.Items() {
		assert.True(t, st.Attached, "item %d attached", i)
		assert.Equal(t, 1.0, st.Alpha, "item %d alpha", i)
		assert.InDelta(t, want[i].X, st.Center.X, 1e-9, "item %d x", i)
		assert.InDelta(t, want[i].Y, st.Center.Y, 1e-9, "item %d y", i)
	}

	o.Collapse(false)

	assert.True(t, o.IsCollapsed())
	assert.Equal(t, []string{"willExpand", "didExpand", "willCollapse", "didCollapse"}, rec.events)
	assert.Equal(t, 0.0, o.Background())
	for i, st := range o.Items() {
		assert.False(t, st.Attached, "item %d attached", i)
		assert.Equal(t, 0.0, st.Alpha, "item %d alpha", i)
		assert.Equal(t, testAnchor, st.Center, "item %d center", i)
	}
	assert.Empty(t, o.Shown())
}

func TestExpandIsIdempotent(t *testing.T) {
	o, rec := newTestOverlay(t, 2)

	o.Expand(false)
	o.Expand(false)
	o.Expand(true)

	assert.Equal(t, []string{"willExpand", "didExpand"}, rec.events)
	assert.Equal(t, Expanded, o.Phase())
}

func TestCollapseWhenCollapsedIsIgnored(t *testing.T) {
	o, rec := newTestOverlay(t, 2)

	o.Collapse(false)
	o.TapBackground()

	assert.Empty(t, rec.events)
	assert.True(t, o.IsCollapsed())
}

func TestTimelineStages(t *testing.T) {
	tl := anim.NewTimeline()
	o, rec := newTestOverlay(t, 3, WithAnimator(tl))

	o.Expand(true)
	require.Equal(t, Expanding, o.Phase())
	assert.Equal(t, []string{"willExpand"}, rec.events)
	assert.Equal(t, anim.ExpandFadeIn.Name, tl.Stage().Name)
	assert.Equal(t, 0.0, o.Background())

	tl.Advance(75 * time.Millisecond)
	assert.Greater(t, o.Background(), 0.0)
	assert.Less(t, o.Background(), 1.0)

	tl.Advance(75 * time.Millisecond)
	assert.Equal(t, 1.0, o.Background())
	assert.Equal(t, anim.ExpandSpring.Name, tl.Stage().Name)
	for _, st := range o.Items() {
		assert.Equal(t, testAnchor, st.Center)
		assert.Equal(t, 0.0, st.Alpha)
	}

	// Opposite transition mid-flight is ignored.
	o.Collapse(true)
	assert.Equal(t, Expanding, o.Phase())

	tl.Advance(100 * time.Millisecond)
	st := o.Items()[0]
	assert.True(t, st.Attached)
	assert.Greater(t, st.Alpha, 0.0)
	assert.NotEqual(t, testAnchor, st.Center)

	tl.Advance(250 * time.Millisecond)
	assert.False(t, tl.Busy())
	assert.Equal(t, Expanded, o.Phase())
	assert.Equal(t, []string{"willExpand", "didExpand"}, rec.events)
	assert.InDelta(t, 64.0, o.Items()[0].Center.X, 1e-9)

	o.Collapse(true)
	assert.Equal(t, Collapsing, o.Phase())
	assert.Equal(t, anim.CollapseItems.Name, tl.Stage().Name)

	tl.Advance(150 * time.Millisecond)
	assert.Equal(t, anim.CollapseFadeOut.Name, tl.Stage().Name)
	for _, st := range o.Items() {
		assert.Equal(t, testAnchor, st.Center)
		assert.Equal(t, 0.0, st.Alpha)
	}
	assert.Equal(t, 1.0, o.Background())

	tl.Advance(100 * time.Millisecond)
	assert.True(t, o.IsCollapsed())
	assert.Equal(t, 0.0, o.Background())
	assert.Equal(t, []string{"willExpand", "didExpand", "willCollapse", "didCollapse"}, rec.events)
}

func TestTimelineFinish(t *testing.T) {
	tl := anim.NewTimeline()
	o, rec := newTestOverlay(t, 4, WithAnimator(tl))

	o.Expand(true)
	tl.Finish()
	assert.Equal(t, Expanded, o.Phase())

	o.Collapse(true)
	tl.Finish()
	assert.True(t, o.IsCollapsed())
	assert.Len(t, rec.events, 4)
	for _, st := range o.Items() {
		assert.Equal(t, 0.0, st.Alpha)
	}
}

func TestVisibilityIsEvaluatedEachExpansion(t *testing.T) {
	beta := false
	o, _ := newTestOverlay(t, 0)
	o.Register(Item{Title: "Always"})
	o.Register(Item{Title: "Beta", Visible: func() bool { return beta }})

	o.Expand(false)
	require.Len(t, o.Shown(), 1)
	assert.False(t, o.Items()[1].Attached)
	assert.Equal(t, 0.0, o.Items()[1].Alpha)
	o.Collapse(false)

	beta = true
	assert.Len(t, o.Visible(), 2)

	o.Expand(false)
	require.Len(t, o.Shown(), 2)
	assert.True(t, o.Items()[1].Attached)
}

func TestTapItem(t *testing.T) {
	var tapped []string
	o, rec := newTestOverlay(t, 0)
	for _, title := range []string{"Scan", "Send", "Pay"} {
		o.Register(Item{Title: title, Handler: func() { tapped = append(tapped, title) }})
	}

	o.TapItem(0)
	assert.Empty(t, tapped, "taps while collapsed are ignored")

	o.Expand(false)
	o.TapItem(1)
	assert.Equal(t, []string{"Send"}, tapped)
	assert.True(t, o.IsCollapsed())
	assert.Equal(t, []string{"willExpand", "didExpand", "willCollapse", "didCollapse"}, rec.events)

	o.Expand(false)
	o.TapItem(7)
	assert.Equal(t, Expanded, o.Phase(), "out of range taps do nothing")
}

func TestTapHitTest(t *testing.T) {
	var tapped int
	o, _ := newTestOverlay(t, 0)
	o.Register(Item{Title: "One", Handler: func() { tapped++ }})
	o.Register(Item{Title: "Two"})

	o.Expand(false)
	o.Tap(o.Items()[0].Center)
	assert.Equal(t, 1, tapped)
	assert.True(t, o.IsCollapsed())

	o.Expand(false)
	o.Tap(geom.Pt(1, 1))
	assert.Equal(t, 1, tapped)
	assert.True(t, o.IsCollapsed())
}

func TestEmptyOverlay(t *testing.T) {
	for _, mode := range []layout.Mode{layout.Linear(), layout.Arc(), layout.GridCentered(3), layout.GridTrailing(2)} {
		t.Run(mode.String(), func(t *testing.T) {
			o, rec := newTestOverlay(t, 0)
			o.SetLayoutMode(mode)
			o.Expand(false)
			assert.Equal(t, Expanded, o.Phase())
			assert.Empty(t, o.Shown())
			assert.Empty(t, o.Layout().Slots)
			o.Collapse(false)
			assert.Len(t, rec.events, 4)
		})
	}
}

func TestRepositionExpandedItems(t *testing.T) {
	o, _ := newTestOverlay(t, 3)
	o.SetLayoutMode(layout.Arc())

	o.RepositionExpandedItems()
	assert.Equal(t, testAnchor, o.Items()[0].Center, "ignored while collapsed")

	o.Expand(false)
	before := o.Items()[0].Center

	moved := geom.Pt(400, 900)
	o.SetAnchor(moved, geom.Rect{W: 800, H: 1000}, layout.Regular)
	o.RepositionExpandedItems()

	after := o.Items()[0].Center
	want := layout.Expanded(layout.Arc(), 0, 3, layout.Params{
		Anchor:    moved,
		Bounds:    geom.Rect{W: 800, H: 1000},
		SizeClass: layout.Regular,
		ItemSize:  layout.DefaultItemSize,
		Margins:   layout.DefaultMargins,
	})
	assert.NotEqual(t, before, after)
	assert.InDelta(t, want.X, after.X, 1e-9)
	assert.InDelta(t, want.Y, after.Y, 1e-9)
}

func TestSetLayoutModeAppliesToNextExpansion(t *testing.T) {
	o, _ := newTestOverlay(t, 2)
	o.SetLayoutMode(layout.Linear())
	o.Expand(false)
	linear := o.Items()[1].Center

	o.SetLayoutMode(layout.Arc())
	assert.Equal(t, linear, o.Items()[1].Center)

	o.Collapse(false)
	o.Expand(false)
	assert.NotEqual(t, linear, o.Items()[1].Center)
}

func TestListenerFuncs(t *testing.T) {
	var got []string
	o, _ := newTestOverlay(t, 1)
	o.SetListener(ListenerFuncs{
		OnDidExpand: func(ov *Overlay) {
			assert.Same(t, o, ov)
			got = append(got, "did")
		},
	})
	o.Expand(false)
	o.Collapse(false)
	assert.Equal(t, []string{"did"}, got)

	o.SetListener(nil)
	o.Expand(false)
	assert.Equal(t, []string{"did"}, got)
}

type hookRecorder struct {
	observability.NoopOverlayHooks
	transitions []string
	stages      []string
	selected    []string
	ignored     []string
}

func (h *hookRecorder) OnTransition(_, from, to string) {
	h.transitions = append(h.transitions, from+">"+to)
}

func (h *hookRecorder) OnStage(_, stage string, _ time.Duration) {
	h.stages = append(h.stages, stage)
}

func (h *hookRecorder) OnActionSelected(_, title string) {
	h.selected = append(h.selected, title)
}

func (h *hookRecorder) OnIgnored(_, call, phase string) {
	h.ignored = append(h.ignored, call+"@"+phase)
}

func TestObservabilityHooks(t *testing.T) {
	h := &hookRecorder{}
	observability.SetOverlayHooks(h)
	defer observability.Reset()

	o, _ := newTestOverlay(t, 1, WithID("test"))
	assert.Equal(t, "test", o.ID())

	o.Expand(true)
	o.Expand(true)
	o.TapItem(0)

	assert.Equal(t, []string{
		"collapsed>expanding",
		"expanding>expanded",
		"expanded>collapsing",
		"collapsing>collapsed",
	}, h.transitions)
	assert.Equal(t, []string{
		anim.ExpandFadeIn.Name,
		anim.ExpandSpring.Name,
		anim.CollapseItems.Name,
		anim.CollapseFadeOut.Name,
	}, h.stages)
	assert.Equal(t, []string{"A"}, h.selected)
	assert.Equal(t, []string{"expand@expanded"}, h.ignored)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "collapsed", Collapsed.String())
	assert.Equal(t, "collapsing", Collapsing.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
