package overlay

import "github.com/matzehuels/tabbar/pkg/geom"

// Item is a registered action.
//
// Visible is evaluated on every layout pass and never cached, so it may
// read state that changes between expansions. A nil Visible means the item
// is always shown. Handler, if set, runs when the item is tapped.
type Item struct {
	Title   string
	Icon    string
	IsNew   bool
	Handler func()
	Visible func() bool
}

func (it Item) visible() bool {
	return it.Visible == nil || it.Visible()
}

// ItemState is the presentation state of one registered item.
type ItemState struct {
	Item     Item
	Center   geom.Point
	Size     geom.Size
	Alpha    float64
	Attached bool
}

// Frame returns the item's rectangle in overlay coordinates.
func (s ItemState) Frame() geom.Rect {
	return geom.RectAround(s.Center, s.Size)
}

// Shown reports whether the item is attached and not fully transparent.
func (s ItemState) Shown() bool {
	return s.Attached && s.Alpha > 0
}
