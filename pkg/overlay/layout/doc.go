// Package layout computes where overlay action items sit when the overlay is
// collapsed and when it is expanded.
//
// # Overview
//
// Every function in this package is pure: it maps a layout [Mode], an item
// index, the number of currently visible items and a set of [Params]
// (anchor point, container bounds, size class, item size, margins) to a
// point in the overlay's own coordinate space. Nothing here reads global
// state or walks a view hierarchy; the caller converts the anchor into the
// overlay's coordinate space before asking for positions.
//
// # Collapsed Positions
//
// [Collapsed] always returns the anchor. All items start stacked on the
// anchor so the expand animation bursts from a single origin.
//
// # Expanded Positions
//
// [Expanded] dispatches on the mode:
//
//   - Linear: a vertical column above the anchor, 100pt apart.
//   - GridCentered(n): rows of at most n items centered on the anchor and
//     stacked upward; a short last row is shifted so it stays centered.
//   - GridTrailing(n): rows growing leftward from the anchor, for anchors
//     sitting in a screen corner.
//   - Arc: an ellipse of horizontal radius R and vertical radius 0.8R,
//     lifted 24pt above the anchor, spanning 140° centered on 90°. R is 135
//     for compact size classes and 200 otherwise.
//
// Degenerate inputs never divide by zero: zero visible items or an
// out-of-range index yields the anchor, a single arc item sits at the 160°
// start angle, and grid modes clamp MaxPerRow to at least 2.
//
// # Batch Layouts
//
// [Compute] evaluates both configurations for every visible index at once
// and returns a [Layout] that render sinks consume directly.
//
//	p := layout.Params{
//	    Anchor:    geom.Pt(195, 780),
//	    Bounds:    geom.Rect{W: 390, H: 844},
//	    SizeClass: layout.Compact,
//	    ItemSize:  layout.DefaultItemSize,
//	    Margins:   layout.DefaultMargins,
//	}
//	l := layout.Compute(layout.Arc(), 5, p)
//	for _, s := range l.Slots {
//	    fmt.Println(s.Index, s.Expanded)
//	}
package layout
