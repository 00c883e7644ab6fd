package layout

import (
	"math"

	"github.com/matzehuels/tabbar/pkg/geom"
)

// =============================================================================
// Metrics
// =============================================================================

const (
	// LinearSpacing is the vertical distance between linear items.
	LinearSpacing = 100.0

	// GridRowSpacing is the vertical gap between centered grid rows.
	GridRowSpacing = 24.0

	// TrailingSpacing is the gap between trailing grid items on both axes.
	TrailingSpacing = 44.0

	// ArcRadiusCompact and ArcRadiusRegular are the horizontal arc radii.
	ArcRadiusCompact = 135.0
	ArcRadiusRegular = 200.0

	// ArcVerticalRatio flattens the arc into an ellipse.
	ArcVerticalRatio = 0.8

	// ArcLift raises the whole arc above the anchor.
	ArcLift = 24.0

	// ArcStartAngle is the angle of the first item, in degrees.
	ArcStartAngle = 160.0

	// ArcMedianOffset nudges arc items toward the center, in degrees.
	ArcMedianOffset = 2.6
)

var (
	// DefaultItemSize is the fitting size of an action item: a 56pt circle,
	// a 4pt gap and a 16pt title line.
	DefaultItemSize = geom.Size{W: 56, H: 76}

	// DefaultMargins are the overlay layout margins.
	DefaultMargins = geom.Insets{Left: 36, Right: 36}
)

// Params carries the geometry a layout pass depends on. Anchor must already
// be expressed in the overlay's coordinate space.
type Params struct {
	Anchor    geom.Point
	Bounds    geom.Rect
	SizeClass SizeClass
	ItemSize  geom.Size
	Margins   geom.Insets
}

// =============================================================================
// Positions
// =============================================================================

// Collapsed returns the collapsed position of the item at index, which is
// the anchor for every mode and index.
func Collapsed(index int, anchor geom.Point) geom.Point {
	return anchor
}

// Expanded returns the expanded position of the item at index when count
// items are visible. Out-of-range inputs return the anchor.
func Expanded(mode Mode, index, count int, p Params) geom.Point {
	if count <= 0 || index < 0 || index >= count {
		return p.Anchor
	}

	mode = mode.Normalize()
	switch mode.Kind {
	case KindLinear:
		return linear(index, p)
	case KindGridCentered:
		return gridCentered(mode.MaxPerRow, index, count, p)
	case KindGridTrailing:
		return gridTrailing(mode.MaxPerRow, index, count, p)
	case KindArc:
		return arc(index, count, p)
	default:
		return p.Anchor
	}
}

func linear(index int, p Params) geom.Point {
	y := LinearSpacing * float64(index+1)
	return geom.Pt(p.Anchor.X, p.Anchor.Y-y)
}

// gridCell locates index within a grid of perRow columns.
type gridCell struct {
	rows      int // total number of rows
	row       int // row of the item; row 0 holds the first items
	col       int // column within the row
	rowLength int // items in this row
}

func cellFor(perRow, index, count int) gridCell {
	rows := (count + perRow - 1) / perRow
	row := index / perRow
	length := perRow
	if row == rows-1 {
		length = count - row*perRow
	}
	return gridCell{rows: rows, row: row, col: index - row*perRow, rowLength: length}
}

// rowOffset is the upward distance of row from the anchor. Rows are counted
// from the top, so row 0 is the farthest from the anchor.
func (c gridCell) rowOffset(rowHeight float64) float64 {
	return rowHeight*float64(c.rows-1-c.row) + rowHeight
}

func gridCentered(perRow, index, count int, p Params) geom.Point {
	c := cellFor(perRow, index, count)

	margins := p.Margins.Horizontal() + p.ItemSize.W
	spacing := (p.Bounds.W - margins) / float64(perRow-1)
	missing := perRow - c.rowLength
	originX := (p.Anchor.X - p.Bounds.W/2) + margins/2 + float64(missing)*spacing/2

	x := originX + float64(c.col)*spacing
	y := c.rowOffset(p.ItemSize.H + GridRowSpacing)
	return geom.Pt(x, p.Anchor.Y-y)
}

func gridTrailing(perRow, index, count int, p Params) geom.Point {
	c := cellFor(perRow, index, count)

	x := p.Anchor.X - float64(c.col)*(p.ItemSize.W+TrailingSpacing)
	y := c.rowOffset(p.ItemSize.H + TrailingSpacing)
	return geom.Pt(x, p.Anchor.Y-y)
}

// =============================================================================
// Arc
// =============================================================================

// ArcRadius returns the horizontal arc radius for the size class.
func ArcRadius(sc SizeClass) float64 {
	if sc == Compact {
		return ArcRadiusCompact
	}
	return ArcRadiusRegular
}

// ArcRange returns the angular span of the arc in degrees. The span is
// symmetric around 90°, so it ends at 180° minus the start angle.
func ArcRange() float64 {
	return 180 - 2*(180-ArcStartAngle)
}

// ArcAngle returns the angle in degrees of the item at index on an arc of
// count items, including the median correction. When the median index
// (count/2) is even, items strictly between the first item and the median
// and strictly between the median and the last item move 2.6° toward the
// center so the arc reads as balanced.
func ArcAngle(index, count int) float64 {
	if count <= 1 {
		return ArcStartAngle
	}

	angle := ArcStartAngle - float64(index)*(ArcRange()/float64(count-1))

	median := count / 2
	if median%2 == 0 {
		switch {
		case index > 0 && index < median:
			angle -= ArcMedianOffset
		case index > median && index < count-1:
			angle += ArcMedianOffset
		}
	}
	return angle
}

func arc(index, count int, p Params) geom.Point {
	r := ArcRadius(p.SizeClass)
	theta := ArcAngle(index, count) * math.Pi / 180

	x := r * math.Cos(theta)
	y := ArcVerticalRatio*r*math.Sin(theta) + ArcLift
	return geom.Pt(p.Anchor.X+x, p.Anchor.Y-y)
}

// =============================================================================
// Batch Layout
// =============================================================================

// Slot is one visible item's pair of positions.
type Slot struct {
	Index     int
	Collapsed geom.Point
	Expanded  geom.Point
	// Angle is the arc angle in degrees; it is zero for non-arc modes.
	Angle float64
}

// Layout is the result of laying out every visible item for one pass.
type Layout struct {
	Mode   Mode
	Params Params
	Slots  []Slot
}

// Compute lays out count visible items. A non-positive count yields a
// layout with no slots.
func Compute(mode Mode, count int, p Params) Layout {
	mode = mode.Normalize()
	l := Layout{Mode: mode, Params: p}
	if count <= 0 {
		return l
	}

	l.Slots = make([]Slot, count)
	for i := range l.Slots {
		s := Slot{
			Index:     i,
			Collapsed: Collapsed(i, p.Anchor),
			Expanded:  Expanded(mode, i, count, p),
		}
		if mode.Kind == KindArc {
			s.Angle = ArcAngle(i, count)
		}
		l.Slots[i] = s
	}
	return l
}

// Bounds returns the smallest rectangle containing every expanded item
// frame and the anchor. Sinks use it to size guides and viewports.
func (l Layout) Bounds() geom.Rect {
	minX, minY := l.Params.Anchor.X, l.Params.Anchor.Y
	maxX, maxY := minX, minY
	half := geom.Size{W: l.Params.ItemSize.W / 2, H: l.Params.ItemSize.H / 2}
	for _, s := range l.Slots {
		minX = math.Min(minX, s.Expanded.X-half.W)
		minY = math.Min(minY, s.Expanded.Y-half.H)
		maxX = math.Max(maxX, s.Expanded.X+half.W)
		maxY = math.Max(maxY, s.Expanded.Y+half.H)
	}
	return geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
