package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/matzehuels/tabbar/pkg/overlay"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
	"github.com/matzehuels/tabbar/pkg/tabbar"
)

const (
	// DimmingAlpha is the opacity of the overlay background when fully shown.
	DimmingAlpha = 0.8

	circleRadius  = 28.0
	titleGap      = 4.0
	titleSize     = 12.0
	barTitleSize  = 10.0
	badgeRadius   = 8.0
	glyphArm      = 10.0
	colorTint     = "#007aff"
	colorInactive = "#8e8e93"
	colorBar      = "#f9f9f9"
	colorBadge    = "#ff3b30"
	colorGuide    = "#34c759"
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	guides bool
	title  string
}

// WithGuides draws the anchor, expanded targets and, in arc mode, the arc.
func WithGuides() SVGOption { return func(r *svgRenderer) { r.guides = true } }

// WithTitle draws a caption in the top-left corner.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG draws the scene. Items are drawn in registration order so later
// items paint over earlier ones, matching the hit-test order of taps.
func RenderSVG(s Scene, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := s.Bounds.W, s.Bounds.H
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="-apple-system, Helvetica, sans-serif">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white"/>`+"\n", w, h)

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="12" y="24" font-size="14" fill="%s">%s</text>`+"\n", colorInactive, escapeXML(r.title))
	}

	renderBar(&buf, s)

	if s.Background > 0 {
		fmt.Fprintf(&buf, `  <rect class="dimming" x="0" y="0" width="%.1f" height="%.1f" fill="black" fill-opacity="%.3f"/>`+"\n",
			w, h, DimmingAlpha*s.Background)
	}

	if r.guides {
		renderGuides(&buf, s)
	}

	for i, it := range s.Items {
		if it.Shown() {
			renderItem(&buf, i, it)
		}
	}

	if s.HasAccessory {
		renderAccessory(&buf, s)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBar(buf *bytes.Buffer, s Scene) {
	b := s.Bar
	fmt.Fprintf(buf, `  <rect class="bar" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		b.X, b.Y, b.W, b.H, colorBar)
	if s.SizeClass == layout.Compact {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#c6c6c8" stroke-width="0.5"/>`+"\n",
			b.X, b.Y, b.MaxX(), b.Y)
	} else {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#c6c6c8" stroke-width="0.5"/>`+"\n",
			b.MaxX(), b.Y, b.MaxX(), b.MaxY())
	}

	for _, slot := range s.Slots {
		if slot.Placeholder() {
			continue
		}
		renderSlot(buf, slot, slot.Index == s.Selected)
	}
}

func renderSlot(buf *bytes.Buffer, slot tabbar.Slot, selected bool) {
	color := colorInactive
	if selected {
		color = colorTint
	}
	c := slot.Frame.Center()
	fmt.Fprintf(buf, `  <g class="tab" data-index="%d">`+"\n", slot.Index)
	fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="9" fill="none" stroke="%s" stroke-width="2"/>`+"\n", c.X, c.Y-6, color)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="%.0f" text-anchor="middle" fill="%s">%s</text>`+"\n",
		c.X, c.Y+16, barTitleSize, color, escapeXML(slot.Tab.Title))
	if slot.Tab.Badge != "" {
		renderBadge(buf, c.X+10, c.Y-14, slot.Tab.Badge)
	}
	buf.WriteString("  </g>\n")
}

func renderBadge(buf *bytes.Buffer, x, y float64, label string) {
	fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s"/>`+"\n", x, y, badgeRadius, colorBadge)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="10" text-anchor="middle" fill="white">%s</text>`+"\n",
		x, y+3.5, escapeXML(label))
}

func renderItem(buf *bytes.Buffer, index int, it overlay.ItemState) {
	f := it.Frame()
	cx, cy := f.MidX(), f.Y+circleRadius

	fmt.Fprintf(buf, `  <g class="action" data-index="%d" opacity="%.3f">`+"\n", index, it.Alpha)
	fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.0f" fill="white"/>`+"\n", cx, cy, circleRadius)
	if it.Item.Icon != "" {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="9" text-anchor="middle" fill="%s">%s</text>`+"\n",
			cx, cy+3, colorTint, escapeXML(it.Item.Icon))
	}
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="%.0f" text-anchor="middle" fill="white">%s</text>`+"\n",
		cx, f.Y+2*circleRadius+titleGap+titleSize, titleSize, escapeXML(it.Item.Title))
	if it.Item.IsNew {
		bx, by := cx+circleRadius*0.7, cy-circleRadius*0.7
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="28" height="14" rx="7" fill="%s"/>`+"\n", bx-14, by-7, colorBadge)
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="8" font-weight="bold" text-anchor="middle" fill="white">NEW</text>`+"\n", bx, by+3)
	}
	buf.WriteString("  </g>\n")
}

func renderAccessory(buf *bytes.Buffer, s Scene) {
	c := s.Accessory.Center()
	fmt.Fprintf(buf, `  <g class="accessory" transform="rotate(%.1f %.1f %.1f)">`+"\n", s.Glyph, c.X, c.Y)
	fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s"/>`+"\n", c.X, c.Y, s.Accessory.W/2, colorTint)
	fmt.Fprintf(buf, `    <path d="M %.1f %.1f H %.1f M %.1f %.1f V %.1f" stroke="white" stroke-width="3" stroke-linecap="round"/>`+"\n",
		c.X-glyphArm, c.Y, c.X+glyphArm, c.X, c.Y-glyphArm, c.Y+glyphArm)
	buf.WriteString("  </g>\n")
}

func renderGuides(buf *bytes.Buffer, s Scene) {
	l := s.Layout
	a := l.Params.Anchor
	buf.WriteString(`  <g class="guides" fill="none" stroke-dasharray="4 4">` + "\n")

	if l.Mode.Kind == layout.KindArc {
		rx := layout.ArcRadius(l.Params.SizeClass)
		ry := layout.ArcVerticalRatio * rx
		cy := a.Y - layout.ArcLift
		start := layout.ArcStartAngle * math.Pi / 180
		end := (layout.ArcStartAngle - layout.ArcRange()) * math.Pi / 180
		fmt.Fprintf(buf, `    <path d="M %.1f %.1f A %.1f %.1f 0 0 1 %.1f %.1f" stroke="%s"/>`+"\n",
			a.X+rx*math.Cos(start), cy-ry*math.Sin(start),
			rx, ry,
			a.X+rx*math.Cos(end), cy-ry*math.Sin(end),
			colorGuide)
	}

	for _, slot := range l.Slots {
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
			a.X, a.Y, slot.Expanded.X, slot.Expanded.Y, colorGuide)
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="3" fill="%s" stroke="none"/>`+"\n",
			slot.Expanded.X, slot.Expanded.Y, colorGuide)
	}
	fmt.Fprintf(buf, `    <circle class="anchor" cx="%.1f" cy="%.1f" r="4" fill="%s" stroke="none"/>`+"\n", a.X, a.Y, colorGuide)
	buf.WriteString("  </g>\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
