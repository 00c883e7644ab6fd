package render

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/tabbar/pkg/errors"
	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/overlay"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
	"github.com/matzehuels/tabbar/pkg/tabbar"
)

func testController(mode layout.Mode) *tabbar.Controller {
	c := tabbar.New([]tabbar.Tab{
		{Title: "Home"},
		{Title: "Inbox", Badge: "2"},
		{Title: "Search"},
		{Title: "Me"},
	}, tabbar.WithCompactMode(mode))
	c.AddAction(overlay.Item{Title: "Scan", Icon: "camera"})
	c.AddAction(overlay.Item{Title: "Send & Pay"})
	c.AddAction(overlay.Item{Title: "Split", IsNew: true})
	c.Configure(layout.Compact, geom.Rect{W: 390, H: 844}, 34)
	return c
}

func TestRenderSVGCollapsed(t *testing.T) {
	svg := string(RenderSVG(FromController(testController(layout.Arc()))))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if strings.Contains(svg, `class="dimming"`) {
		t.Error("collapsed scene should not draw the dimming background")
	}
	if strings.Contains(svg, `class="action"`) {
		t.Error("collapsed scene should not draw action items")
	}
	if got := strings.Count(svg, `class="tab"`); got != 4 {
		t.Errorf("tabs drawn = %d, want 4", got)
	}
	if !strings.Contains(svg, `class="accessory" transform="rotate(0.0`) {
		t.Error("accessory glyph should be unrotated")
	}
}

func TestRenderSVGExpanded(t *testing.T) {
	c := testController(layout.Arc())
	c.ToggleAccessory()

	svg := string(RenderSVG(FromController(c), WithGuides(), WithTitle("arc <demo>")))

	if got := strings.Count(svg, `class="action"`); got != 3 {
		t.Errorf("actions drawn = %d, want 3", got)
	}
	if !strings.Contains(svg, `fill-opacity="0.800"`) {
		t.Error("dimming background should be at full opacity")
	}
	if !strings.Contains(svg, "Send &amp; Pay") {
		t.Error("titles should be XML escaped")
	}
	if !strings.Contains(svg, "arc &lt;demo&gt;") {
		t.Error("caption should be XML escaped")
	}
	if !strings.Contains(svg, ">NEW</text>") {
		t.Error("new badge missing")
	}
	if !strings.Contains(svg, `class="guides"`) || !strings.Contains(svg, " A 135.0 108.0 ") {
		t.Error("arc guide missing")
	}
	if !strings.Contains(svg, `rotate(45.0`) {
		t.Error("accessory glyph should be rotated while expanded")
	}
}

func TestRenderJSON(t *testing.T) {
	c := testController(layout.Arc())
	l := c.Overlay().Layout()

	data, err := RenderJSON(l, WithJSONTitles([]string{"Scan", "Send"}))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Mode != "arc" {
		t.Errorf("Mode = %q, want arc", out.Mode)
	}
	if out.SizeClass != "compact" {
		t.Errorf("SizeClass = %q, want compact", out.SizeClass)
	}
	if len(out.Slots) != 3 {
		t.Fatalf("Slots = %d, want 3", len(out.Slots))
	}
	if out.Slots[0].Angle != 160 {
		t.Errorf("Slots[0].Angle = %v, want 160", out.Slots[0].Angle)
	}
	if out.Slots[1].Title != "Send" || out.Slots[2].Title != "" {
		t.Errorf("titles = %q, %q", out.Slots[1].Title, out.Slots[2].Title)
	}
	a := c.AccessoryCenter()
	if out.Slots[2].Collapsed != (jsonPoint{X: a.X, Y: a.Y}) {
		t.Errorf("Collapsed = %+v, want anchor %v", out.Slots[2].Collapsed, a)
	}
}

func TestToDOT(t *testing.T) {
	l := layout.Compute(layout.Linear(), 2, layout.Params{
		Anchor:   geom.Pt(72, 720),
		Bounds:   geom.Rect{W: 144, H: 720},
		ItemSize: layout.DefaultItemSize,
	})

	dot := ToDOT(l, DOTOptions{Titles: []string{"Scan"}})

	for _, want := range []string{
		"layout=neato;",
		`anchor [label="+"`,
		`pos="1.000,0.000!"`,
		`item0 [label="Scan", pos="1.000,1.389!"]`,
		`item1 [label="1", pos="1.000,2.778!"]`,
		"anchor -- item1",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderDOTRejectsFormat(t *testing.T) {
	_, err := RenderDOT(context.Background(), "graph G {}", "gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("RenderDOT(gif) error = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderDOTSVG(t *testing.T) {
	l := layout.Compute(layout.GridCentered(3), 3, layout.Params{
		Anchor:   geom.Pt(150, 500),
		Bounds:   geom.Rect{W: 300, H: 600},
		ItemSize: layout.DefaultItemSize,
		Margins:  layout.DefaultMargins,
	})

	out, err := RenderDOT(context.Background(), ToDOT(l, DOTOptions{}), "svg")
	if err != nil {
		t.Fatalf("RenderDOT() error: %v", err)
	}
	if !strings.Contains(string(out), "<svg") {
		t.Errorf("output is not svg: %.80s", out)
	}
}
