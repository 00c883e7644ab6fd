package render

import (
	"encoding/json"

	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
)

// JSONOption configures RenderJSON.
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	titles []string
}

// WithJSONTitles labels slots with item titles, in visible order.
func WithJSONTitles(titles []string) JSONOption {
	return func(r *jsonRenderer) { r.titles = titles }
}

type jsonOutput struct {
	Mode      string     `json:"mode"`
	SizeClass string     `json:"size_class"`
	Anchor    jsonPoint  `json:"anchor"`
	Bounds    jsonRect   `json:"bounds"`
	ItemSize  jsonSize   `json:"item_size"`
	Slots     []jsonSlot `json:"slots"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonSlot struct {
	Index     int       `json:"index"`
	Title     string    `json:"title,omitempty"`
	Collapsed jsonPoint `json:"collapsed"`
	Expanded  jsonPoint `json:"expanded"`
	Angle     float64   `json:"angle,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document with one
// entry per visible slot.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	p := l.Params
	out := jsonOutput{
		Mode:      l.Mode.String(),
		SizeClass: p.SizeClass.String(),
		Anchor:    toJSONPoint(p.Anchor),
		Bounds:    jsonRect{X: p.Bounds.X, Y: p.Bounds.Y, Width: p.Bounds.W, Height: p.Bounds.H},
		ItemSize:  jsonSize{Width: p.ItemSize.W, Height: p.ItemSize.H},
		Slots:     make([]jsonSlot, 0, len(l.Slots)),
	}
	for _, s := range l.Slots {
		js := jsonSlot{
			Index:     s.Index,
			Collapsed: toJSONPoint(s.Collapsed),
			Expanded:  toJSONPoint(s.Expanded),
			Angle:     s.Angle,
		}
		if s.Index < len(r.titles) {
			js.Title = r.titles[s.Index]
		}
		out.Slots = append(out.Slots, js)
	}
	return json.MarshalIndent(out, "", "  ")
}

func toJSONPoint(p geom.Point) jsonPoint { return jsonPoint{X: p.X, Y: p.Y} }
