package render

import (
	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/overlay"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
	"github.com/matzehuels/tabbar/pkg/tabbar"
)

// Scene is a renderable snapshot of a tab bar and its overlay.
type Scene struct {
	Bounds     geom.Rect
	SizeClass  layout.SizeClass
	Phase      overlay.Phase
	Background float64
	Items      []overlay.ItemState
	Layout     layout.Layout

	Bar      geom.Rect
	Slots    []tabbar.Slot
	Selected int

	HasAccessory bool
	Accessory    geom.Rect
	Glyph        float64
}

// FromController captures the current state of c.
func FromController(c *tabbar.Controller) Scene {
	ov := c.Overlay()
	return Scene{
		Bounds:       c.Bounds(),
		SizeClass:    c.SizeClass(),
		Phase:        ov.Phase(),
		Background:   ov.Background(),
		Items:        ov.Items(),
		Layout:       ov.Layout(),
		Bar:          c.BarFrame(),
		Slots:        c.Slots(),
		Selected:     c.SelectedIndex(),
		HasAccessory: c.HasAccessory(),
		Accessory:    c.AccessoryFrame(),
		Glyph:        c.GlyphRotation(),
	}
}
