package overlay_test

import (
	"fmt"
	"time"

	"github.com/matzehuels/tabbar/pkg/geom"
	"github.com/matzehuels/tabbar/pkg/overlay"
	"github.com/matzehuels/tabbar/pkg/overlay/anim"
	"github.com/matzehuels/tabbar/pkg/overlay/layout"
)

func Example() {
	o := overlay.New()
	o.SetLayoutMode(layout.GridCentered(3))
	o.SetAnchor(geom.Pt(150, 500), geom.Rect{W: 300, H: 600}, layout.Compact)
	for _, title := range []string{"Scan", "Send", "Pay"} {
		o.Register(overlay.Item{Title: title})
	}

	o.SetListener(overlay.ListenerFuncs{
		OnDidExpand: func(*overlay.Overlay) { fmt.Println("expanded") },
	})
	o.Expand(false)

	for _, st := range o.Shown() {
		fmt.Printf("%s at (%.0f, %.0f)\n", st.Item.Title, st.Center.X, st.Center.Y)
	}
	// Output:
	// expanded
	// Scan at (64, 400)
	// Send at (150, 400)
	// Pay at (236, 400)
}

func ExampleWithAnimator() {
	tl := anim.NewTimeline()
	o := overlay.New(overlay.WithAnimator(tl))
	o.SetAnchor(geom.Pt(150, 500), geom.Rect{W: 300, H: 600}, layout.Compact)
	o.Register(overlay.Item{Title: "Scan"})

	o.Expand(true)
	fmt.Println(o.Phase(), tl.Stage().Name)

	tl.Advance(150 * time.Millisecond)
	fmt.Println(o.Phase(), tl.Stage().Name)

	tl.Advance(350 * time.Millisecond)
	fmt.Println(o.Phase(), tl.Busy())
	// Output:
	// expanding expand-fade-in
	// expanding expand-spring
	// expanded false
}
