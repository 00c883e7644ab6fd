package anim

import (
	"math"

	"github.com/matzehuels/tabbar/pkg/geom"
)

// ItemFrame is the animatable state of one registered item.
type ItemFrame struct {
	Center   geom.Point
	Alpha    float64
	Attached bool
}

// Frame is the animatable state of a whole overlay.
type Frame struct {
	Background float64
	Items      []ItemFrame
}

// Scene is anything whose animatable state can be captured and restored.
type Scene interface {
	Snapshot() Frame
	Apply(Frame)
}

// Interpolate blends from toward to by progress p. Positions follow p
// unclamped so spring overshoot is visible; alphas are clamped to [0,1].
// An item attached at either end is attached throughout.
func Interpolate(from, to Frame, p float64) Frame {
	out := Frame{
		Background: lerpAlpha(from.Background, to.Background, p),
		Items:      make([]ItemFrame, len(to.Items)),
	}
	for i, dst := range to.Items {
		if i >= len(from.Items) {
			out.Items[i] = dst
			continue
		}
		src := from.Items[i]
		out.Items[i] = ItemFrame{
			Center:   src.Center.Lerp(dst.Center, p),
			Alpha:    lerpAlpha(src.Alpha, dst.Alpha, p),
			Attached: src.Attached || dst.Attached,
		}
	}
	return out
}

func lerpAlpha(a, b, p float64) float64 {
	return math.Max(0, math.Min(1, a+(b-a)*p))
}
