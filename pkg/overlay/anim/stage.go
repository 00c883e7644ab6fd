package anim

import "time"

// Stage is one timed step of an overlay transition.
type Stage struct {
	Name     string
	Duration time.Duration
	Curve    Curve
}

// Stages of the expand and collapse sequences.
var (
	ExpandFadeIn = Stage{
		Name:     "expand-fade-in",
		Duration: 150 * time.Millisecond,
		Curve:    EaseInOut,
	}
	ExpandSpring = Stage{
		Name:     "expand-spring",
		Duration: 350 * time.Millisecond,
		Curve:    Spring{Damping: 0.65, Velocity: 1.0},
	}
	CollapseItems = Stage{
		Name:     "collapse-items",
		Duration: 150 * time.Millisecond,
		Curve:    EaseInOut,
	}
	CollapseFadeOut = Stage{
		Name:     "collapse-fade-out",
		Duration: 100 * time.Millisecond,
		Curve:    EaseInOut,
	}
)

// progress returns the curve value after elapsed time into the stage.
func (s Stage) progress(elapsed time.Duration) float64 {
	if s.Duration <= 0 {
		return 1
	}
	c := s.Curve
	if c == nil {
		c = Linear
	}
	return c.Progress(float64(elapsed) / float64(s.Duration))
}
