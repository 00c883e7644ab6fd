package anim

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/tabbar/pkg/geom"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":    Linear,
		"easeInOut": EaseInOut,
		"spring":    Spring{Damping: 0.65, Velocity: 1},
		"critical":  Spring{Damping: 1},
		"zero":      Spring{},
	}
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			if got := c.Progress(0); got != 0 {
				t.Errorf("Progress(0) = %v, want 0", got)
			}
			if got := c.Progress(1); got != 1 {
				t.Errorf("Progress(1) = %v, want 1", got)
			}
			if got := c.Progress(2); got != 1 {
				t.Errorf("Progress(2) = %v, want clamped 1", got)
			}
			for i := 1; i < 100; i++ {
				if v := c.Progress(float64(i) / 100); math.IsNaN(v) {
					t.Fatalf("Progress(%v) is NaN", float64(i)/100)
				}
			}
		})
	}
}

func TestEaseInOutMonotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut.Progress(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseInOut decreased at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
	if v := EaseInOut.Progress(0.5); math.Abs(v-0.5) > 1e-12 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", v)
	}
}

func TestSpringOvershoot(t *testing.T) {
	under := Spring{Damping: 0.65, Velocity: 1}
	critical := Spring{Damping: 1}

	peakUnder, peakCritical := 0.0, 0.0
	for i := 0; i <= 200; i++ {
		x := float64(i) / 200
		peakUnder = math.Max(peakUnder, under.Progress(x))
		peakCritical = math.Max(peakCritical, critical.Progress(x))
	}
	if peakUnder <= 1 {
		t.Errorf("underdamped spring peak = %v, want overshoot > 1", peakUnder)
	}
	if peakCritical > 1+1e-9 {
		t.Errorf("critically damped spring peak = %v, want <= 1", peakCritical)
	}
}

func TestInterpolate(t *testing.T) {
	from := Frame{
		Background: 0,
		Items:      []ItemFrame{{Center: geom.Pt(0, 0), Alpha: 0}},
	}
	to := Frame{
		Background: 1,
		Items: []ItemFrame{
			{Center: geom.Pt(100, -50), Alpha: 1, Attached: true},
			{Center: geom.Pt(7, 7), Alpha: 1},
		},
	}

	mid := Interpolate(from, to, 0.5)
	if mid.Background != 0.5 {
		t.Errorf("Background = %v, want 0.5", mid.Background)
	}
	if mid.Items[0].Center != geom.Pt(50, -25) || mid.Items[0].Alpha != 0.5 || !mid.Items[0].Attached {
		t.Errorf("Items[0] = %+v", mid.Items[0])
	}
	if mid.Items[1] != to.Items[1] {
		t.Errorf("Items[1] = %+v, want target frame for new item", mid.Items[1])
	}

	over := Interpolate(from, to, 1.2)
	if over.Items[0].Alpha != 1 || over.Background != 1 {
		t.Errorf("alpha not clamped: %+v", over)
	}
	if over.Items[0].Center.X <= 100 {
		t.Errorf("position should overshoot, got %v", over.Items[0].Center)
	}
}

// fakeScene is a single-item scene whose state is mutated directly.
type fakeScene struct {
	frame   Frame
	applied int
}

func (s *fakeScene) Snapshot() Frame {
	items := append([]ItemFrame(nil), s.frame.Items...)
	return Frame{Background: s.frame.Background, Items: items}
}

func (s *fakeScene) Apply(f Frame) {
	s.applied++
	s.frame = Frame{Background: f.Background, Items: append([]ItemFrame(nil), f.Items...)}
}

func newFakeScene() *fakeScene {
	return &fakeScene{frame: Frame{Items: []ItemFrame{{}}}}
}

func linearStage(name string, d time.Duration) Stage {
	return Stage{Name: name, Duration: d, Curve: Linear}
}

func TestImmediate(t *testing.T) {
	s := newFakeScene()
	var order []string
	Immediate{}.Animate(s, ExpandFadeIn, func() {
		order = append(order, "changes")
		s.frame.Background = 1
	}, func() {
		order = append(order, "done")
	})

	if len(order) != 2 || order[0] != "changes" || order[1] != "done" {
		t.Errorf("order = %v", order)
	}
	if s.frame.Background != 1 {
		t.Errorf("Background = %v, want 1", s.frame.Background)
	}
}

func TestTimelineInterpolates(t *testing.T) {
	s := newFakeScene()
	tl := NewTimeline()
	done := false

	tl.Animate(s, linearStage("fade", 100*time.Millisecond), func() {
		s.frame.Background = 1
		s.frame.Items[0].Center = geom.Pt(10, 20)
	}, func() { done = true })

	if s.frame.Background != 0 {
		t.Fatalf("scene not rewound: Background = %v", s.frame.Background)
	}
	if !tl.Busy() || tl.Stage().Name != "fade" {
		t.Fatalf("Busy() = %v, Stage() = %q", tl.Busy(), tl.Stage().Name)
	}

	tl.Advance(25 * time.Millisecond)
	if math.Abs(s.frame.Background-0.25) > 1e-9 {
		t.Errorf("Background at 25%% = %v", s.frame.Background)
	}
	if math.Abs(tl.Progress()-0.25) > 1e-9 {
		t.Errorf("Progress() = %v, want 0.25", tl.Progress())
	}
	if done {
		t.Fatal("done fired early")
	}

	tl.Advance(100 * time.Millisecond)
	if !done {
		t.Fatal("done not fired")
	}
	if s.frame.Background != 1 || s.frame.Items[0].Center != geom.Pt(10, 20) {
		t.Errorf("final frame = %+v", s.frame)
	}
	if tl.Busy() {
		t.Error("timeline still busy")
	}
}

func TestTimelineChainsWithCarryOver(t *testing.T) {
	s := newFakeScene()
	tl := NewTimeline()
	var finished []string

	tl.Animate(s, linearStage("a", 100*time.Millisecond), func() {
		s.frame.Background = 1
	}, func() {
		finished = append(finished, "a")
		tl.Animate(s, linearStage("b", 100*time.Millisecond), func() {
			s.frame.Items[0].Alpha = 1
		}, func() {
			finished = append(finished, "b")
		})
	})

	// 150ms: stage a completes, 50ms carries into stage b.
	tl.Advance(150 * time.Millisecond)
	if len(finished) != 1 || tl.Stage().Name != "b" {
		t.Fatalf("finished = %v, stage = %q", finished, tl.Stage().Name)
	}
	if math.Abs(s.frame.Items[0].Alpha-0.5) > 1e-9 {
		t.Errorf("alpha mid stage b = %v, want 0.5", s.frame.Items[0].Alpha)
	}

	tl.Finish()
	if len(finished) != 2 || finished[1] != "b" {
		t.Errorf("finished = %v", finished)
	}
}

func TestTimelineQueuesOverlappingRequests(t *testing.T) {
	s := newFakeScene()
	tl := NewTimeline()
	var finished []string

	tl.Animate(s, linearStage("first", 50*time.Millisecond), func() { s.frame.Background = 1 }, func() {
		finished = append(finished, "first")
	})
	tl.Animate(s, linearStage("second", 50*time.Millisecond), func() { s.frame.Background = 0.25 }, func() {
		finished = append(finished, "second")
	})

	if s.frame.Background != 0 {
		t.Fatalf("queued changes applied early: %v", s.frame.Background)
	}
	tl.Advance(50 * time.Millisecond)
	if len(finished) != 1 || tl.Stage().Name != "second" {
		t.Fatalf("finished = %v, stage = %q", finished, tl.Stage().Name)
	}
	tl.Finish()
	if s.frame.Background != 0.25 || len(finished) != 2 {
		t.Errorf("Background = %v, finished = %v", s.frame.Background, finished)
	}
}

func TestTimelineZeroDuration(t *testing.T) {
	s := newFakeScene()
	tl := NewTimeline()
	done := false
	tl.Animate(s, Stage{Name: "instant"}, func() { s.frame.Background = 1 }, func() { done = true })
	if !done || s.frame.Background != 1 || tl.Busy() {
		t.Errorf("done = %v, Background = %v, Busy = %v", done, s.frame.Background, tl.Busy())
	}
}

func TestStageDurations(t *testing.T) {
	tests := []struct {
		stage Stage
		want  time.Duration
	}{
		{ExpandFadeIn, 150 * time.Millisecond},
		{ExpandSpring, 350 * time.Millisecond},
		{CollapseItems, 150 * time.Millisecond},
		{CollapseFadeOut, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		if tt.stage.Duration != tt.want {
			t.Errorf("%s duration = %v, want %v", tt.stage.Name, tt.stage.Duration, tt.want)
		}
	}
	spring, ok := ExpandSpring.Curve.(Spring)
	if !ok || spring.Damping != 0.65 || spring.Velocity != 1.0 {
		t.Errorf("ExpandSpring curve = %#v", ExpandSpring.Curve)
	}
}
