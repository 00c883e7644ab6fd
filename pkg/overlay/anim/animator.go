package anim

import "time"

// Animator runs a stage against a scene. changes mutates the scene to the
// stage's end state; done, if non-nil, is called once the stage finishes.
type Animator interface {
	Animate(scene Scene, stage Stage, changes func(), done func())
}

// =============================================================================
// Immediate
// =============================================================================

// Immediate applies every stage instantly.
type Immediate struct{}

// Animate implements Animator.
func (Immediate) Animate(_ Scene, _ Stage, changes func(), done func()) {
	if changes != nil {
		changes()
	}
	if done != nil {
		done()
	}
}

// =============================================================================
// Timeline
// =============================================================================

type tween struct {
	scene    Scene
	stage    Stage
	from, to Frame
	elapsed  time.Duration
	done     func()
}

type request struct {
	scene   Scene
	stage   Stage
	changes func()
	done    func()
}

// Timeline interpolates stages over time as the host advances it. Stages
// requested while another is running start after it, in request order.
// The zero value is ready to use.
type Timeline struct {
	active  *tween
	pending []request
}

// NewTimeline returns an idle timeline.
func NewTimeline() *Timeline { return &Timeline{} }

// Animate implements Animator.
func (t *Timeline) Animate(scene Scene, stage Stage, changes func(), done func()) {
	req := request{scene: scene, stage: stage, changes: changes, done: done}
	if t.active != nil {
		t.pending = append(t.pending, req)
		return
	}
	t.start(req)
}

func (t *Timeline) start(req request) {
	from := req.scene.Snapshot()
	if req.changes != nil {
		req.changes()
	}
	if req.stage.Duration <= 0 {
		if req.done != nil {
			req.done()
		}
		t.next()
		return
	}
	to := req.scene.Snapshot()
	req.scene.Apply(from)
	t.active = &tween{scene: req.scene, stage: req.stage, from: from, to: to, done: req.done}
}

func (t *Timeline) next() {
	if t.active != nil || len(t.pending) == 0 {
		return
	}
	req := t.pending[0]
	t.pending = t.pending[1:]
	t.start(req)
}

// Advance moves the timeline forward by dt, applying interpolated frames.
// Time left over when a stage finishes carries into the stage its
// completion starts.
func (t *Timeline) Advance(dt time.Duration) {
	for dt > 0 && t.active != nil {
		tw := t.active
		remaining := tw.stage.Duration - tw.elapsed
		if dt < remaining {
			tw.elapsed += dt
			tw.scene.Apply(Interpolate(tw.from, tw.to, tw.stage.progress(tw.elapsed)))
			return
		}

		dt -= remaining
		tw.scene.Apply(tw.to)
		t.active = nil
		if tw.done != nil {
			tw.done()
		}
		t.next()
	}
}

// Finish runs every active and pending stage to completion.
func (t *Timeline) Finish() {
	for t.active != nil {
		t.Advance(t.active.stage.Duration - t.active.elapsed)
	}
}

// Busy reports whether a stage is running.
func (t *Timeline) Busy() bool { return t.active != nil }

// Stage returns the running stage, or the zero Stage when idle.
func (t *Timeline) Stage() Stage {
	if t.active == nil {
		return Stage{}
	}
	return t.active.stage
}

// Progress returns the running stage's normalized elapsed time in [0,1].
func (t *Timeline) Progress() float64 {
	if t.active == nil || t.active.stage.Duration <= 0 {
		return 0
	}
	return float64(t.active.elapsed) / float64(t.active.stage.Duration)
}
