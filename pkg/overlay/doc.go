// Package overlay implements the action overlay state machine that sits
// above an adaptive tab bar.
//
// An [Overlay] owns an ordered list of registered [Item] values and moves
// between four phases:
//
//	Collapsed -> Expanding -> Expanded -> Collapsing -> Collapsed
//
// Expanding fades the dimming background in, resets every item onto the
// anchor and then springs the visible items out to the positions computed
// by package layout. Collapsing reverses the sequence and detaches every
// item. Calls that do not match the current phase are ignored, so an
// in-flight transition always runs to completion.
//
// Transitions are fire-and-forget. Results are observed through a
// [Listener] and through [observability.OverlayHooks], never via return
// values.
//
// # Animation
//
// Stages run through an [anim.Animator]. The default [anim.Immediate]
// applies every stage synchronously; pass an [anim.Timeline] with
// [WithAnimator] and advance it from a render loop to see the stages play
// out over time. Non-animated calls always use [anim.Immediate] and fire
// the same callbacks.
//
// An Overlay is not safe for concurrent use. Drive it from a single
// goroutine, the way a UI main loop would.
package overlay
