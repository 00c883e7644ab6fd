// Package anim sequences the overlay's animation stages.
//
// The overlay describes each stage as a set of property changes (background
// alpha, item centers, item alphas) applied inside a closure, exactly like a
// platform animation block. An [Animator] decides how those changes reach
// the screen:
//
//   - [Immediate] applies them and completes synchronously. Hosts that
//     render only steady states, and most tests, use it.
//   - [Timeline] captures the scene before and after the closure, rewinds
//     it, and interpolates across the stage duration as the host calls
//     Advance from its frame clock. Completion callbacks fire from inside
//     Advance, so a stage that starts another stage chains naturally.
//
// The predefined stages mirror the expand and collapse sequences:
//
//	ExpandFadeIn    0.15s ease-in-out  background 0 -> 1
//	ExpandSpring    0.35s spring       items anchor -> expanded, alpha 0 -> 1
//	CollapseItems   0.15s ease-in-out  items expanded -> anchor, alpha 1 -> 0
//	CollapseFadeOut 0.10s ease-in-out  background 1 -> 0
//
// Everything here is single-threaded: the host's UI loop owns the scene and
// the animator.
package anim
