// Package pkg holds the tabbar libraries.
//
// # Overview
//
// An adaptive tab bar owns a centered accessory button. Tapping it opens an
// action overlay: the screen dims and the registered actions spring out of
// the button into a linear, grid or arc layout. The libraries split that
// behavior into layers:
//
//  1. [geom] - Points, sizes, rectangles and insets
//  2. [overlay/layout] - Pure placement of items for every layout mode
//  3. [overlay/anim] - Curves, stages and the frame-stepped timeline
//  4. [overlay] - The expand and collapse state machine
//  5. [tabbar] - The tab bar controller that hosts the overlay
//  6. [config] - TOML scenes
//  7. [render] - SVG, JSON, Graphviz, PNG and PDF output
//
// # Data Flow
//
//	scene.toml
//	     ↓
//	[config] (tabs, actions, flags)
//	     ↓
//	[tabbar] (size class, anchor, slots)
//	     ↓
//	[overlay] (phases, item presentation) ← [overlay/anim] timeline
//	     ↓
//	[render] (SVG, JSON, DOT)
//
// Supporting packages are [errors] for coded errors, [observability] for
// transition hooks and [buildinfo] for version stamping.
package pkg
