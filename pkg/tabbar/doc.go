// Package tabbar models the adaptive host around an action overlay: a
// bottom tab bar with a centered accessory button in compact environments
// and a leading rail with a trailing floating button in regular ones.
//
// The [Controller] keeps the logical tab selection stable across size
// class changes, inserts a placeholder slot under the compact accessory
// button when needed, and feeds the overlay a fresh anchor on every
// [Controller.Configure] pass.
package tabbar
