// Package ui renders the portfolio page with Bubble Tea.
//
// Building blocks:
//   - View: a screen region with its own Init/Update/View (Elm-style)
//   - AppModel: the root model; owns the page viewport, gallery and modal
//   - FocusManager: tab order across sections, trapped inside the modal
//   - KeybindRegistry/KeyHandler: single keys and SPC-prefixed sequences
//
// The typewriter and modal state machines live in their own packages; this
// package interprets their effects (ticks, scroll lock, Esc binding, focus).
package ui
