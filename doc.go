// Package gui provides a retained-mode widget toolkit: a tree of widgets
// that size and place themselves, a theme that styles them, and a Manager
// that routes window input to them.
//
// Users import this single package for the widget tree, layout types,
// events and dialogs. Rendering goes through package draw, styling through
// package theme, and a terminal backend lives in package tcellwin.
//
// Every node follows the same protocol. ComputeSize measures bottom-up,
// Layout places children top-down, and ResetSize ties the two together:
// a node whose size changed asks its parent to re-measure, and a node whose
// size did not change simply lays itself out again.
package gui
