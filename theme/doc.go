// Package theme is the scoped, path-addressable style configuration every
// widget reads at load time.
//
// A theme is a tree of Scopes built from JSON. Looking a key up in a scope
// falls back to the enclosing scope, so shared values such as "font" or
// "gui_color" only need to be declared once near the root. Keys that start
// with "image" are parsed into Templates that generate Drawables on a
// draw.Target.
package theme
