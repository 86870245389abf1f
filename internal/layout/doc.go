// Package layout holds the geometry primitives shared by the widget tree:
// rectangles, points, sizes and the anchor arithmetic used to place a child
// box relative to a parent box.
//
// Coordinates are y-up: (X, Y) is the bottom-left corner of a rectangle and
// Top() is Y+Height. Types are re-exported through the root gui package for
// public consumption.
package layout
