// Package draw is the retained rendering surface the widget tree writes to.
//
// Widgets never paint directly. They add primitives (quads and texts) to a
// shared Batch under an ordered Group, keep the returned handles, and
// mutate or remove them when their geometry or state changes. A backend
// (see package tcellwin) walks Batch.Items in paint order and renders them.
package draw
