// Package text measures text runs and edits single-line text buffers.
//
// Widgets size themselves from a Measurer, so the same tree can be laid out
// in pixels (FontMeasurer, BasicMeasurer) or in terminal cells
// (CellMeasurer).
package text
