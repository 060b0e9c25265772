// Package plot renders a document's dataset as a terminal line plot.
//
// # Canvas
//
// Lines are drawn on a braille Canvas: each character cell holds a 2x4 dot
// matrix, so a 90x16 cell plot has 180x64 addressable dots. RenderLine maps
// a dataset onto the canvas and joins consecutive samples with segments.
//
// # Figure
//
// Figure carries the display parameters: size in pixels (scaled to cells by
// Figure.Cells), axis labels, line alpha and width, and the enabled tools:
//
//	box_zoom   - drag with the left mouse button to zoom to a range
//	crosshair  - cursor column with an (x, y) readout
//	pan        - [ and ] shift the x range
//	reset      - r restores the home range
//	save       - s captures the plot as plain text
//	wheel_zoom - mouse wheel and +/- zoom around the cursor
//
// # Interactive model
//
// Model is a Bubble Tea model hosting a *document.Document. It binds to the
// document's source on construction and redraws from whatever dataset was
// last published; slider keys only move the slider, and the document does
// the recompute. Call Close to release the binding.
//
// RenderStatic draws the same layout once, without styling, for output that
// is not a terminal.
package plot
