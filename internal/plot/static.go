package plot

import (
	"strings"

	"github.com/rileyhilliard/sinewave/internal/document"
)

// RenderStatic renders the document once as plain text: title, slider state
// and the plot at the figure's size, narrowed to fit width when width > 0.
func RenderStatic(doc *document.Document, fig Figure, width int) string {
	ds := doc.Dataset()
	b := ds.Bounds()

	cols, rows := fig.Cells()
	f := frame{
		ds:   ds,
		x:    Range{Min: b.MinX, Max: b.MaxX},
		fig:  fig,
		cols: cols,
		rows: rows,
	}
	if width > 0 {
		f.cols = clampCells(cols, width-f.gutter()-2, minCols)
	}

	parts := []string{
		fig.Title,
		"",
		renderSlider(doc.Slider(), sliderTrackWidth, false),
		"",
		f.render(plainStyles()),
	}
	return strings.Join(parts, "\n") + "\n"
}
