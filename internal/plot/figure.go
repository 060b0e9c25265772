package plot

import (
	"github.com/rileyhilliard/sinewave/internal/config"
)

// Plot tools.
const (
	ToolBoxZoom   = "box_zoom"
	ToolCrosshair = "crosshair"
	ToolPan       = "pan"
	ToolReset     = "reset"
	ToolSave      = "save"
	ToolWheelZoom = "wheel_zoom"
)

// Pixel to cell scale: a 900x400 figure becomes 90x16 character cells.
const (
	pixelsPerCol = 10
	pixelsPerRow = 25

	minCols = 10
	minRows = 4
)

// Figure holds the display parameters handed to the renderer.
type Figure struct {
	Title     string
	Width     int // pixels
	Height    int // pixels
	Tools     []string
	XLabel    string
	YLabel    string
	LineAlpha float64
	LineWidth int
}

// DefaultFigure mirrors config.DefaultConfig's plot section.
func DefaultFigure() Figure {
	cfg := config.DefaultConfig()
	return FigureFromConfig(cfg.Title, cfg.Plot)
}

// FigureFromConfig builds a figure from the plot config section.
func FigureFromConfig(title string, p config.PlotConfig) Figure {
	return Figure{
		Title:     title,
		Width:     p.Width,
		Height:    p.Height,
		Tools:     append([]string(nil), p.Tools...),
		XLabel:    p.XLabel,
		YLabel:    p.YLabel,
		LineAlpha: p.LineAlpha,
		LineWidth: p.LineWidth,
	}
}

// Has reports whether a tool is enabled.
func (f Figure) Has(tool string) bool {
	for _, t := range f.Tools {
		if t == tool {
			return true
		}
	}
	return false
}

// Cells converts the pixel size to character cells for the plot area.
func (f Figure) Cells() (cols, rows int) {
	cols = f.Width / pixelsPerCol
	rows = f.Height / pixelsPerRow
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	return cols, rows
}
