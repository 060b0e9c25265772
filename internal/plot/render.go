package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sinewave/internal/wave"
)

// maxLineWidth caps how many parallel dot rows a thick line uses.
const maxLineWidth = 4

// RenderLine plots ds onto a cols x rows braille canvas, mapping xr and yr to
// the canvas edges. Consecutive samples are joined by line segments.
func RenderLine(ds wave.Dataset, xr, yr Range, cols, rows, lineWidth int) *Canvas {
	c := NewCanvas(cols, rows)
	w, h := c.Size()
	n := ds.Len()
	if n == 0 || w == 0 || h == 0 || len(ds.Y) != n {
		return c
	}
	if lineWidth < 1 {
		lineWidth = 1
	}
	if lineWidth > maxLineWidth {
		lineWidth = maxLineWidth
	}

	toDot := func(i int) (float64, float64) {
		px := xr.Fraction(ds.X[i]) * float64(w-1)
		py := (1 - yr.Fraction(ds.Y[i])) * float64(h-1)
		return px, py
	}

	for off := 0; off < lineWidth; off++ {
		dy := float64(off)
		if n == 1 {
			px, py := toDot(0)
			c.Line(px, py+dy, px, py+dy)
			continue
		}
		px0, py0 := toDot(0)
		for i := 1; i < n; i++ {
			px1, py1 := toDot(i)
			c.Line(px0, py0+dy, px1, py1+dy)
			px0, py0 = px1, py1
		}
	}
	return c
}

// frameStyles are the styles applied when composing a frame. The zero value
// renders plain text.
type frameStyles struct {
	line      lipgloss.Style
	axis      lipgloss.Style
	label     lipgloss.Style
	crosshair lipgloss.Style
}

func plainStyles() frameStyles {
	s := lipgloss.NewStyle()
	return frameStyles{line: s, axis: s, label: s, crosshair: s}
}

func colorStyles(fig Figure) frameStyles {
	return frameStyles{
		line:      lineStyle(fig.LineAlpha),
		axis:      axisStyle,
		label:     labelStyle,
		crosshair: crosshairStyle,
	}
}

// frame describes one plot render.
type frame struct {
	ds     wave.Dataset
	x      Range
	fig    Figure
	cols   int
	rows   int
	cursor *float64 // crosshair x in data units, nil when hidden
}

// yRange returns the padded data range for the frame's dataset.
func (f frame) yRange() Range {
	b := f.ds.Bounds()
	if f.ds.Empty() {
		return YRange(-1, 1)
	}
	return YRange(b.MinY, b.MaxY)
}

// yTicks labels the top, middle and bottom canvas rows.
func (f frame) yTicks(yr Range) map[int]string {
	mid := f.rows / 2
	return map[int]string{
		0:          formatTick(yr.Max),
		mid:        formatTick(yr.Lerp(1 - float64(mid)/float64(max(f.rows-1, 1)))),
		f.rows - 1: formatTick(yr.Min),
	}
}

// gutter is the width of the y tick column.
func (f frame) gutter() int {
	g := 0
	for _, t := range f.yTicks(f.yRange()) {
		g = max(g, lipgloss.Width(t))
	}
	return g
}

// render composes the canvas with y ticks, the x axis, tick labels and axis
// labels.
func (f frame) render(st frameStyles) string {
	yr := f.yRange()
	canvas := RenderLine(f.ds, f.x, yr, f.cols, f.rows, f.fig.LineWidth)

	cursorCol := -1
	if f.cursor != nil && f.x.Contains(*f.cursor) && f.cols > 0 {
		w, _ := canvas.Size()
		dot := int(math.Round(f.x.Fraction(*f.cursor) * float64(w-1)))
		cursorCol = dot / 2
	}

	yTicks := f.yTicks(yr)
	gutter := f.gutter()

	var lines []string
	if f.fig.YLabel != "" {
		lines = append(lines, st.label.Render(f.fig.YLabel))
	}

	for i, row := range canvas.Rows() {
		tick, ok := yTicks[i]
		prefix := strings.Repeat(" ", gutter) + " " + st.axis.Render("│")
		if ok {
			prefix = fmt.Sprintf("%*s ", gutter, tick) + st.axis.Render("┤")
		}
		lines = append(lines, prefix+f.renderRow(row, cursorCol, st))
	}

	pad := strings.Repeat(" ", gutter+1)
	lines = append(lines, pad+st.axis.Render("└"+strings.Repeat("─", f.cols)))
	lines = append(lines, pad+" "+xTickLine(f.x, f.cols))
	if f.fig.XLabel != "" {
		lines = append(lines, pad+" "+st.label.Render(center(f.fig.XLabel, f.cols)))
	}

	return strings.Join(lines, "\n")
}

// renderRow styles one canvas row, overlaying the crosshair column.
func (f frame) renderRow(row string, cursorCol int, st frameStyles) string {
	if cursorCol < 0 {
		return st.line.Render(row)
	}
	runes := []rune(row)
	if cursorCol >= len(runes) {
		return st.line.Render(row)
	}
	// Dotted vertical marker: left column dots 1 and 3.
	marked := runes[cursorCol] | 1<<brailleDots[0][0] | 1<<brailleDots[2][0]
	return st.line.Render(string(runes[:cursorCol])) +
		st.crosshair.Render(string(marked)) +
		st.line.Render(string(runes[cursorCol+1:]))
}

// readout formats the crosshair position against the nearest sample.
func (f frame) readout() string {
	if f.cursor == nil {
		return ""
	}
	x, y, ok := f.ds.At(*f.cursor)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s = %s  %s = %s", axisName(f.fig.XLabel, "x"), formatTick(x), axisName(f.fig.YLabel, "y"), formatTick(y))
}

// xTickLine places min, mid and max x tick labels across width columns.
func xTickLine(xr Range, width int) string {
	if width <= 0 {
		return ""
	}
	left := formatTick(xr.Min)
	mid := formatTick(xr.Center())
	right := formatTick(xr.Max)

	line := []rune(strings.Repeat(" ", width))
	put := func(s string, at int) {
		r := []rune(s)
		if at < 0 {
			at = 0
		}
		if at+len(r) > width {
			at = width - len(r)
		}
		if at < 0 {
			return
		}
		copy(line[at:], r)
	}
	put(left, 0)
	if width >= len(left)+len(mid)+len(right)+4 {
		put(mid, width/2-len([]rune(mid))/2)
	}
	put(right, width-len([]rune(right)))
	return string(line)
}

func formatTick(v float64) string {
	if math.Abs(v) < 5e-3 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

func center(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func axisName(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
