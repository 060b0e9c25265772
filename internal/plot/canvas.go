package plot

import (
	"math"
	"strings"
)

// Braille character rendering for high-resolution terminal plots.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '\u2800'

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// Canvas is a dot grid backed by braille cells. Dot (0, 0) is the top-left.
type Canvas struct {
	cols, rows int
	cells      [][]rune
}

// NewCanvas creates a canvas of cols x rows character cells, giving
// 2*cols x 4*rows addressable dots.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
		for j := range cells[i] {
			cells[i][j] = brailleBase
		}
	}
	return &Canvas{cols: cols, rows: rows, cells: cells}
}

// Size returns the canvas size in dots.
func (c *Canvas) Size() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// Set turns on the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.cells[y/4][x/2] |= rune(1) << brailleDots[y%4][x%2]
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	return c.cells[y/4][x/2]&(rune(1)<<brailleDots[y%4][x%2]) != 0
}

// Line draws a segment between two dot positions given in float dot
// coordinates. The segment is clipped to the canvas first so far off-screen
// endpoints (after zooming) cost nothing.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	w, h := c.Size()
	if w == 0 || h == 0 {
		return
	}
	var ok bool
	x0, y0, x1, y1, ok = clipSegment(x0, y0, x1, y1, 0, 0, float64(w-1), float64(h-1))
	if !ok {
		return
	}

	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	// Bresenham
	dx := absInt(ix1 - ix0)
	dy := -absInt(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(ix0, iy0)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

// Rows returns the canvas as one string per character row.
func (c *Canvas) Rows() []string {
	lines := make([]string, c.rows)
	for i, row := range c.cells {
		lines[i] = string(row)
	}
	return lines
}

// String renders the canvas with newline-separated rows.
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}

// clipSegment clips a segment to the rectangle using Liang-Barsky.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - minX, maxX - x0, y0 - minY, maxY - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
