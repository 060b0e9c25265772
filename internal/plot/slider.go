package plot

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/sinewave/internal/control"
)

// sliderTrackWidth is the width of the slider bar in cells.
const sliderTrackWidth = 20

// renderSlider draws a slider as title, value and a track with a handle.
// With styled false the output is plain text.
func renderSlider(s *control.Slider, width int, styled bool) string {
	if width < 3 {
		width = 3
	}
	pos := int(s.Fraction()*float64(width-1) + 0.5)
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}

	filled := strings.Repeat("━", pos)
	empty := strings.Repeat("─", width-1-pos)
	handle := "●"

	title := fmt.Sprintf("%s: %.2f", s.Title(), s.Value())
	bounds := fmt.Sprintf("%.2f%s%.2f", s.Start(), strings.Repeat(" ", max(width-10, 1)), s.End())

	if !styled {
		return strings.Join([]string{title, filled + handle + empty, bounds}, "\n")
	}
	return strings.Join([]string{
		sliderTitleStyle.Render(title),
		sliderFilledStyle.Render(filled+handle) + sliderEmptyStyle.Render(empty),
		sliderEmptyStyle.Render(bounds),
	}, "\n")
}
