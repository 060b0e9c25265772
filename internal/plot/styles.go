package plot

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/sinewave/internal/ui"
)

// lineBase is the line colour before alpha is applied.
const lineBase = "#1F77B4"

// lineBackdrop is what the line is blended against.
const lineBackdrop = "#FFFFFF"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true).
			Padding(0, 1)

	axisStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	labelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	crosshairStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarning)

	readoutStyle = lipgloss.NewStyle().
			Foreground(ui.ColorInfo)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorMuted).
			Padding(0, 1)

	sliderTitleStyle = lipgloss.NewStyle().
				Foreground(ui.ColorPrimary).
				Bold(true)

	sliderFilledStyle = lipgloss.NewStyle().
				Foreground(ui.ColorSecondary)

	sliderEmptyStyle = lipgloss.NewStyle().
				Foreground(ui.ColorMuted)

	footerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSuccess)
)

// lineStyle returns the style for the plotted line at the given alpha.
func lineStyle(alpha float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(blendHex(lineBase, lineBackdrop, alpha)))
}

// blendHex mixes fg over bg with the given opacity. Invalid colours return fg.
func blendHex(fg, bg string, alpha float64) string {
	front, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	back, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	alpha = math.Max(0, math.Min(1, alpha))
	return back.BlendRgb(front, alpha).Hex()
}
