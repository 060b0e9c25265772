// Package ui holds the shared terminal styling for sinewave's output.
//
// Colors are ANSI codes so they follow the terminal theme:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings, the plot crosshair
//	ColorInfo      (cyan)   - Informational messages, readouts
//	ColorPrimary   (white)  - Titles
//	ColorSecondary (blue)   - The plotted line and slider fill
//	ColorMuted     (gray)   - Axes, borders, help text
//
// Use DisableColors() or ApplyColorMode("never") for monochrome output
// (the --no-color flag and output.color: never).
//
// Tables for CLI output are built on the Bubbles table component:
//
//	out := ui.RenderSimpleTable(columns, rows)
package ui
