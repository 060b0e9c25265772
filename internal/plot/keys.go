package plot

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the plot.
type KeyMap struct {
	PhaseDown   key.Binding
	PhaseUp     key.Binding
	PhaseStart  key.Binding
	PhaseEnd    key.Binding
	PanLeft     key.Binding
	PanRight    key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	Crosshair   key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	ResetView   key.Binding
	Save        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the bindings, with tool keys enabled only when the
// figure enables the tool.
func DefaultKeyMap(fig Figure) KeyMap {
	k := KeyMap{
		PhaseDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "phase -"),
		),
		PhaseUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "phase +"),
		),
		PhaseStart: key.NewBinding(
			key.WithKeys("home", "0"),
			key.WithHelp("home/0", "phase min"),
		),
		PhaseEnd: key.NewBinding(
			key.WithKeys("end", "$"),
			key.WithHelp("end/$", "phase max"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "pan right"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Crosshair: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "crosshair"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "cursor left"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "cursor right"),
		),
		ResetView: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset view"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	k.PanLeft.SetEnabled(fig.Has(ToolPan))
	k.PanRight.SetEnabled(fig.Has(ToolPan))
	k.ZoomIn.SetEnabled(fig.Has(ToolWheelZoom))
	k.ZoomOut.SetEnabled(fig.Has(ToolWheelZoom))
	k.Crosshair.SetEnabled(fig.Has(ToolCrosshair))
	k.CursorLeft.SetEnabled(fig.Has(ToolCrosshair))
	k.CursorRight.SetEnabled(fig.Has(ToolCrosshair))
	k.ResetView.SetEnabled(fig.Has(ToolReset))
	k.Save.SetEnabled(fig.Has(ToolSave))
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PhaseDown, k.PhaseUp, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PhaseDown, k.PhaseUp, k.PhaseStart, k.PhaseEnd},
		{k.PanLeft, k.PanRight, k.ZoomIn, k.ZoomOut},
		{k.Crosshair, k.CursorLeft, k.CursorRight},
		{k.ResetView, k.Save, k.Help, k.Quit},
	}
}
