package plot

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sinewave/internal/document"
	"github.com/rileyhilliard/sinewave/internal/logger"
	"github.com/rileyhilliard/sinewave/internal/source"
	"github.com/rileyhilliard/sinewave/internal/wave"
)

// Pan and zoom steps for keyboard and wheel input.
const (
	panStep    = 0.1
	zoomInStep = 0.8
)

// Screen rows used around the plot block: title and readout above, help below.
const (
	headerRows = 2
	footerRows = 2
)

// live is the renderer's view of the source. It is updated by the source
// binding and shared by every copy of the Model.
type live struct {
	ds      wave.Dataset
	redraws int
	unbind  source.Unbind
}

// Model is the Bubble Tea model for the interactive plot.
type Model struct {
	doc  *document.Document
	fig  Figure
	keys KeyMap
	help help.Model
	view View
	live *live
	log  logger.Logger

	width  int
	height int

	crosshair bool
	cursor    float64
	dragging  bool
	dragFrom  float64

	status   string
	saved    []string
	quitting bool
}

// NewModel creates a plot model for doc and subscribes it to the document's
// source. Call Close when the program exits to release the subscription.
func NewModel(doc *document.Document, fig Figure, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}

	ds := doc.Dataset()
	b := ds.Bounds()
	home := Range{Min: b.MinX, Max: b.MaxX}

	l := &live{ds: ds}
	l.unbind = doc.Source().Bind(func(ds wave.Dataset) {
		l.ds = ds
		l.redraws++
	})

	m := Model{
		doc:    doc,
		fig:    fig,
		keys:   DefaultKeyMap(fig),
		help:   help.New(),
		view:   NewView(home),
		live:   l,
		log:    log,
		cursor: home.Center(),
	}
	m.syncKeys()
	return m
}

// syncKeys offers reset only while the view is panned or zoomed away from
// home.
func (m *Model) syncKeys() {
	m.keys.ResetView.SetEnabled(m.fig.Has(ToolReset) && !m.view.IsHome())
}

// Close unsubscribes the model from the document's source.
func (m Model) Close() {
	if m.live != nil && m.live.unbind != nil {
		m.live.unbind()
	}
}

// Saved returns the frames captured with the save tool, as plain text.
func (m Model) Saved() []string {
	return m.saved
}

// Redraws returns how many datasets the model has been notified of.
func (m Model) Redraws() int {
	return m.live.redraws
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.fig.Title)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slider := m.doc.Slider()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.PhaseDown):
		slider.Decrement()
	case key.Matches(msg, m.keys.PhaseUp):
		slider.Increment()
	case key.Matches(msg, m.keys.PhaseStart):
		slider.Reset()
	case key.Matches(msg, m.keys.PhaseEnd):
		slider.SetValue(slider.End())
	case key.Matches(msg, m.keys.PanLeft):
		m.view = m.view.Pan(-panStep)
	case key.Matches(msg, m.keys.PanRight):
		m.view = m.view.Pan(panStep)
	case key.Matches(msg, m.keys.ZoomIn):
		m.view = m.view.Zoom(zoomInStep, m.anchor())
	case key.Matches(msg, m.keys.ZoomOut):
		m.view = m.view.Zoom(1/zoomInStep, m.anchor())
	case key.Matches(msg, m.keys.Crosshair):
		m.crosshair = !m.crosshair
		if m.crosshair && !m.view.X.Contains(m.cursor) {
			m.cursor = m.view.X.Center()
		}
	case key.Matches(msg, m.keys.CursorLeft):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.CursorRight):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.ResetView):
		m.view = m.view.Reset()
	case key.Matches(msg, m.keys.Save):
		m.saved = append(m.saved, m.Frame(false))
		m.status = fmt.Sprintf("saved frame %d", len(m.saved))
		m.log.Debug("saved frame %d at phase %.2f", len(m.saved), slider.Value())
	}

	m.syncKeys()
	return m, nil
}

// anchor is the zoom centre: the crosshair when shown, else the view centre.
func (m Model) anchor() float64 {
	if m.crosshair && m.view.X.Contains(m.cursor) {
		return m.cursor
	}
	return m.view.X.Center()
}

// moveCursor moves the crosshair by one character column.
func (m *Model) moveCursor(cols int) {
	lay := m.layout()
	if !m.crosshair {
		m.crosshair = true
	}
	step := m.view.X.Span() / float64(max(lay.cols, 1))
	c := m.cursor + float64(cols)*step
	if c < m.view.X.Min {
		c = m.view.X.Min
	}
	if c > m.view.X.Max {
		c = m.view.X.Max
	}
	m.cursor = c
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	x, inside := m.dataX(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp && m.fig.Has(ToolWheelZoom):
		if !inside {
			x = m.view.X.Center()
		}
		m.view = m.view.Zoom(zoomInStep, x)
	case msg.Button == tea.MouseButtonWheelDown && m.fig.Has(ToolWheelZoom):
		if !inside {
			x = m.view.X.Center()
		}
		m.view = m.view.Zoom(1/zoomInStep, x)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.fig.Has(ToolBoxZoom):
		if inside {
			m.dragging = true
			m.dragFrom = x
		}
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		if inside {
			m.view = m.view.ZoomTo(m.dragFrom, x)
		}
	case msg.Action == tea.MouseActionMotion && m.fig.Has(ToolCrosshair):
		if inside {
			m.crosshair = true
			m.cursor = x
		}
	}
	m.syncKeys()
	return m
}

// layout is the screen geometry of the plot canvas.
type layout struct {
	cols, rows int
	left, top  int // screen cell of canvas (0, 0)
}

func (m Model) layout() layout {
	cols, rows := m.fig.Cells()
	panelWidth := lipgloss.Width(m.renderPanel())

	if m.height > 0 {
		extra := 2 // axis, ticks
		if m.fig.XLabel != "" {
			extra++
		}
		if m.fig.YLabel != "" {
			extra++
		}
		avail := m.height - headerRows - footerRows - extra
		rows = clampCells(rows, avail, minRows)
	}

	// The tick gutter depends only on the row count.
	gutter := m.frame(cols, rows).gutter()

	if m.width > 0 {
		// panel, one space, tick gutter, one space, axis glyph
		avail := m.width - panelWidth - 1 - gutter - 2
		cols = clampCells(cols, avail, minCols)
	}

	top := headerRows
	if m.fig.YLabel != "" {
		top++
	}
	return layout{
		cols: cols,
		rows: rows,
		left: panelWidth + 1 + gutter + 2,
		top:  top,
	}
}

func clampCells(want, avail, floor int) int {
	if avail < want {
		want = avail
	}
	if want < floor {
		want = floor
	}
	return want
}

// dataX maps a screen cell to a data x coordinate. inside is false when the
// cell is outside the canvas.
func (m Model) dataX(sx, sy int) (float64, bool) {
	lay := m.layout()
	col := sx - lay.left
	row := sy - lay.top
	if col < 0 || col >= lay.cols || row < 0 || row >= lay.rows {
		return 0, false
	}
	f := (float64(col) + 0.5) / float64(lay.cols)
	return m.view.X.Lerp(f), true
}

func (m Model) frame(cols, rows int) frame {
	f := frame{
		ds:   m.live.ds,
		x:    m.view.X,
		fig:  m.fig,
		cols: cols,
		rows: rows,
	}
	if m.crosshair {
		c := m.cursor
		f.cursor = &c
	}
	return f
}

// Frame renders the plot block at the current layout. styled false gives
// plain text suitable for saving.
func (m Model) Frame(styled bool) string {
	lay := m.layout()
	f := m.frame(lay.cols, lay.rows)
	if styled {
		return f.render(colorStyles(m.fig))
	}
	return f.render(plainStyles())
}

func (m Model) renderPanel() string {
	return panelStyle.Render(renderSlider(m.doc.Slider(), sliderTrackWidth, true))
}

// View renders the plot screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lay := m.layout()
	f := m.frame(lay.cols, lay.rows)

	header := titleStyle.Render(m.fig.Title)
	readout := readoutStyle.Render(f.readout())

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPanel(),
		" ",
		f.render(colorStyles(m.fig)),
	)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}

	return strings.Join([]string{
		header,
		readout,
		body,
		"",
		footerStyle.Render(footer),
	}, "\n")
}
