package plot

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sinewave/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewModel(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)
	defer m.Close()

	assert.Equal(t, 1, doc.Source().Bindings())
	assert.True(t, m.view.IsHome())
	assert.InDelta(t, 0, m.view.X.Min, 1e-12)
	assert.InDelta(t, 4*math.Pi, m.view.X.Max, 1e-12)
	assert.False(t, m.crosshair)
	assert.Empty(t, m.Saved())
	assert.Zero(t, m.Redraws())
}

func TestModel_Close(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)

	m.Close()
	m.Close()

	doc.SetPhase(1)
	assert.Zero(t, m.Redraws())
	assert.Zero(t, doc.Source().Bindings())
}

func TestModel_PhaseKeys(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)
	defer m.Close()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, 0.1, doc.Slider().Value(), 1e-9)
	assert.Equal(t, 1, m.Redraws())

	// The model redraws from the published dataset
	assert.InDelta(t, math.Sin(0.1), m.live.ds.Y[0], 1e-12)
	assert.True(t, m.live.ds.Equal(doc.Dataset()))

	m, _ = update(t, m, keyRunes("l"))
	assert.InDelta(t, 0.2, doc.Slider().Value(), 1e-9)

	m, _ = update(t, m, keyRunes("h"))
	assert.InDelta(t, 0.1, doc.Slider().Value(), 1e-9)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.InDelta(t, 2*math.Pi, doc.Slider().Value(), 1e-9)

	// Already at the end: no change, no publish
	before := m.Redraws()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, before, m.Redraws())

	m, _ = update(t, m, keyRunes("0"))
	assert.Zero(t, doc.Slider().Value())
	assert.InDelta(t, 0, m.live.ds.Y[0], 1e-12)
}

func TestModel_ViewKeys(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)
	defer m.Close()

	home := m.view.X

	m, _ = update(t, m, keyRunes("]"))
	assert.Greater(t, m.view.X.Min, home.Min)

	m, _ = update(t, m, keyRunes("r"))
	assert.True(t, m.view.IsHome())

	m, _ = update(t, m, keyRunes("+"))
	assert.Less(t, m.view.X.Span(), home.Span())
	assert.InDelta(t, home.Center(), m.view.X.Center(), 1e-9)

	m, _ = update(t, m, keyRunes("-"))
	assert.InDelta(t, home.Span(), m.view.X.Span(), 1e-9)

	// Phase changes keep the viewport
	m, _ = update(t, m, keyRunes("["))
	panned := m.view.X
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, panned, m.view.X)
}

func TestModel_ToolsDisabled(t *testing.T) {
	doc := newTestDocument(t)
	fig := DefaultFigure()
	fig.Tools = nil
	m := NewModel(doc, fig, nil)
	defer m.Close()

	m, _ = update(t, m, keyRunes("]"))
	m, _ = update(t, m, keyRunes("+"))
	m, _ = update(t, m, keyRunes("c"))
	m, _ = update(t, m, keyRunes("s"))

	assert.True(t, m.view.IsHome())
	assert.False(t, m.crosshair)
	assert.Empty(t, m.Saved())

	// Phase keys are always available
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.InDelta(t, 0.1, doc.Slider().Value(), 1e-9)
}

func TestModel_Crosshair(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)
	defer m.Close()

	m, _ = update(t, m, keyRunes("c"))
	assert.True(t, m.crosshair)
	assert.InDelta(t, 2*math.Pi, m.cursor, 1e-9)

	start := m.cursor
	m, _ = update(t, m, keyRunes("."))
	assert.Greater(t, m.cursor, start)
	m, _ = update(t, m, keyRunes(","))
	assert.InDelta(t, start, m.cursor, 1e-9)

	assert.Contains(t, m.View(), "x = ")

	m, _ = update(t, m, keyRunes("c"))
	assert.False(t, m.crosshair)
}

func TestModel_Save(t *testing.T) {
	doc := newTestDocument(t)
	log := logger.NewBufferLogger()
	m := NewModel(doc, DefaultFigure(), log)
	defer m.Close()

	m, _ = update(t, m, keyRunes("s"))
	require.Len(t, m.Saved(), 1)
	assert.Contains(t, m.Saved()[0], "12.57")
	assert.Equal(t, "saved frame 1", m.status)
	assert.True(t, log.HasLevel("debug"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Empty(t, m.status)
	m, _ = update(t, m, keyRunes("s"))
	require.Len(t, m.Saved(), 2)
	assert.NotEqual(t, m.Saved()[0], m.Saved()[1])
}

func TestModel_HelpAndQuit(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)
	defer m.Close()

	short := m.View()
	m, _ = update(t, m, keyRunes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "save")
	assert.NotContains(t, short, "save")

	m, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_ResetHintOnlyAwayFromHome(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)
	defer m.Close()

	m, _ = update(t, m, keyRunes("?"))
	assert.False(t, m.keys.ResetView.Enabled())
	assert.NotContains(t, m.View(), "reset view")

	m, _ = update(t, m, keyRunes("]"))
	assert.True(t, m.keys.ResetView.Enabled())
	assert.Contains(t, m.View(), "reset view")

	m, _ = update(t, m, keyRunes("r"))
	assert.True(t, m.view.IsHome())
	assert.False(t, m.keys.ResetView.Enabled())
	assert.NotContains(t, m.View(), "reset view")

	// Without the reset tool the hint never shows.
	fig := DefaultFigure()
	fig.Tools = []string{ToolPan}
	m2 := NewModel(doc, fig, nil)
	defer m2.Close()
	m2, _ = update(t, m2, keyRunes("]"))
	assert.False(t, m2.keys.ResetView.Enabled())
}

func TestModel_View(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)
	defer m.Close()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	out := m.View()

	assert.Contains(t, out, "A Sine Wave")
	assert.Contains(t, out, "Phase: 0.00")
	assert.Contains(t, out, "quit")
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 30)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "Phase: 0.10")
}

func TestModel_Layout(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)
	defer m.Close()

	cols, rows := m.fig.Cells()
	lay := m.layout()
	assert.Equal(t, cols, lay.cols)
	assert.Equal(t, rows, lay.rows)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 14})
	lay = m.layout()
	assert.Less(t, lay.cols, cols)
	assert.Less(t, lay.rows, rows)
	assert.GreaterOrEqual(t, lay.cols, minCols)
	assert.GreaterOrEqual(t, lay.rows, minRows)
}

func TestModel_Mouse(t *testing.T) {
	doc := newTestDocument(t)
	m := NewModel(doc, DefaultFigure(), nil)
	defer m.Close()

	lay := m.layout()
	midX := lay.left + lay.cols/2
	midY := lay.top + lay.rows/2

	t.Run("outside canvas", func(t *testing.T) {
		_, inside := m.dataX(0, 0)
		assert.False(t, inside)
	})

	t.Run("wheel zoom", func(t *testing.T) {
		z, _ := update(t, m, tea.MouseMsg{X: midX, Y: midY, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
		assert.Less(t, z.view.X.Span(), m.view.X.Span())

		z, _ = update(t, z, tea.MouseMsg{X: midX, Y: midY, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
		assert.InDelta(t, m.view.X.Span(), z.view.X.Span(), 1e-9)
	})

	t.Run("box zoom", func(t *testing.T) {
		from, _ := m.dataX(lay.left+5, midY)
		to, _ := m.dataX(lay.left+25, midY)

		z, _ := update(t, m, tea.MouseMsg{X: lay.left + 5, Y: midY, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
		assert.True(t, z.dragging)
		z, _ = update(t, z, tea.MouseMsg{X: lay.left + 25, Y: midY, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
		assert.False(t, z.dragging)
		assert.InDelta(t, from, z.view.X.Min, 1e-9)
		assert.InDelta(t, to, z.view.X.Max, 1e-9)
	})

	t.Run("motion moves crosshair", func(t *testing.T) {
		want, _ := m.dataX(midX, midY)
		z, _ := update(t, m, tea.MouseMsg{X: midX, Y: midY, Action: tea.MouseActionMotion})
		assert.True(t, z.crosshair)
		assert.InDelta(t, want, z.cursor, 1e-9)
	})
}
