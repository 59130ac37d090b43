package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/drawer/internal/render"
	drifttest "github.com/go-drift/drawer/pkg/testing"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// newModel sizes the terminal so the drawer gets 50 rows above the
// two-line footer.
func newModel(t *testing.T, zones *zone.Manager, opts ...Option) (*Model, *drifttest.FakeClock) {
	t.Helper()
	h, clk := newHost(t)
	m := NewModel(h, zones, opts...)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 52})
	return m, clk
}

func TestModelLayoutReservesFooter(t *testing.T) {
	m, _ := newModel(t, nil)
	cols, rows := m.Host().Size()
	assert.Equal(t, 60, cols)
	assert.Equal(t, 50, rows)

	m.Update(runes("?"))
	_, rows = m.Host().Size()
	assert.Less(t, rows, 50, "full help takes more rows")
}

func TestModelKeys(t *testing.T) {
	m, _ := newModel(t, nil)
	d := m.Host().Drawer()

	m.Update(runes("o"))
	require.True(t, d.IsOpen())

	_, cmd := m.Update(runes("k"))
	assert.Equal(t, 1, d.ActiveSnapPointIndex())
	assert.NotNil(t, cmd, "a transition needs frames")

	m.Update(runes("j"))
	assert.Equal(t, 0, d.ActiveSnapPointIndex())
	m.Update(runes("j"))
	assert.Equal(t, 0, d.ActiveSnapPointIndex(), "no snap point below the first")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, d.IsClosing())

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, d.IsOpen())
	assert.False(t, d.IsClosing(), "toggle reverses a close")
}

func TestModelFramesAdvanceHost(t *testing.T) {
	m, clk := newModel(t, nil)
	m.Update(runes("o"))
	_, cmd := m.Update(runes("k"))
	require.NotNil(t, cmd)

	for i := 0; i < 100 && m.Host().Busy(); i++ {
		clk.Advance(FrameInterval)
		_, cmd = m.Update(frameMsg(time.Time{}))
	}
	assert.False(t, m.Host().Busy())
	assert.Nil(t, cmd, "an idle host needs no frames")
	assert.Equal(t, 400.0, m.Host().ShownOffset())
}

func TestModelMouseDrag(t *testing.T) {
	m, _ := newModel(t, nil)
	d := m.Host().Drawer()
	m.Update(runes("o"))

	m.Update(mouse(tea.MouseActionPress, 10, 45))
	require.True(t, d.IsDragging())
	m.Update(mouse(tea.MouseActionMotion, 10, 30))
	assert.Less(t, m.Host().ShownOffset(), 600.0)
	m.Update(mouse(tea.MouseActionRelease, 10, 30))
	assert.False(t, d.IsDragging())
	assert.True(t, d.IsOpen())
}

func TestModelClickOutsideDismisses(t *testing.T) {
	m, _ := newModel(t, nil)
	d := m.Host().Drawer()
	m.Update(runes("o"))

	m.Update(mouse(tea.MouseActionPress, 10, 5))
	assert.False(t, d.IsDragging())
	assert.True(t, d.IsClosing())
}

func TestModelZoneHitTest(t *testing.T) {
	zones := zone.New()
	t.Cleanup(zones.Close)
	m, _ := newModel(t, zones)
	m.Update(runes("o"))
	m.View()

	require.Eventually(t, func() bool {
		return !zones.Get(surfaceZone).IsZero()
	}, time.Second, 5*time.Millisecond)

	z := zones.Get(surfaceZone)
	assert.Equal(t, 38, z.StartY)
	assert.Equal(t, 49, z.EndY)

	m.Update(mouse(tea.MouseActionPress, 10, 40))
	assert.True(t, m.Host().Drawer().IsDragging())
}

func TestModelView(t *testing.T) {
	m, _ := newModel(t, nil, WithTitle("drawer demo"), WithTheme(render.DefaultTheme))
	view := m.View()
	assert.Contains(t, view, "drawer demo")
	assert.Contains(t, view, "closed")
	assert.Equal(t, 52, lipgloss.Height(view))

	m.Update(runes("o"))
	view = m.View()
	assert.Contains(t, view, "snap 1/4 (0.25)")
	assert.Contains(t, view, "──────")
	assert.Equal(t, 52, lipgloss.Height(view))
	assert.True(t, strings.Contains(view, "index 0"))
}

func TestModelQuit(t *testing.T) {
	m, _ := newModel(t, nil)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Host().Drawer().IsConnected())
}

func TestModelViewBeforeSize(t *testing.T) {
	h, _ := newHost(t)
	assert.Empty(t, NewModel(h, nil).View())
}
