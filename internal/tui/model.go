package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/go-drift/drawer/internal/render"
	"github.com/go-drift/drawer/pkg/drawer"
)

// FrameInterval is the spacing between animation frames.
const FrameInterval = 16 * time.Millisecond

// surfaceZone marks the drawer surface for mouse hit-testing.
const surfaceZone = "drawer-surface"

type frameMsg time.Time

// Model is the Bubble Tea model of the demo.
type Model struct {
	host  *Host
	zones *zone.Manager
	keys  KeyMap
	help  help.Model
	theme render.Theme
	title string

	width, height int
	ticking       bool
}

// Option configures a Model.
type Option func(*Model)

// WithTitle sets the text shown on the page behind the drawer.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// WithTheme overrides the colors.
func WithTheme(t render.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// NewModel creates a model around host. zones may be nil, in which case the
// surface is hit-tested from its row bounds.
func NewModel(host *Host, zones *zone.Manager, opts ...Option) *Model {
	m := &Model{
		host:  host,
		zones: zones,
		keys:  Keys,
		help:  help.New(),
		theme: render.DefaultTheme,
		title: "drawer",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Host returns the hosted page.
func (m *Model) Host() *Host { return m.host }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.frame()
}

func (m *Model) frame() tea.Cmd {
	if m.ticking || !m.host.Busy() {
		return nil
	}
	m.ticking = true
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
	case frameMsg:
		m.ticking = false
		m.host.Tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.host.Close()
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, m.frame()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	d := m.host.Drawer()
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case key.Matches(msg, m.keys.Toggle):
		m.host.Do((*drawer.Drawer).Toggle)
	case key.Matches(msg, m.keys.Open):
		m.host.Do((*drawer.Drawer).Open)
	case key.Matches(msg, m.keys.Close):
		m.host.Do((*drawer.Drawer).Close)
	case key.Matches(msg, m.keys.SnapUp):
		m.step(d, 1)
	case key.Matches(msg, m.keys.SnapDown):
		m.step(d, -1)
	case key.Matches(msg, m.keys.Dismiss):
		m.host.KeyDown("Escape")
	}
}

func (m *Model) step(d *drawer.Drawer, by int) {
	g := d.Geometry()
	if !g.HasSnapPoints() || !d.IsOpen() || d.IsClosing() {
		return
	}
	next := d.ActiveSnapPointIndex() + by
	if next < 0 || next > g.LastIndex() {
		return
	}
	m.host.Do(func(d *drawer.Drawer) { d.SnapTo(next, true) })
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		_, rows := m.host.Size()
		switch {
		case m.onSurface(msg):
			m.host.Press(msg.X, msg.Y)
		case msg.Y < rows && m.host.Drawer().IsOpen():
			m.host.ClickOverlay()
		}
	case tea.MouseActionMotion:
		m.host.Move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.host.Lift(msg.X, msg.Y)
	}
}

func (m *Model) onSurface(msg tea.MouseMsg) bool {
	if !m.host.Drawer().IsOpen() {
		return false
	}
	if m.zones != nil {
		if z := m.zones.Get(surfaceZone); !z.IsZero() {
			return z.InBounds(msg)
		}
	}
	top, bottom := m.host.SurfaceRows()
	return msg.Y >= top && msg.Y < bottom
}

// layout gives the drawer every row the footer does not use.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	footer := lipgloss.Height(m.footer(render.Scene{}))
	m.host.Resize(m.width, max(m.height-footer, 1))
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := m.host.Scene()
	cols, rows := m.host.Size()
	st := newStyles(m.theme, s.Opacity, cols)
	top, bottom := m.host.SurfaceRows()
	top = min(max(top, 0), rows)
	bottom = min(max(bottom, top), rows)

	page := make([]string, 0, rows)
	for r := range rows {
		page = append(page, m.pageLine(r))
	}

	var parts []string
	if top > 0 {
		parts = append(parts, st.page.Render(strings.Join(page[:top], "\n")))
	}
	if bottom > top {
		parts = append(parts, m.mark(m.surface(st, bottom-top)))
	}
	if bottom < rows {
		parts = append(parts, st.page.Render(strings.Join(page[bottom:], "\n")))
	}
	parts = append(parts, m.footer(s))
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

func (m *Model) mark(block string) string {
	if m.zones == nil {
		return block
	}
	return m.zones.Mark(surfaceZone, block)
}

func (m *Model) pageLine(row int) string {
	switch row {
	case 1:
		return "  " + m.title
	case 2:
		return "  drag the sheet with the mouse, or use the keys below"
	}
	return ""
}

// surface renders height rows of drawer content, handle on the edge that
// faces the page.
func (m *Model) surface(st styles, height int) string {
	d := m.host.Drawer()
	lines := make([]string, height)
	info := m.describe(d)
	for i := range lines {
		lines[i] = st.surface.Render("")
	}
	handleRow, infoRow := 0, 1
	if d.Geometry().Direction == drawer.DirectionTop {
		handleRow, infoRow = height-1, height-2
	}
	if infoRow >= 0 && infoRow < height {
		lines[infoRow] = st.surface.Render(info)
	}
	if handleRow >= 0 && handleRow < height {
		lines[handleRow] = st.handle.Render("──────")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) describe(d *drawer.Drawer) string {
	g := d.Geometry()
	state := "open"
	switch {
	case d.IsDragging():
		state = "dragging"
	case d.IsClosing():
		state = "closing"
	}
	if !g.HasSnapPoints() {
		return state
	}
	i := d.ActiveSnapPointIndex()
	return fmt.Sprintf("%s · snap %d/%d (%s)", state, i+1, len(g.Points), g.Points[i])
}

func (m *Model) footer(s render.Scene) string {
	cols, _ := m.host.Size()
	st := newStyles(m.theme, 0, max(cols, m.width))
	d := m.host.Drawer()
	var status string
	if d.IsOpen() {
		status = fmt.Sprintf("%s  y=%spx  overlay=%s",
			st.label.Render("index "+strconv.Itoa(d.ActiveSnapPointIndex())),
			strconv.FormatFloat(d.CurrentY(), 'f', 0, 64),
			strconv.FormatFloat(s.Opacity, 'f', 2, 64))
	} else {
		status = st.label.Render("closed")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		st.status.Render(status),
		m.help.View(m.keys),
	)
}
