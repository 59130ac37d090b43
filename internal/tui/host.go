// Package tui hosts a drawer in a terminal. Terminal rows form the viewport,
// mouse drags become pointer events on the drawer content, and transitions
// written by the drawer are played back with an AnimationController.
package tui

import (
	"math"

	"github.com/go-drift/drawer/internal/render"
	"github.com/go-drift/drawer/pkg/animation"
	"github.com/go-drift/drawer/pkg/dom"
	"github.com/go-drift/drawer/pkg/drawer"
)

// CellHeight is the number of CSS pixels one terminal row stands for. It
// keeps the drawer's 80px top clamp meaningful on a short terminal.
const CellHeight = 16.0

// CellWidth is the number of CSS pixels one terminal column stands for.
const CellWidth = 8.0

// Host owns the in-memory page a drawer is bound to.
type Host struct {
	win       *dom.Window
	container *dom.Node
	content   *dom.Node
	overlay   *dom.Node
	drawer    *drawer.Drawer
	follow    *follower

	cols, rows int
	pointer    int
	nextID     int
}

// NewHost builds a page with a drawer sized to cols x rows terminal cells
// and connects it.
func NewHost(cfg drawer.Config, cols, rows int, opts ...drawer.Option) (*Host, error) {
	cols, rows = max(cols, 1), max(rows, 1)
	h := &Host{
		win:  dom.NewWindow(float64(cols)*CellWidth, float64(rows)*CellHeight),
		cols: cols,
		rows: rows,
	}
	h.overlay = dom.NewElement("div", drawer.TargetAttribute, "overlay")
	h.content = dom.NewElement("div", drawer.TargetAttribute, "content",
		"tabindex", "0")
	h.container = dom.NewElement("div", "data-controller", "drawer").Append(h.overlay, h.content)
	h.win.Document.Body.AppendChild(h.container)

	d, err := drawer.New(h.win, drawer.FindTargets(h.container), cfg, opts...)
	if err != nil {
		return nil, err
	}
	h.drawer = d
	h.follow = newFollower(h.content)
	d.Connect()
	h.follow.sync()
	return h, nil
}

// Drawer returns the hosted drawer.
func (h *Host) Drawer() *drawer.Drawer { return h.drawer }

// Size returns the viewport in cells.
func (h *Host) Size() (cols, rows int) { return h.cols, h.rows }

// Resize changes the viewport. The drawer re-anchors without a transition.
func (h *Host) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols == h.cols && rows == h.rows {
		return
	}
	h.cols, h.rows = cols, rows
	h.pointer = 0
	h.win.Resize(float64(cols)*CellWidth, float64(rows)*CellHeight)
	h.follow.sync()
}

// RowY returns the CSS pixel position of the middle of row.
func RowY(row int) float64 {
	return (float64(row) + 0.5) * CellHeight
}

func (h *Host) pointerEvent(typ string, id, col, row int) *dom.Event {
	return &dom.Event{
		Type:      typ,
		PointerID: id,
		ClientX:   (float64(col) + 0.5) * CellWidth,
		ClientY:   RowY(row),
		TimeStamp: animation.Now(),
	}
}

// Press starts a pointer on the drawer content at a cell.
func (h *Host) Press(col, row int) {
	if h.pointer != 0 {
		return
	}
	h.nextID++
	h.pointer = h.nextID
	h.content.DispatchEvent(h.pointerEvent(dom.EventPointerDown, h.pointer, col, row))
	h.follow.sync()
}

// Move moves the pressed pointer. Moves without a press are ignored.
func (h *Host) Move(col, row int) {
	if h.pointer == 0 {
		return
	}
	h.content.DispatchEvent(h.pointerEvent(dom.EventPointerMove, h.pointer, col, row))
	h.follow.sync()
}

// Lift releases the pressed pointer.
func (h *Host) Lift(col, row int) {
	if h.pointer == 0 {
		return
	}
	id := h.pointer
	h.pointer = 0
	h.content.DispatchEvent(h.pointerEvent(dom.EventPointerUp, id, col, row))
	h.follow.sync()
}

// CancelPointer cancels the pressed pointer, e.g. when the terminal loses
// the mouse.
func (h *Host) CancelPointer() {
	if h.pointer == 0 {
		return
	}
	id := h.pointer
	h.pointer = 0
	h.content.DispatchEvent(&dom.Event{Type: dom.EventPointerCancel, PointerID: id, TimeStamp: animation.Now()})
	h.follow.sync()
}

// Pressed reports whether a pointer is down.
func (h *Host) Pressed() bool { return h.pointer != 0 }

// ClickOverlay clicks the backdrop behind the drawer.
func (h *Host) ClickOverlay() {
	h.overlay.DispatchEvent(&dom.Event{Type: dom.EventClick, TimeStamp: animation.Now()})
	h.follow.sync()
}

// KeyDown dispatches a keydown to the document.
func (h *Host) KeyDown(key string) {
	h.win.Document.DispatchEvent(&dom.Event{Type: dom.EventKeyDown, Key: key, TimeStamp: animation.Now()})
	h.follow.sync()
}

// Do runs fn against the drawer and picks up whatever it rendered.
func (h *Host) Do(fn func(d *drawer.Drawer)) {
	fn(h.drawer)
	h.follow.sync()
}

// Tick advances one frame: due drawer tasks, then transition playback.
func (h *Host) Tick() {
	h.drawer.Step()
	h.follow.sync()
	animation.StepTickers()
}

// Busy reports whether the host needs more frames.
func (h *Host) Busy() bool {
	return h.follow.animating() || h.drawer.Pending() > 0
}

// ShownOffset is the content offset currently on screen, in CSS pixels.
func (h *Host) ShownOffset() float64 { return h.follow.shown }

// Scene describes the frame on screen.
func (h *Host) Scene() render.Scene {
	s := render.SceneOf(h.drawer, float64(h.cols)*CellWidth)
	s.Offset = h.follow.shown
	g := h.drawer.Geometry()
	y := s.Offset
	if g.Direction == drawer.DirectionTop {
		y = s.Offset + g.Viewport
	}
	if h.drawer.IsOpen() {
		s.Opacity = drawer.OverlayOpacity(g, h.drawer.Config().FadeFromIndex, y)
	} else {
		s.Opacity = 0
	}
	return s
}

// SurfaceRows returns the rows [top, bottom) covered by the drawer surface.
func (h *Host) SurfaceRows() (top, bottom int) {
	t, b := h.Scene().SurfaceBounds()
	return int(math.Round(t / CellHeight)), int(math.Round(b / CellHeight))
}

// Close disconnects the drawer.
func (h *Host) Close() {
	h.pointer = 0
	h.follow.stop()
	h.drawer.Disconnect()
}
