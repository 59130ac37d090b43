package testing

import (
	"time"

	"github.com/go-drift/drawer/pkg/dom"
)

// DefaultFrameInterval is the spacing between simulated move events.
const DefaultFrameInterval = 16 * time.Millisecond

type pointerState struct {
	x, y float64
}

// PointerSimulator dispatches pointer sequences to a DOM node with
// timestamps taken from a FakeClock.
type PointerSimulator struct {
	Clock  *FakeClock
	Target *dom.Node
	// AfterEvent runs after every dispatched event, e.g. to step a scheduler.
	AfterEvent func()

	pointers map[int]*pointerState
	nextID   int
}

// NewPointerSimulator creates a simulator targeting node.
func NewPointerSimulator(clock *FakeClock, target *dom.Node) *PointerSimulator {
	return &PointerSimulator{
		Clock:    clock,
		Target:   target,
		pointers: make(map[int]*pointerState),
	}
}

func (p *PointerSimulator) allocID() int {
	p.nextID++
	return p.nextID
}

// Down presses a new pointer at (x, y) and returns its id.
func (p *PointerSimulator) Down(x, y float64) int {
	id := p.allocID()
	p.pointers[id] = &pointerState{x: x, y: y}
	p.dispatch(dom.EventPointerDown, id, x, y)
	return id
}

// Move moves pointer id to (x, y).
func (p *PointerSimulator) Move(id int, x, y float64) {
	if st := p.pointers[id]; st != nil {
		st.x, st.y = x, y
	}
	p.dispatch(dom.EventPointerMove, id, x, y)
}

// Up releases pointer id at (x, y).
func (p *PointerSimulator) Up(id int, x, y float64) {
	delete(p.pointers, id)
	p.dispatch(dom.EventPointerUp, id, x, y)
}

// Cancel cancels pointer id at its last position.
func (p *PointerSimulator) Cancel(id int) {
	var x, y float64
	if st := p.pointers[id]; st != nil {
		x, y = st.x, st.y
	}
	delete(p.pointers, id)
	p.dispatch(dom.EventPointerCancel, id, x, y)
}

// Drag presses at fromY, moves to toY in steps evenly spaced over d, and
// releases at toY. It returns the pointer id.
func (p *PointerSimulator) Drag(fromY, toY float64, steps int, d time.Duration) int {
	id := p.MoveTo(fromY, toY, steps, d)
	p.Up(id, 0, toY)
	return id
}

// DragAndCancel is Drag with a pointer cancel instead of a release.
func (p *PointerSimulator) DragAndCancel(fromY, toY float64, steps int, d time.Duration) int {
	id := p.MoveTo(fromY, toY, steps, d)
	p.Cancel(id)
	return id
}

// MoveTo presses at fromY and moves to toY without releasing.
func (p *PointerSimulator) MoveTo(fromY, toY float64, steps int, d time.Duration) int {
	if steps < 1 {
		steps = 1
	}
	id := p.Down(0, fromY)
	interval := d / time.Duration(steps)
	for i := 1; i <= steps; i++ {
		p.Clock.Advance(interval)
		frac := float64(i) / float64(steps)
		p.Move(id, 0, fromY+(toY-fromY)*frac)
	}
	return id
}

// Fling is a fast drag: the whole distance is covered in a few frames.
func (p *PointerSimulator) Fling(fromY, toY float64) int {
	return p.Drag(fromY, toY, 4, 4*DefaultFrameInterval)
}

func (p *PointerSimulator) dispatch(typ string, id int, x, y float64) {
	p.Target.DispatchEvent(&dom.Event{
		Type:      typ,
		PointerID: id,
		ClientX:   x,
		ClientY:   y,
		TimeStamp: p.Clock.Now(),
	})
	if p.AfterEvent != nil {
		p.AfterEvent()
	}
}
