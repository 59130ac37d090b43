// Package animation provides the timing primitives behind drawer transitions.
//
// # Core Components
//
//   - [Clock]: the replaceable time source shared by tickers, controllers and
//     the schedule package.
//   - [Ticker]: a per-frame callback, driven by the host calling [StepTickers].
//   - [AnimationController]: drives a value from 0.0 to 1.0 over a duration with
//     an easing [Curve]; hosts map it to pixels with a [Tween].
//   - [Transition]: a CSS-style transition value. Drawers write it next to the
//     transform so a host knows how to animate toward the new position.
//
// # Basic Usage
//
// A host that renders a drawer surface animates a transform change like this:
//
//	tr, ok, _ := animation.ParseTransition(content.Style("transition"))
//	if ok {
//	    c := animation.NewTransitionController(tr)
//	    tween := animation.Tween{Begin: shownY, End: targetY}
//	    c.AddListener(func() { shownY = tween.Transform(c) })
//	    c.Forward()
//	}
//
// and calls animation.StepTickers once per frame.
package animation

import (
	"slices"
	"sync"
	"time"
)

// frameLoop is the set of running tickers. They are stepped in the order
// they started.
type frameLoop struct {
	mu      sync.Mutex
	running []*Ticker
}

var loop frameLoop

func (l *frameLoop) add(t *Ticker) {
	l.mu.Lock()
	l.running = append(l.running, t)
	l.mu.Unlock()
}

func (l *frameLoop) remove(t *Ticker) {
	l.mu.Lock()
	l.running = slices.DeleteFunc(l.running, func(r *Ticker) bool { return r == t })
	l.mu.Unlock()
}

func (l *frameLoop) snapshot() []*Ticker {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.running)
}

func (l *frameLoop) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.running)
}

// Ticker calls onFrame with the time since Start each time the host steps
// the frame loop.
type Ticker struct {
	onFrame   func(elapsed time.Duration)
	running   bool
	startedAt time.Time
}

// NewTicker returns a stopped ticker.
func NewTicker(onFrame func(elapsed time.Duration)) *Ticker {
	return &Ticker{onFrame: onFrame}
}

// Start begins ticking from the current clock time. It does nothing on a
// running ticker.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.startedAt = Now()
	loop.add(t)
}

// Stop removes the ticker from the frame loop.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	loop.remove(t)
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool { return t.running }

// Elapsed is the time since Start, or 0 for a stopped ticker.
func (t *Ticker) Elapsed() time.Duration {
	if !t.running {
		return 0
	}
	return Since(t.startedAt)
}

// StepTickers runs one frame. Callbacks may start or stop tickers; a ticker
// started during the frame first runs on the next one.
func StepTickers() {
	for _, t := range loop.snapshot() {
		if t.running && t.onFrame != nil {
			t.onFrame(Since(t.startedAt))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	return loop.len() > 0
}
