package drawer

import (
	"math"
	"time"
)

// VelocityTracker estimates pointer velocity along the drag axis in px/ms
// using exponential smoothing for stable fling detection.
type VelocityTracker struct {
	last     float64
	lastTime time.Time
	velocity float64
	samples  int
}

// Reset starts tracking from position at time t.
func (v *VelocityTracker) Reset(position float64, t time.Time) {
	v.last = position
	v.lastTime = t
	v.velocity = 0
	v.samples = 0
}

// Add records a position sample. Samples that do not advance time are
// folded into the next one.
func (v *VelocityTracker) Add(position float64, t time.Time) {
	dt := float64(t.Sub(v.lastTime)) / float64(time.Millisecond)
	if dt <= 0 {
		return
	}
	inst := (position - v.last) / dt
	if v.samples == 0 {
		v.velocity = inst
	} else {
		v.velocity = v.velocity*0.8 + inst*0.2
	}
	v.samples++
	v.last = position
	v.lastTime = t
}

// Velocity returns the smoothed velocity, positive toward increasing position.
func (v *VelocityTracker) Velocity() float64 {
	return v.velocity
}

// Dampen applies drag resistance. delta is the pointer movement on the
// closedness axis (negative toward open) and room is how far the drawer may
// still open before passing its most open position. Movement past that
// position is scaled by ResistanceFactor. The result never exceeds delta in
// magnitude and keeps its sign.
func Dampen(delta, room float64) float64 {
	room = math.Max(room, 0)
	if delta >= -room {
		return delta
	}
	return -room + (delta+room)*ResistanceFactor
}

// dragSession is the state of one pointer drag.
type dragSession struct {
	pointerID int
	// startPointerY is the pointer's client Y at pointerdown.
	startPointerY float64
	lastPointerY  float64
	// active is the snap index the drag started from.
	active int
	// startY is the drawer Y when the drag began.
	startY float64
	// currentY is the last rendered drawer Y.
	currentY float64
	tracker  VelocityTracker
}

func newDragSession(pointerID, active int, pointerY, startY float64, t time.Time) *dragSession {
	s := &dragSession{
		pointerID:     pointerID,
		active:        active,
		startPointerY: pointerY,
		lastPointerY:  pointerY,
		startY:        startY,
		currentY:      startY,
	}
	s.tracker.Reset(pointerY, t)
	return s
}

// track records a pointer sample and returns the raw Y delta since the drag
// started. ok is false for non-finite input.
func (s *dragSession) track(pointerY float64, t time.Time) (delta float64, ok bool) {
	if math.IsNaN(pointerY) || math.IsInf(pointerY, 0) {
		return 0, false
	}
	s.lastPointerY = pointerY
	s.tracker.Add(pointerY, t)
	return pointerY - s.startPointerY, true
}

// dragY resolves the damped drawer Y for a raw pointer delta.
func dragY(g Geometry, startY, delta float64) float64 {
	sign := g.closingSign()
	room := g.Closedness(startY)
	return startY + Dampen(delta*sign, room)*sign
}
