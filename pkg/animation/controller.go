package animation

import (
	"fmt"
	"slices"
	"time"
)

// AnimationStatus is where an AnimationController is in its run.
type AnimationStatus int

const (
	// AnimationDismissed is at rest at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward is running toward 1.
	AnimationForward
	// AnimationReverse is running toward 0.
	AnimationReverse
	// AnimationCompleted is at rest at 1.
	AnimationCompleted
)

var statusNames = [...]string{"dismissed", "forward", "reverse", "completed"}

func (s AnimationStatus) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("AnimationStatus(%d)", int(s))
}

// callbacks is an ordered list of listeners that can be removed by id.
type callbacks[T any] struct {
	next int
	list []callback[T]
}

type callback[T any] struct {
	id int
	fn func(T)
}

func (c *callbacks[T]) add(fn func(T)) func() {
	id := c.next
	c.next++
	c.list = append(c.list, callback[T]{id: id, fn: fn})
	return func() {
		c.list = slices.DeleteFunc(c.list, func(cb callback[T]) bool { return cb.id == id })
	}
}

func (c *callbacks[T]) emit(v T) {
	for _, cb := range slices.Clone(c.list) {
		cb.fn(v)
	}
}

// AnimationController eases Value between 0 and 1 over Duration. It only
// advances when the host calls StepTickers, so a drawer transition plays
// back frame by frame under whatever clock is installed.
//
// Call Dispose when done.
type AnimationController struct {
	// Value is the current position in [0, 1].
	Value float64
	// Duration is the time for a full 0 to 1 run. Zero or less jumps.
	Duration time.Duration
	// Curve eases linear progress. Nil means linear.
	Curve Curve

	status   AnimationStatus
	from, to float64
	ticker   *Ticker
	values   callbacks[float64]
	statuses callbacks[AnimationStatus]
}

// NewAnimationController returns a dismissed, linear controller.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{Duration: duration, Curve: LinearCurve}
}

// NewTransitionController returns a controller with the duration and timing
// function of a CSS transition.
func NewTransitionController(t Transition) *AnimationController {
	c := NewAnimationController(t.Duration)
	c.Curve = t.Bezier.Curve()
	return c
}

// Forward runs from the current value to 1.
func (c *AnimationController) Forward() { c.run(1, AnimationForward) }

// Reverse runs from the current value to 0.
func (c *AnimationController) Reverse() { c.run(0, AnimationReverse) }

func (c *AnimationController) run(to float64, status AnimationStatus) {
	c.Stop()
	c.from, c.to = c.Value, to
	c.setStatus(status)
	c.ticker = NewTicker(c.frame)
	c.ticker.Start()
}

func (c *AnimationController) frame(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = LerpFloat64(c.from, c.to, eased)
	c.values.emit(c.Value)
	if progress < 1 {
		return
	}
	c.Stop()
	if c.to == 1 {
		c.setStatus(AnimationCompleted)
	} else {
		c.setStatus(AnimationDismissed)
	}
}

// Stop freezes the controller at its current value.
func (c *AnimationController) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
}

// Status returns the current status.
func (c *AnimationController) Status() AnimationStatus { return c.status }

// IsAnimating reports whether a run is in progress.
func (c *AnimationController) IsAnimating() bool { return c.ticker != nil }

// AddListener registers fn to run after every value change and returns a
// function that removes it.
func (c *AnimationController) AddListener(fn func()) func() {
	return c.values.add(func(float64) { fn() })
}

// AddStatusListener registers fn to run on every status change and returns
// a function that removes it.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	return c.statuses.add(fn)
}

func (c *AnimationController) setStatus(s AnimationStatus) {
	if c.status == s {
		return
	}
	c.status = s
	c.statuses.emit(s)
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.values = callbacks[float64]{}
	c.statuses = callbacks[AnimationStatus]{}
}
