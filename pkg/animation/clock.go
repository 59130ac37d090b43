package animation

import "time"

// Clock is the time source behind tickers, controllers and the drawer's
// scheduled tasks. Tests swap in a fake with SetClock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

var systemClock Clock = ClockFunc(time.Now)

var current = systemClock

// SetClock installs c and returns the clock it replaced. Nil reinstalls
// the system clock.
func SetClock(c Clock) Clock {
	if c == nil {
		c = systemClock
	}
	prev := current
	current = c
	return prev
}

// Now reads the installed clock.
func Now() time.Time { return current.Now() }

// Since is the time elapsed on the installed clock since t.
func Since(t time.Time) time.Duration { return Now().Sub(t) }
