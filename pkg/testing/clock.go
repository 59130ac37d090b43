package testing

import (
	"sync"
	stdtesting "testing"
	"time"

	"github.com/go-drift/drawer/pkg/animation"
)

// Epoch is the time every new FakeClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an animation.Clock that moves only when told to. It is safe
// for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock reading Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// InstallFakeClock installs a new FakeClock as the animation clock for the
// rest of the test.
func InstallFakeClock(tb stdtesting.TB) *FakeClock {
	tb.Helper()
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	tb.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

// Now implements animation.Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set jumps the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Frame advances the clock by d and steps every running ticker once, like
// one host frame.
func (c *FakeClock) Frame(d time.Duration) {
	c.Advance(d)
	animation.StepTickers()
}
