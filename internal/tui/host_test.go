package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/drawer/pkg/drawer"
	drifttest "github.com/go-drift/drawer/pkg/testing"
)

// 50 rows of 16px make an 800px viewport; quarter snap points rest at
// 600, 400, 200 and the 80px clamp.
func newHost(t *testing.T, mutate ...func(*drawer.Config)) (*Host, *drifttest.FakeClock) {
	t.Helper()
	clk := drifttest.InstallFakeClock(t)
	cfg := drawer.DefaultConfig()
	cfg.SnapPoints = []drawer.SnapPoint{drawer.Fraction(0.25), drawer.Fraction(0.5), drawer.Fraction(0.75), drawer.Fraction(1)}
	for _, fn := range mutate {
		fn(&cfg)
	}
	h, err := NewHost(cfg, 60, 50)
	require.NoError(t, err)
	t.Cleanup(h.Close)
	return h, clk
}

// settle runs frames until the host is idle.
func settle(t *testing.T, h *Host, clk *drifttest.FakeClock) {
	t.Helper()
	for i := 0; h.Busy(); i++ {
		require.Less(t, i, 200, "host never settled")
		clk.Advance(FrameInterval)
		h.Tick()
	}
}

func TestHostStartsClosed(t *testing.T) {
	h, _ := newHost(t)
	assert.False(t, h.Drawer().IsOpen())
	assert.Equal(t, 800.0, h.ShownOffset())
	top, bottom := h.SurfaceRows()
	assert.Equal(t, top, bottom, "closed drawer has no visible rows")
	assert.False(t, h.Busy())
}

func TestHostFirstOpenJumps(t *testing.T) {
	h, _ := newHost(t)
	h.Do((*drawer.Drawer).Open)
	assert.Equal(t, 600.0, h.ShownOffset())
	assert.False(t, h.Busy())

	top, bottom := h.SurfaceRows()
	assert.Equal(t, 38, top)
	assert.Equal(t, 50, bottom)
}

func TestHostPlaysTransition(t *testing.T) {
	h, clk := newHost(t)
	h.Do((*drawer.Drawer).Open)
	h.Do(func(d *drawer.Drawer) { d.SnapTo(2, true) })
	require.True(t, h.Busy())

	h.Tick()
	assert.Equal(t, 600.0, h.ShownOffset())

	clk.Advance(300 * time.Millisecond)
	h.Tick()
	mid := h.ShownOffset()
	assert.Less(t, mid, 600.0)
	assert.Greater(t, mid, 200.0)

	clk.Advance(400 * time.Millisecond)
	h.Tick()
	assert.Equal(t, 200.0, h.ShownOffset())
	assert.False(t, h.Busy())
}

func TestHostReopenSlidesIn(t *testing.T) {
	h, clk := newHost(t)
	h.Do((*drawer.Drawer).Open)
	h.Do((*drawer.Drawer).CloseNow)
	assert.Equal(t, 800.0, h.ShownOffset())

	h.Do((*drawer.Drawer).Open)
	assert.Equal(t, 800.0, h.ShownOffset(), "re-open starts off-screen")
	require.True(t, h.Busy())
	settle(t, h, clk)
	assert.Equal(t, 600.0, h.ShownOffset())
}

func TestHostSlowDragSnapsToNearest(t *testing.T) {
	h, clk := newHost(t)
	h.Do((*drawer.Drawer).Open)
	h.Do(func(d *drawer.Drawer) { d.SnapTo(1, false) })

	h.Press(10, 30)
	require.True(t, h.Drawer().IsDragging())
	for row := 31; row <= 40; row++ {
		clk.Advance(200 * time.Millisecond)
		h.Move(10, row)
	}
	assert.Equal(t, 560.0, h.ShownOffset(), "drag follows the pointer without a transition")
	h.Lift(10, 40)

	assert.False(t, h.Pressed())
	assert.Equal(t, 0, h.Drawer().ActiveSnapPointIndex())
	settle(t, h, clk)
	assert.Equal(t, 600.0, h.ShownOffset())
}

func TestHostDragPastFirstPointCloses(t *testing.T) {
	h, clk := newHost(t)
	h.Do((*drawer.Drawer).Open)

	h.Press(10, 40)
	for row := 41; row <= 48; row++ {
		clk.Advance(200 * time.Millisecond)
		h.Move(10, row)
	}
	h.Lift(10, 48)
	assert.True(t, h.Drawer().IsClosing())

	settle(t, h, clk)
	assert.False(t, h.Drawer().IsOpen())
	assert.Equal(t, 800.0, h.ShownOffset())
}

func TestHostCancelPointer(t *testing.T) {
	h, clk := newHost(t)
	h.Do((*drawer.Drawer).Open)
	h.Do(func(d *drawer.Drawer) { d.SnapTo(1, false) })
	h.Press(10, 30)
	clk.Advance(100 * time.Millisecond)
	h.Move(10, 31)
	h.CancelPointer()
	assert.False(t, h.Drawer().IsDragging())
	assert.Equal(t, 1, h.Drawer().ActiveSnapPointIndex())
	assert.True(t, h.Drawer().IsOpen())
}

func TestHostDismissal(t *testing.T) {
	h, clk := newHost(t)
	h.Do((*drawer.Drawer).Open)
	h.KeyDown("Escape")
	assert.True(t, h.Drawer().IsClosing())
	settle(t, h, clk)
	assert.False(t, h.Drawer().IsOpen())

	h.Do((*drawer.Drawer).Open)
	settle(t, h, clk)
	h.ClickOverlay()
	assert.True(t, h.Drawer().IsClosing())
}

func TestHostDismissalDisabled(t *testing.T) {
	h, _ := newHost(t, func(c *drawer.Config) { c.DisableDismiss = true })
	h.Do((*drawer.Drawer).Open)
	h.KeyDown("Escape")
	h.ClickOverlay()
	assert.False(t, h.Drawer().IsClosing())
}

func TestHostResizeReanchors(t *testing.T) {
	h, _ := newHost(t)
	h.Do((*drawer.Drawer).Open)
	h.Do(func(d *drawer.Drawer) { d.SnapTo(1, false) })
	assert.Equal(t, 400.0, h.ShownOffset())

	h.Resize(60, 40)
	assert.Equal(t, 320.0, h.ShownOffset())
	assert.False(t, h.Busy())
}

func TestHostSceneOpacity(t *testing.T) {
	h, _ := newHost(t)
	assert.Equal(t, 0.0, h.Scene().Opacity)
	h.Do((*drawer.Drawer).Open)
	h.Do(func(d *drawer.Drawer) { d.SnapTo(1, false) })
	assert.Equal(t, 1.0, h.Scene().Opacity)
}

func TestHostTopDrawer(t *testing.T) {
	h, _ := newHost(t, func(c *drawer.Config) { c.Direction = drawer.DirectionTop })
	assert.Equal(t, -800.0, h.ShownOffset())
	h.Do((*drawer.Drawer).Open)
	assert.Equal(t, -600.0, h.ShownOffset())
	top, bottom := h.SurfaceRows()
	assert.Equal(t, 0, top)
	assert.Equal(t, 13, bottom)
}
