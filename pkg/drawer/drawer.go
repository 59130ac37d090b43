package drawer

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-drift/drawer/pkg/animation"
	"github.com/go-drift/drawer/pkg/dom"
	"github.com/go-drift/drawer/pkg/errors"
	"github.com/go-drift/drawer/pkg/schedule"
)

// TargetAttribute marks the overlay and content elements inside a container.
const TargetAttribute = "data-drawer-target"

// Attributes written by the drawer's render step.
const (
	AttrState     = "data-state"
	AttrSnapIndex = "data-snap-index"
	AttrDragging  = "data-dragging"
	AttrHidden    = "aria-hidden"
)

// Data-state values.
const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// Targets are the elements a drawer drives. Overlay is optional.
type Targets struct {
	Container *dom.Node
	Overlay   *dom.Node
	Content   *dom.Node
}

// FindTargets locates the overlay and content inside container by their
// data-drawer-target attribute.
func FindTargets(container *dom.Node) Targets {
	return Targets{
		Container: container,
		Overlay:   container.FindByAttribute(TargetAttribute, "overlay"),
		Content:   container.FindByAttribute(TargetAttribute, "content"),
	}
}

// Option configures a Drawer.
type Option func(*Drawer)

// WithObserver registers an observer for lifecycle notifications.
func WithObserver(o Observer) Option {
	return func(d *Drawer) {
		if o != nil {
			d.observer = o
		}
	}
}

type registration struct {
	target *dom.EventTarget
	token  dom.ListenerToken
}

// Drawer is an edge-anchored panel the user drags between snap points.
// All methods must be called from the host's event loop. Timed work (the
// entry frame, the close delay) runs from Step.
type Drawer struct {
	cfg      Config
	win      *dom.Window
	targets  Targets
	surface  surface
	sched    schedule.Scheduler
	observer Observer

	listeners []registration
	connected bool

	open      bool
	hasOpened bool
	active    int
	currentY  float64
	drag      *dragSession

	entryFrame schedule.Token
	closeTimer schedule.Token
}

// New creates a drawer over the given targets. The drawer is inert until
// Connect.
func New(win *dom.Window, targets Targets, cfg Config, opts ...Option) (*Drawer, error) {
	if win == nil {
		return nil, fmt.Errorf("drawer: window is required")
	}
	if targets.Content == nil {
		return nil, ErrMissingContent
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	d := &Drawer{
		win:      win,
		targets:  targets,
		observer: NopObserver{},
	}
	d.surface = surface{
		content: targets.Content,
		overlay: targets.Overlay,
		motion:  d.transition,
	}
	d.reset(cfg)
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func validateConfig(cfg Config) error {
	if cfg.Direction != DirectionBottom && cfg.Direction != DirectionTop {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, int(cfg.Direction))
	}
	for i, p := range cfg.SnapPoints {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("snap point %d: %w", i, err)
		}
	}
	return nil
}

func (d *Drawer) reset(cfg Config) {
	d.cfg = normalizeConfig(cfg)
	d.open = false
	d.hasOpened = false
	d.drag = nil
	d.active = d.cfg.InitialSnapIndex
	d.currentY = d.Geometry().ClosedY()
}

func (d *Drawer) transition(property string) animation.Transition {
	return animation.Transition{
		Property: property,
		Duration: d.cfg.TransitionDuration,
		Bezier:   d.cfg.Curve,
	}
}

// Connect registers the drawer's listeners and renders its initial state.
// Calling Connect on a connected drawer does nothing.
func (d *Drawer) Connect() {
	if d.connected {
		return
	}
	d.connected = true

	content := &d.targets.Content.EventTarget
	// Pointer events are captured by the content for the whole drag.
	d.listen(content, dom.EventPointerDown, d.handlePointerDown)
	d.listen(content, dom.EventPointerMove, d.handlePointerMove)
	d.listen(content, dom.EventPointerUp, d.handlePointerUp)
	d.listen(content, dom.EventPointerCancel, d.handlePointerCancel)
	d.listen(&d.win.EventTarget, dom.EventResize, d.handleResize)
	if d.win.Document != nil {
		d.listen(&d.win.Document.EventTarget, dom.EventKeyDown, d.handleKeyDown)
	}
	if d.targets.Overlay != nil {
		d.listen(&d.targets.Overlay.EventTarget, dom.EventClick, d.handleOverlayClick)
	} else {
		errors.Report(&errors.DrawerError{
			Op:   "drawer.Connect",
			Kind: errors.KindTarget,
			Err:  fmt.Errorf("no overlay target; fade disabled"),
		})
	}

	switch {
	case d.cfg.Open && !d.hasOpened:
		d.Open()
	case d.open:
		d.SnapTo(d.active, false)
	default:
		d.writeClosed(false)
		d.renderState()
	}
}

// Disconnect removes every listener and cancels pending timers. A close in
// progress completes immediately. Calling Disconnect twice does nothing.
func (d *Drawer) Disconnect() {
	if !d.connected {
		return
	}
	for _, r := range d.listeners {
		r.target.RemoveEventListener(r.token)
	}
	d.listeners = nil
	closing := d.closeTimer != 0
	d.sched.CancelAll()
	d.entryFrame, d.closeTimer = 0, 0
	d.drag = nil
	d.connected = false
	if closing {
		d.finishClose()
	}
}

// Reconfigure replaces the configuration and re-initialises the drawer as
// if it had just been created. A connected drawer is reconnected.
func (d *Drawer) Reconfigure(cfg Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	connected := d.connected
	d.Disconnect()
	d.reset(cfg)
	if connected {
		d.Connect()
	}
	return nil
}

func (d *Drawer) listen(target *dom.EventTarget, typ string, fn dom.Listener) {
	d.listeners = append(d.listeners, registration{
		target: target,
		token:  target.AddEventListener(typ, fn),
	})
}

// Step runs due timers and frame callbacks. Hosts call it once per frame.
func (d *Drawer) Step() int {
	return d.sched.Step()
}

// Pending reports how many timers or frame callbacks are waiting.
func (d *Drawer) Pending() int {
	return d.sched.Pending()
}

// Geometry returns the geometry for the current viewport.
func (d *Drawer) Geometry() Geometry {
	return Geometry{
		Points:    d.cfg.SnapPoints,
		Viewport:  d.win.InnerHeight,
		Direction: d.cfg.Direction,
	}
}

// SnapPointY returns the resting Y of index for the current viewport.
func (d *Drawer) SnapPointY(index int) float64 {
	return d.Geometry().SnapY(index)
}

// Config returns the normalised configuration.
func (d *Drawer) Config() Config {
	return d.cfg
}

// Targets returns the drawer's DOM targets.
func (d *Drawer) Targets() Targets {
	return d.targets
}

// ActiveSnapPointIndex returns the current snap index, or NoSnapPoint.
func (d *Drawer) ActiveSnapPointIndex() int {
	return d.active
}

// IsOpen reports the open flag. It stays true while a close animates.
func (d *Drawer) IsOpen() bool {
	return d.open
}

// IsClosing reports whether a close transition is running.
func (d *Drawer) IsClosing() bool {
	return d.closeTimer != 0
}

// IsDragging reports whether a drag session is active.
func (d *Drawer) IsDragging() bool {
	return d.drag != nil
}

// IsConnected reports whether listeners are registered.
func (d *Drawer) IsConnected() bool {
	return d.connected
}

// CurrentY returns the last Y written to the surface.
func (d *Drawer) CurrentY() float64 {
	return d.currentY
}

// Open shows the drawer at its active snap point. The first open renders
// at rest immediately; later opens slide in from off-screen. Opening during
// a close transition reverses it.
func (d *Drawer) Open() {
	if d.open && d.closeTimer == 0 {
		return
	}
	wasOpen := d.open
	d.cancelTimers()
	d.open = true

	switch {
	case wasOpen:
		d.SnapTo(d.active, true)
	case d.hasOpened:
		d.writeClosed(false)
		d.renderState()
		d.entryFrame = d.sched.RequestFrame(func() {
			d.entryFrame = 0
			d.SnapTo(d.active, true)
		})
	default:
		d.SnapTo(d.active, false)
	}
	d.hasOpened = true

	if n := initialFocus(d.targets.Content, d.win.IsMobile()); n != nil {
		n.Focus()
	}
	if !wasOpen {
		d.observer.OnOpenChange(true)
	}
}

// Close slides the drawer off-screen and clears the open flag once the
// transition has finished.
func (d *Drawer) Close() {
	if !d.open || d.closeTimer != 0 {
		return
	}
	d.cancelTimers()
	d.drag = nil
	d.writeClosed(true)
	d.closeTimer = d.sched.After(d.cfg.TransitionDuration, func() {
		d.closeTimer = 0
		d.finishClose()
	})
}

// CloseNow hides the drawer without a transition.
func (d *Drawer) CloseNow() {
	if !d.open {
		return
	}
	d.cancelTimers()
	d.drag = nil
	d.writeClosed(false)
	d.finishClose()
}

// Toggle opens a closed or closing drawer and closes an open one.
func (d *Drawer) Toggle() {
	if d.open && d.closeTimer == 0 {
		d.Close()
		return
	}
	d.Open()
}

func (d *Drawer) finishClose() {
	d.open = false
	d.active = d.cfg.InitialSnapIndex
	d.renderState()
	d.observer.OnOpenChange(false)
}

func (d *Drawer) cancelTimers() {
	if d.entryFrame != 0 {
		d.sched.Cancel(d.entryFrame)
		d.entryFrame = 0
	}
	if d.closeTimer != 0 {
		d.sched.Cancel(d.closeTimer)
		d.closeTimer = 0
	}
}

func (d *Drawer) writeClosed(animated bool) {
	g := d.Geometry()
	d.currentY = g.ClosedY()
	d.surface.writeTransform(g, d.currentY, animated)
	d.surface.writeOpacity(0, animated)
}

// SnapTo moves the drawer to snap point index. While the drawer is closed
// it only selects the index the next Open uses. Out of range indices are
// clamped and reported. A drag in progress is abandoned.
func (d *Drawer) SnapTo(index int, animated bool) {
	d.drag = nil
	g := d.Geometry()
	if g.HasSnapPoints() && (index < 0 || index > g.LastIndex()) {
		errors.Reportf("drawer.SnapTo", errors.KindConfig,
			"snap index %d out of range [0, %d]", index, g.LastIndex())
		index = clampIndex(index, len(g.Points))
	}
	if !g.HasSnapPoints() {
		index = NoSnapPoint
	}
	d.active = index
	if !d.open {
		d.renderState()
		return
	}

	y := g.SnapY(index)
	d.currentY = y
	d.surface.writeTransform(g, y, animated)
	d.surface.writeOpacity(OverlayOpacity(g, d.cfg.FadeFromIndex, y), animated)
	d.renderState()
	d.observer.OnSnap(index, y)
}

// HandleResize re-anchors the drawer to its active snap point for the new
// viewport, without a transition. A drag in progress is abandoned.
func (d *Drawer) HandleResize() {
	d.drag = nil
	if d.entryFrame != 0 {
		d.sched.Cancel(d.entryFrame)
		d.entryFrame = 0
	}
	if !d.open || d.closeTimer != 0 {
		d.writeClosed(false)
		d.renderState()
		return
	}
	d.SnapTo(d.active, false)
}

func eventTime(e *dom.Event) time.Time {
	if e.TimeStamp.IsZero() {
		return animation.Now()
	}
	return e.TimeStamp
}

func (d *Drawer) handlePointerDown(e *dom.Event) {
	defer errors.Recover("drawer.handlePointerDown")
	if !d.open || d.closeTimer != 0 || d.drag != nil {
		return
	}
	if math.IsNaN(e.ClientY) || math.IsInf(e.ClientY, 0) {
		return
	}
	if d.entryFrame != 0 {
		d.sched.Cancel(d.entryFrame)
		d.entryFrame = 0
	}

	g := d.Geometry()
	startY := g.SnapY(d.active)
	d.drag = newDragSession(e.PointerID, d.active, e.ClientY, startY, eventTime(e))
	d.currentY = startY
	d.surface.writeTransform(g, startY, false)
	d.surface.writeOpacity(OverlayOpacity(g, d.cfg.FadeFromIndex, startY), false)
	d.renderState()
	d.observer.OnDragStart(startY)
}

func (d *Drawer) handlePointerMove(e *dom.Event) {
	defer errors.Recover("drawer.handlePointerMove")
	s := d.drag
	if s == nil || e.PointerID != s.pointerID {
		return
	}
	if delta, ok := s.track(e.ClientY, eventTime(e)); ok {
		d.updateTransform(delta)
	}
}

func (d *Drawer) handlePointerUp(e *dom.Event) {
	defer errors.Recover("drawer.handlePointerUp")
	s := d.drag
	if s == nil || e.PointerID != s.pointerID {
		return
	}
	if e.ClientY != s.lastPointerY {
		if delta, ok := s.track(e.ClientY, eventTime(e)); ok {
			d.updateTransform(delta)
		}
	}
	velocity := s.tracker.Velocity() * d.Geometry().closingSign()
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		velocity = 0
	}
	d.release(velocity, false)
}

func (d *Drawer) handlePointerCancel(e *dom.Event) {
	defer errors.Recover("drawer.handlePointerCancel")
	s := d.drag
	if s == nil || e.PointerID != s.pointerID {
		return
	}
	d.release(0, true)
}

// updateTransform renders the drag at the damped position for a raw
// pointer delta. The drawer follows the pointer without snapping.
func (d *Drawer) updateTransform(delta float64) {
	g := d.Geometry()
	y := dragY(g, d.drag.startY, delta)
	d.drag.currentY = y
	d.currentY = y
	d.surface.writeTransform(g, y, false)
	d.surface.writeOpacity(OverlayOpacity(g, d.cfg.FadeFromIndex, y), false)
}

// release resolves the end of a drag and animates to the result.
func (d *Drawer) release(velocity float64, cancelled bool) {
	s := d.drag
	d.drag = nil
	g := d.Geometry()
	target, closing := ResolveRelease(g, s.active, s.currentY, velocity,
		d.cfg.SnapToSequentialPoint, d.cfg.CloseThreshold)
	r := Release{
		FinalY:    s.currentY,
		Velocity:  velocity,
		From:      s.active,
		Target:    target,
		Close:     closing,
		Cancelled: cancelled,
	}
	if closing {
		d.Close()
	} else {
		d.SnapTo(target, true)
	}
	d.observer.OnDragEnd(r)
}

func (d *Drawer) handleKeyDown(e *dom.Event) {
	defer errors.Recover("drawer.handleKeyDown")
	if e.Key == "Escape" && !d.cfg.DisableDismiss {
		d.Close()
	}
}

func (d *Drawer) handleOverlayClick(e *dom.Event) {
	defer errors.Recover("drawer.handleOverlayClick")
	if !d.cfg.DisableDismiss {
		d.Close()
	}
}

func (d *Drawer) handleResize(*dom.Event) {
	defer errors.Recover("drawer.handleResize")
	d.HandleResize()
}

// renderState projects the drawer's state onto its DOM attributes. It is
// the only writer of those attributes.
func (d *Drawer) renderState() {
	state := StateClosed
	if d.open {
		state = StateOpen
	}
	for _, n := range []*dom.Node{d.targets.Container, d.targets.Overlay, d.targets.Content} {
		if n != nil {
			n.SetAttribute(AttrState, state)
		}
	}
	content := d.targets.Content
	content.SetAttribute(AttrHidden, strconv.FormatBool(!d.open))
	if d.active >= 0 {
		content.SetAttribute(AttrSnapIndex, strconv.Itoa(d.active))
	} else {
		content.RemoveAttribute(AttrSnapIndex)
	}
	if d.drag != nil {
		content.SetAttribute(AttrDragging, "true")
	} else {
		content.RemoveAttribute(AttrDragging)
	}
}
