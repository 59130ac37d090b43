package drawer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/drawer/pkg/animation"
)

const (
	// MobileThreshold is the distance kept between the fully open drawer and
	// the far viewport edge so the handle stays reachable under mobile browser chrome.
	MobileThreshold = 80.0
	// ResistanceFactor scales drag input past the most open position.
	ResistanceFactor = 0.1
	// VelocityThreshold is the release speed in px/ms above which a flick
	// moves exactly one snap point in its direction.
	VelocityThreshold = 0.4
	// DefaultCloseThreshold is the fraction of the viewport a drawer without
	// snap points must travel toward closed before a release closes it.
	DefaultCloseThreshold = 0.25
	// DefaultTransitionDuration is the duration of snap, open and close transitions.
	DefaultTransitionDuration = 650 * time.Millisecond
	// NoSnapPoint is the active index of a drawer configured without snap points.
	NoSnapPoint = -1
)

var (
	// ErrInvalidSnapPoint is returned for snap points that are neither a
	// fraction in [0, 1] nor a non-negative pixel length.
	ErrInvalidSnapPoint = errors.New("invalid snap point")
	// ErrUnknownDirection is returned for direction names other than top or bottom.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrMissingContent is returned when a drawer has no content target.
	ErrMissingContent = errors.New("drawer content target is required")
)

// Direction is the viewport edge the drawer is anchored to.
type Direction int

const (
	// DirectionBottom slides the drawer up from the bottom edge.
	DirectionBottom Direction = iota
	// DirectionTop slides the drawer down from the top edge.
	DirectionTop
)

func (d Direction) String() string {
	switch d {
	case DirectionTop:
		return "top"
	default:
		return "bottom"
	}
}

// ParseDirection parses "top" or "bottom".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bottom":
		return DirectionBottom, nil
	case "top":
		return DirectionTop, nil
	default:
		return DirectionBottom, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// SnapPoint is a resting position, either a fraction of the viewport extent
// or an absolute pixel length.
type SnapPoint struct {
	Value  float64
	Pixels bool
}

// Fraction returns a snap point at f of the viewport extent.
func Fraction(f float64) SnapPoint {
	return SnapPoint{Value: f}
}

// Px returns a snap point at an absolute pixel length.
func Px(px float64) SnapPoint {
	return SnapPoint{Value: px, Pixels: true}
}

// Extent resolves the snap point to a pixel length for the viewport.
func (p SnapPoint) Extent(viewport float64) float64 {
	if p.Pixels {
		return p.Value
	}
	return p.Value * viewport
}

// String formats the snap point the way ParseSnapPoint reads it.
func (p SnapPoint) String() string {
	v := strconv.FormatFloat(p.Value, 'f', -1, 64)
	if p.Pixels {
		return v + "px"
	}
	return v
}

// Validate reports whether the snap point is usable.
func (p SnapPoint) Validate() error {
	if p.Value != p.Value {
		return fmt.Errorf("%w: NaN", ErrInvalidSnapPoint)
	}
	if p.Pixels {
		if p.Value < 0 {
			return fmt.Errorf("%w: negative length %s", ErrInvalidSnapPoint, p)
		}
		return nil
	}
	if p.Value < 0 || p.Value > 1 {
		return fmt.Errorf("%w: fraction %s outside [0, 1]", ErrInvalidSnapPoint, p)
	}
	return nil
}

// ParseSnapPoint parses "0.5" (fraction) or "300px" (absolute length).
func ParseSnapPoint(s string) (SnapPoint, error) {
	s = strings.TrimSpace(s)
	text, pixels := strings.CutSuffix(s, "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return SnapPoint{}, fmt.Errorf("%w: %q", ErrInvalidSnapPoint, s)
	}
	p := SnapPoint{Value: v, Pixels: pixels}
	if err := p.Validate(); err != nil {
		return SnapPoint{}, err
	}
	return p, nil
}

// ParseSnapPoints parses a comma-separated list such as "0.25, 300px, 1".
func ParseSnapPoints(s string) ([]SnapPoint, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	points := make([]SnapPoint, 0, len(parts))
	for _, part := range parts {
		p, err := ParseSnapPoint(part)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Config is the typed drawer configuration.
type Config struct {
	// Direction is the anchored edge.
	Direction Direction
	// SnapPoints are ordered from least to most open. Empty means the drawer
	// is either fully open or closed.
	SnapPoints []SnapPoint
	// FadeFromIndex is the snap index where the overlay starts fading in.
	FadeFromIndex int
	// SnapToSequentialPoint disables velocity-based skipping on release.
	SnapToSequentialPoint bool
	// Open is the initial open state applied on Connect.
	Open bool
	// InitialSnapIndex is the snap index the drawer opens at.
	InitialSnapIndex int
	// DisableDismiss stops overlay clicks and Escape from closing the drawer.
	DisableDismiss bool
	// CloseThreshold is the viewport fraction a drawer without snap points
	// must be dragged toward closed before release closes it.
	CloseThreshold float64
	// TransitionDuration is the snap, open and close transition length.
	TransitionDuration time.Duration
	// Curve is the transition timing function.
	Curve animation.Bezier
}

// DefaultConfig returns a bottom drawer without snap points.
func DefaultConfig() Config {
	return Config{
		Direction:          DirectionBottom,
		CloseThreshold:     DefaultCloseThreshold,
		TransitionDuration: DefaultTransitionDuration,
		Curve:              animation.DrawerEase,
	}
}

// normalizeConfig fills zero values with defaults and pulls indices into range.
func normalizeConfig(c Config) Config {
	defaults := DefaultConfig()
	if c.CloseThreshold <= 0 || c.CloseThreshold > 1 {
		c.CloseThreshold = defaults.CloseThreshold
	}
	if c.TransitionDuration <= 0 {
		c.TransitionDuration = defaults.TransitionDuration
	}
	if c.Curve == (animation.Bezier{}) {
		c.Curve = defaults.Curve
	}
	c.SnapPoints = append([]SnapPoint(nil), c.SnapPoints...)
	c.InitialSnapIndex = ValidateInitialSnap(c.InitialSnapIndex, c.SnapPoints)
	c.FadeFromIndex = clampIndex(c.FadeFromIndex, len(c.SnapPoints))
	return c
}

// ValidateInitialSnap returns index when it addresses a snap point and 0
// otherwise. Drawers without snap points always get NoSnapPoint.
func ValidateInitialSnap(index int, points []SnapPoint) int {
	if len(points) == 0 {
		return NoSnapPoint
	}
	if index < 0 || index >= len(points) {
		return 0
	}
	return index
}

func clampIndex(index, n int) int {
	if n == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
