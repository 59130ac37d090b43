package animation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// None is the CSS value that disables transitions.
const None = "none"

// Transition is a single-property CSS transition such as
// "transform 0.65s cubic-bezier(0.32, 0.72, 0, 1)".
type Transition struct {
	Property string
	Duration time.Duration
	Bezier   Bezier
}

// String encodes the transition as a CSS value.
func (t Transition) String() string {
	secs := strconv.FormatFloat(t.Duration.Seconds(), 'f', -1, 64)
	return fmt.Sprintf("%s %ss %s", t.Property, secs, t.Bezier)
}

// ParseTransition decodes a value produced by Transition.String.
// It reports ok=false for "none" or an empty value.
func ParseTransition(value string) (t Transition, ok bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" || value == None {
		return Transition{}, false, nil
	}

	prop, rest, found := strings.Cut(value, " ")
	if !found {
		return Transition{}, false, fmt.Errorf("transition %q: missing duration", value)
	}
	durText, rest, _ := strings.Cut(strings.TrimSpace(rest), " ")
	dur, err := parseSeconds(durText)
	if err != nil {
		return Transition{}, false, fmt.Errorf("transition %q: %w", value, err)
	}

	bezier := Ease
	if rest = strings.TrimSpace(rest); rest != "" {
		bezier, err = ParseBezier(rest)
		if err != nil {
			return Transition{}, false, fmt.Errorf("transition %q: %w", value, err)
		}
	}
	return Transition{Property: prop, Duration: dur, Bezier: bezier}, true, nil
}

// ParseBezier decodes "cubic-bezier(x1, y1, x2, y2)" or one of the CSS
// easing keywords.
func ParseBezier(value string) (Bezier, error) {
	switch value {
	case "ease":
		return Ease, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	case "linear":
		return Bezier{0, 0, 1, 1}, nil
	}
	inner, ok := strings.CutPrefix(value, "cubic-bezier(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return Bezier{}, fmt.Errorf("unsupported timing function %q", value)
	}
	parts := strings.Split(strings.TrimSuffix(inner, ")"), ",")
	if len(parts) != 4 {
		return Bezier{}, fmt.Errorf("cubic-bezier needs 4 values, got %d", len(parts))
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bezier{}, fmt.Errorf("cubic-bezier value %q: %w", p, err)
		}
		vals[i] = v
	}
	return Bezier{vals[0], vals[1], vals[2], vals[3]}, nil
}

func parseSeconds(text string) (time.Duration, error) {
	switch {
	case strings.HasSuffix(text, "ms"):
		ms, err := strconv.ParseFloat(strings.TrimSuffix(text, "ms"), 64)
		if err != nil {
			return 0, err
		}
		return time.Duration(math.Round(ms * float64(time.Millisecond))), nil
	case strings.HasSuffix(text, "s"):
		s, err := strconv.ParseFloat(strings.TrimSuffix(text, "s"), 64)
		if err != nil {
			return 0, err
		}
		return time.Duration(math.Round(s * float64(time.Second))), nil
	default:
		return 0, fmt.Errorf("duration %q has no unit", text)
	}
}
