package animation

import (
	"fmt"
	"math"
	"strconv"
)

// Curve maps linear progress t in [0, 1] to eased progress. Drawer curves
// are described by [Bezier] so they survive a round trip through a CSS
// transition value.
type Curve func(t float64) float64

// LinearCurve is the identity curve.
func LinearCurve(t float64) float64 {
	return t
}

// Bezier describes a cubic-bezier timing function with control points
// (X1, Y1) and (X2, Y2). The curve starts at (0,0) and ends at (1,1).
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

// Standard curves, equivalent to their CSS keywords.
var (
	Ease      = Bezier{0.25, 0.1, 0.25, 1.0}
	EaseIn    = Bezier{0.4, 0.0, 1.0, 1.0}
	EaseOut   = Bezier{0.0, 0.0, 0.2, 1.0}
	EaseInOut = Bezier{0.4, 0.0, 0.2, 1.0}
)

// DrawerEase is the curve drawers use for snaps, opens and closes.
var DrawerEase = Bezier{0.32, 0.72, 0, 1}

// String formats the curve as a CSS cubic-bezier() value.
func (b Bezier) String() string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
		formatFloat(b.X1), formatFloat(b.Y1), formatFloat(b.X2), formatFloat(b.Y2))
}

// Curve returns the easing function for b.
func (b Bezier) Curve() Curve {
	return CubicBezier(b.X1, b.Y1, b.X2, b.Y2)
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	ub := newUnitBezier(x1, y1, x2, y2)
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return ub.y(ub.solveX(t))
	}
}

// unitBezier holds the polynomial coefficients of a bezier from (0,0) to
// (1,1), so x(u) = ((ax*u + bx)*u + cx)*u.
type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newUnitBezier(x1, y1, x2, y2 float64) unitBezier {
	var b unitBezier
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by
	return b
}

func (b unitBezier) x(u float64) float64 { return ((b.ax*u+b.bx)*u + b.cx) * u }
func (b unitBezier) y(u float64) float64 { return ((b.ay*u+b.by)*u + b.cy) * u }
func (b unitBezier) dx(u float64) float64 {
	return (3*b.ax*u+2*b.bx)*u + b.cx
}

// solveX finds u with x(u) == x. Newton steps first, bisection when the
// slope flattens out.
func (b unitBezier) solveX(x float64) float64 {
	const epsilon = 1e-7
	u := x
	for range 8 {
		err := b.x(u) - x
		if math.Abs(err) < epsilon {
			return u
		}
		d := b.dx(u)
		if math.Abs(d) < epsilon {
			break
		}
		u -= err / d
	}
	lo, hi := 0.0, 1.0
	u = math.Min(math.Max(u, lo), hi)
	for range 24 {
		err := b.x(u) - x
		if math.Abs(err) < epsilon {
			break
		}
		if err > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
