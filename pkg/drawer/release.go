package drawer

import "math"

// Release describes how a drag ended.
type Release struct {
	// FinalY is the last rendered drawer Y.
	FinalY float64
	// Velocity is in px/ms; negative moves toward open.
	Velocity float64
	// From is the active snap index when the drag started.
	From int
	// Target is the snap index the drawer settles at, or NoSnapPoint.
	Target int
	// Close is true when the release closes the drawer.
	Close bool
	// Cancelled is true for pointercancel.
	Cancelled bool
}

// ResolveRelease decides where a drag ends. With snap points, in order:
// a drawer resting at index 0 that ended more closed than that point
// closes; a velocity beyond VelocityThreshold moves one index in its
// direction unless sequential is set; otherwise the nearest snap point
// wins, ties going to the lower index.
//
// Without snap points the drawer closes once it travelled more than
// closeThreshold of the viewport toward closed, or on a closing flick.
func ResolveRelease(g Geometry, active int, finalY, velocity float64, sequential bool, closeThreshold float64) (target int, close bool) {
	if !g.HasSnapPoints() {
		travelled := g.Closedness(finalY)
		if travelled > closeThreshold*g.Viewport || velocity > VelocityThreshold {
			return NoSnapPoint, true
		}
		return NoSnapPoint, false
	}

	last := g.LastIndex()
	active = clampIndex(active, len(g.Points))

	if active == 0 && g.MoreClosed(finalY, g.SnapY(0)) {
		return 0, true
	}

	if !sequential && math.Abs(velocity) > VelocityThreshold {
		if velocity < 0 {
			return min(active+1, last), false
		}
		return max(active-1, 0), false
	}

	return NearestSnap(g, finalY), false
}

// NearestSnap returns the index whose resting Y is closest to y.
func NearestSnap(g Geometry, y float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i := range g.Points {
		d := math.Abs(g.SnapY(i) - y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
