package drawer

// Geometry resolves positions along the drawer's movement axis for one
// viewport size. Positions are Y coordinates of the drawer's leading edge:
// distance from the top of the viewport for a bottom drawer, and the extent
// of the drawer for a top drawer.
type Geometry struct {
	Points    []SnapPoint
	Viewport  float64
	Direction Direction
}

// SnapPointY returns the resting Y for points[index] in a viewport of the
// given height. The most open point is clamped so the drawer never comes
// closer than MobileThreshold to the far edge. Index must be in range.
func SnapPointY(points []SnapPoint, index int, viewport float64, dir Direction) float64 {
	px := points[index].Extent(viewport)
	if index == len(points)-1 && px >= viewport-MobileThreshold {
		if dir == DirectionTop {
			return viewport - MobileThreshold
		}
		return MobileThreshold
	}
	if dir == DirectionTop {
		return px
	}
	return viewport - px
}

// HasSnapPoints reports whether the drawer rests at discrete positions.
func (g Geometry) HasSnapPoints() bool {
	return len(g.Points) > 0
}

// LastIndex returns the index of the most open snap point, or NoSnapPoint.
func (g Geometry) LastIndex() int {
	return len(g.Points) - 1
}

// SnapY returns the resting Y for index, clamping index into range.
// Without snap points it returns OpenY.
func (g Geometry) SnapY(index int) float64 {
	if !g.HasSnapPoints() {
		return g.OpenY()
	}
	return SnapPointY(g.Points, clampIndex(index, len(g.Points)), g.Viewport, g.Direction)
}

// ClosedY is the Y of a fully hidden drawer.
func (g Geometry) ClosedY() float64 {
	if g.Direction == DirectionTop {
		return 0
	}
	return g.Viewport
}

// OpenY is the most open resting Y: the last snap point, or the full
// viewport for a drawer without snap points.
func (g Geometry) OpenY() float64 {
	if g.HasSnapPoints() {
		return SnapPointY(g.Points, g.LastIndex(), g.Viewport, g.Direction)
	}
	if g.Direction == DirectionTop {
		return g.Viewport
	}
	return 0
}

// closingSign is +1 when increasing Y moves the drawer toward closed.
func (g Geometry) closingSign() float64 {
	if g.Direction == DirectionTop {
		return -1
	}
	return 1
}

// Closedness maps y to a direction-independent axis where larger values
// are more closed. The most open rest position is 0.
func (g Geometry) Closedness(y float64) float64 {
	return (y - g.OpenY()) * g.closingSign()
}

// MoreClosed reports whether a is strictly closer to the closed edge than b.
func (g Geometry) MoreClosed(a, b float64) bool {
	return (a-b)*g.closingSign() > 0
}

// Offset converts y into the translate offset applied to the content:
// the drawer is laid out fully open and translated toward its edge.
func (g Geometry) Offset(y float64) float64 {
	if g.Direction == DirectionTop {
		return y - g.Viewport
	}
	return y
}
