package drawer

// FadeRange returns the Y positions where the overlay is fully transparent
// (start) and fully opaque (end).
//
// The fade runs from fadeFrom to the next index, clamped to the last one,
// so a fade starting at the last snap point has start == end. A drawer
// without snap points fades across its whole travel.
func FadeRange(g Geometry, fadeFrom int) (start, end float64) {
	if !g.HasSnapPoints() {
		return g.ClosedY(), g.OpenY()
	}
	from := clampIndex(fadeFrom, len(g.Points))
	to := min(from+1, g.LastIndex())
	return g.SnapY(from), g.SnapY(to)
}

// OverlayOpacity returns the overlay opacity in [0, 1] for a drawer at y.
// At or past the start of the fade range it is 0; that check wins over
// the end of an empty range.
func OverlayOpacity(g Geometry, fadeFrom int, y float64) float64 {
	start, end := FadeRange(g, fadeFrom)
	if !g.MoreClosed(start, y) {
		return 0
	}
	if start == end {
		return 1
	}
	return clampFloat((start-y)/(start-end), 0, 1)
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
