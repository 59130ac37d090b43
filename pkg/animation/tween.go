package animation

// Tween maps the 0-1 value of an [AnimationController] onto a pixel range.
type Tween struct {
	Begin float64
	End   float64
}

// Evaluate returns the interpolated value at t.
func (tw Tween) Evaluate(t float64) float64 {
	return LerpFloat64(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the controller's current value.
func (tw Tween) Transform(controller *AnimationController) float64 {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between a and b.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}
