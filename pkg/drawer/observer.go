package drawer

// Observer receives drawer lifecycle notifications. Callbacks run
// synchronously inside the drawer's event handlers.
type Observer interface {
	OnDragStart(y float64)
	OnDragEnd(r Release)
	OnSnap(index int, y float64)
	OnOpenChange(open bool)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) OnDragStart(float64) {}
func (NopObserver) OnDragEnd(Release)   {}
func (NopObserver) OnSnap(int, float64) {}
func (NopObserver) OnOpenChange(bool)   {}

// Observers fans notifications out to each element in order.
type Observers []Observer

func (o Observers) OnDragStart(y float64) {
	for _, x := range o {
		x.OnDragStart(y)
	}
}

func (o Observers) OnDragEnd(r Release) {
	for _, x := range o {
		x.OnDragEnd(r)
	}
}

func (o Observers) OnSnap(index int, y float64) {
	for _, x := range o {
		x.OnSnap(index, y)
	}
}

func (o Observers) OnOpenChange(open bool) {
	for _, x := range o {
		x.OnOpenChange(open)
	}
}
