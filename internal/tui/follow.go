package tui

import (
	"github.com/go-drift/drawer/pkg/animation"
	"github.com/go-drift/drawer/pkg/dom"
	"github.com/go-drift/drawer/pkg/drawer"
)

// follower plays back the content's transform. A transform written with a
// transition is animated from the offset on screen; one written without a
// transition jumps.
type follower struct {
	content *dom.Node
	seen    string
	shown   float64
	target  float64
	ctrl    *animation.AnimationController
}

func newFollower(content *dom.Node) *follower {
	return &follower{content: content}
}

func (f *follower) sync() {
	value := f.content.Style(drawer.StyleTransform)
	if value == f.seen {
		return
	}
	f.seen = value
	offset, ok := drawer.ParseTranslateY(value)
	if !ok {
		return
	}
	f.stop()
	f.target = offset

	tr, animated, err := animation.ParseTransition(f.content.Style(drawer.StyleTransition))
	if err != nil || !animated || tr.Duration <= 0 || f.shown == offset {
		f.shown = offset
		return
	}
	c := animation.NewTransitionController(tr)
	tween := animation.Tween{Begin: f.shown, End: offset}
	c.AddListener(func() { f.shown = tween.Transform(c) })
	c.Forward()
	f.ctrl = c
}

func (f *follower) animating() bool {
	return f.ctrl != nil && f.ctrl.IsAnimating()
}

func (f *follower) stop() {
	if f.ctrl == nil {
		return
	}
	f.ctrl.Dispose()
	f.ctrl = nil
}
