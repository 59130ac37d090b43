package drawer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/drawer/pkg/animation"
	"github.com/go-drift/drawer/pkg/dom"
)

// Style properties written to the drawer surface.
const (
	StyleTransform  = "transform"
	StyleTransition = "transition"
	StyleOpacity    = "opacity"
)

// TranslateY formats a vertical translation as a CSS transform value.
func TranslateY(offset float64) string {
	return fmt.Sprintf("translate3d(0, %spx, 0)", formatPx(offset))
}

// ParseTranslateY extracts the vertical offset from a value written by
// TranslateY.
func ParseTranslateY(value string) (float64, bool) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(value), "translate3d(")
	if !ok {
		return 0, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return 0, false
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return 0, false
	}
	y, ok := strings.CutSuffix(strings.TrimSpace(parts[1]), "px")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatPx(v float64) string {
	if v == 0 {
		// Avoid "-0px".
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// surface writes positions and opacity to the drawer's DOM targets. It is the
// only writer of the transform, transition and opacity styles.
type surface struct {
	content *dom.Node
	overlay *dom.Node
	motion  func(property string) animation.Transition
}

func (s *surface) writeTransform(g Geometry, y float64, animated bool) {
	if animated {
		s.content.SetStyle(StyleTransition, s.motion(StyleTransform).String())
	} else {
		s.content.SetStyle(StyleTransition, animation.None)
	}
	s.content.SetStyle(StyleTransform, TranslateY(g.Offset(y)))
}

func (s *surface) writeOpacity(opacity float64, animated bool) {
	if s.overlay == nil {
		return
	}
	if animated {
		s.overlay.SetStyle(StyleTransition, s.motion(StyleOpacity).String())
	} else {
		s.overlay.SetStyle(StyleTransition, animation.None)
	}
	s.overlay.SetStyle(StyleOpacity, strconv.FormatFloat(opacity, 'f', -1, 64))
}
