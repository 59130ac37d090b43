// Package render rasterises a drawer's current DOM state into an image, for
// snapshots and CLI output.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/drawer/pkg/drawer"
)

// Guide marks a snap point position.
type Guide struct {
	Index int
	Y     float64
	Label string
}

// Scene is the drawer state a frame shows, in CSS pixels.
type Scene struct {
	Width     float64
	Viewport  float64
	Direction drawer.Direction
	// Offset is the content's translate offset.
	Offset float64
	// Opacity is the overlay opacity in [0, 1].
	Opacity float64
	Active  int
	Guides  []Guide
}

// SceneOf reads the drawer's rendered styles. Unparseable styles fall back
// to the drawer's last known position.
func SceneOf(d *drawer.Drawer, width float64) Scene {
	g := d.Geometry()
	t := d.Targets()
	s := Scene{
		Width:     width,
		Viewport:  g.Viewport,
		Direction: g.Direction,
		Active:    d.ActiveSnapPointIndex(),
	}
	if off, ok := drawer.ParseTranslateY(t.Content.Style(drawer.StyleTransform)); ok {
		s.Offset = off
	} else {
		s.Offset = g.Offset(d.CurrentY())
	}
	if t.Overlay != nil {
		if o, err := strconv.ParseFloat(t.Overlay.Style(drawer.StyleOpacity), 64); err == nil {
			s.Opacity = clamp01(o)
		}
	}
	for i, p := range g.Points {
		y := g.SnapY(i)
		s.Guides = append(s.Guides, Guide{
			Index: i,
			Y:     y,
			Label: fmt.Sprintf("%d: %s y=%s", i, p, strconv.FormatFloat(y, 'f', -1, 64)),
		})
	}
	return s
}

// SurfaceBounds returns the vertical extent [top, bottom) of the drawer
// surface, clipped to the viewport.
func (s Scene) SurfaceBounds() (top, bottom float64) {
	// The content is laid out over the full viewport and translated.
	top, bottom = s.Offset, s.Offset+s.Viewport
	return math.Max(top, 0), math.Min(bottom, s.Viewport)
}

// Options control rasterisation.
type Options struct {
	// Scale is device pixels per CSS pixel. Zero means 1.
	Scale      float64
	Theme      *Theme
	HideGuides bool
}

const handleWidth, handleHeight, handleInset = 48.0, 5.0, 10.0

// Draw rasterises the scene.
func Draw(s Scene, opts Options) *image.RGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	px := func(v float64) int { return int(math.Round(v * scale)) }

	w, h := px(s.Width), px(s.Viewport)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), theme.Page)

	if s.Opacity > 0 {
		blend(img, img.Bounds(), theme.Overlay.WithAlpha(s.Opacity*theme.OverlayMax))
	}

	top, bottom := s.SurfaceBounds()
	if bottom > top {
		fill(img, image.Rect(0, px(top), w, px(bottom)), theme.Surface)
		handleY := s.Offset + handleInset
		if s.Direction == drawer.DirectionTop {
			handleY = s.Offset + s.Viewport - handleInset - handleHeight
		}
		cx := s.Width / 2
		handle := image.Rect(px(cx-handleWidth/2), px(handleY), px(cx+handleWidth/2), px(handleY+handleHeight))
		fill(img, handle.Intersect(image.Rect(0, px(top), w, px(bottom))), theme.Handle)
	}

	if !opts.HideGuides {
		for _, g := range s.Guides {
			y := px(g.Y)
			dashed(img, y, theme.Guide)
			label(img, 4, y-3, g.Label, theme.Label)
		}
	}
	return img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func fill(img *image.RGBA, r image.Rectangle, c Color) {
	draw.Draw(img, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func blend(img *image.RGBA, r image.Rectangle, c Color) {
	draw.Draw(img, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}

func dashed(img *image.RGBA, y int, c Color) {
	b := img.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	nc := c.NRGBA()
	for x := b.Min.X; x < b.Max.X; x++ {
		if (x/6)%2 == 0 {
			img.Set(x, y, nc)
		}
	}
}

func label(img *image.RGBA, x, y int, text string, c Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
