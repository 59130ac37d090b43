package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/drawer/pkg/dom"
	"github.com/go-drift/drawer/pkg/drawer"
)

func openDrawer(t *testing.T, dir drawer.Direction, index int) *drawer.Drawer {
	t.Helper()
	win := dom.NewWindow(400, 800)
	container := dom.NewElement("div").Append(
		dom.NewElement("div", drawer.TargetAttribute, "overlay"),
		dom.NewElement("div", drawer.TargetAttribute, "content"),
	)
	win.Document.Body.AppendChild(container)

	cfg := drawer.DefaultConfig()
	cfg.Direction = dir
	cfg.SnapPoints = []drawer.SnapPoint{drawer.Fraction(0.25), drawer.Fraction(0.5), drawer.Fraction(0.75), drawer.Fraction(1)}
	d, err := drawer.New(win, drawer.FindTargets(container), cfg)
	require.NoError(t, err)
	d.Connect()
	t.Cleanup(d.Disconnect)
	d.Open()
	d.SnapTo(index, false)
	return d
}

func TestSceneOf(t *testing.T) {
	d := openDrawer(t, drawer.DirectionBottom, 1)
	s := SceneOf(d, 400)
	assert.Equal(t, 400.0, s.Offset)
	assert.Equal(t, 1.0, s.Opacity)
	assert.Equal(t, 1, s.Active)
	require.Len(t, s.Guides, 4)
	assert.Equal(t, "1: 0.5 y=400", s.Guides[1].Label)

	top, bottom := s.SurfaceBounds()
	assert.Equal(t, 400.0, top)
	assert.Equal(t, 800.0, bottom)
}

func TestSceneOfTopDrawer(t *testing.T) {
	d := openDrawer(t, drawer.DirectionTop, 0)
	s := SceneOf(d, 400)
	assert.Equal(t, -600.0, s.Offset)
	top, bottom := s.SurfaceBounds()
	assert.Equal(t, 0.0, top)
	assert.Equal(t, 200.0, bottom)
}

func TestDrawPaintsSurfaceAndOverlay(t *testing.T) {
	d := openDrawer(t, drawer.DirectionBottom, 1)
	img := Draw(SceneOf(d, 400), Options{HideGuides: true})
	require.Equal(t, 400, img.Bounds().Dx())
	require.Equal(t, 800, img.Bounds().Dy())

	surface := DefaultTheme.Surface.NRGBA()
	r, g, b, _ := img.At(300, 600).RGBA()
	sr, sg, sb, _ := surface.RGBA()
	assert.Equal(t, []uint32{sr, sg, sb}, []uint32{r, g, b}, "surface pixel")

	page := DefaultTheme.Page.NRGBA()
	dimmed := img.RGBAAt(300, 100)
	assert.Less(t, dimmed.R, page.R, "overlay should darken the page")
}

func TestDrawScale(t *testing.T) {
	s := Scene{Width: 100, Viewport: 200, Offset: 100}
	img := Draw(s, Options{Scale: 2})
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestWritePNG(t *testing.T) {
	img := Draw(Scene{Width: 40, Viewport: 80, Offset: 40, Opacity: 0.5}, Options{})
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
