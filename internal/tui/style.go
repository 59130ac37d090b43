package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/drawer/internal/render"
)

func toColorful(c render.Color) colorful.Color {
	cc, ok := colorful.MakeColor(c.NRGBA())
	if !ok {
		return colorful.Color{}
	}
	return cc
}

func termColor(c render.Color) lipgloss.Color {
	return lipgloss.Color(toColorful(c).Hex())
}

// dim darkens page toward the overlay color the way a backdrop at the given
// opacity would.
func dim(theme render.Theme, page render.Color, opacity float64) lipgloss.Color {
	amount := clamp01(opacity) * theme.OverlayMax
	blended := toColorful(page).BlendRgb(toColorful(theme.Overlay), amount)
	return lipgloss.Color(blended.Clamped().Hex())
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}

type styles struct {
	page    lipgloss.Style
	surface lipgloss.Style
	handle  lipgloss.Style
	label   lipgloss.Style
	status  lipgloss.Style
}

func newStyles(theme render.Theme, opacity float64, width int) styles {
	pageBg := dim(theme, theme.Page, opacity)
	textFg := dim(theme, render.RGB(0x3F, 0x3F, 0x46), opacity)
	return styles{
		page: lipgloss.NewStyle().
			Width(width).
			Background(pageBg).
			Foreground(textFg),
		surface: lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Background(termColor(theme.Surface)).
			Foreground(termColor(theme.Label)),
		handle: lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Background(termColor(theme.Surface)).
			Foreground(termColor(theme.Handle)),
		label: lipgloss.NewStyle().
			Foreground(termColor(theme.Guide)).
			Bold(true),
		status: lipgloss.NewStyle().
			Width(width).
			Foreground(lipgloss.AdaptiveColor{Light: "#52525B", Dark: "#A1A1AA"}),
	}
}
