package overlay

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Quad is a screen-space rectangle in pixels, origin top-left.
type Quad struct {
	X, Y, W, H float32
	Color      mgl32.Vec4
	Text       string // empty for a plain box
	TextScale  float32
}

// Layout returns the quads to draw for a viewport of width x height pixels.
// Element opacity is folded into the quad alpha; invisible quads are dropped.
func (o *Overlay) Layout(width, height int) []Quad {
	w, h := float32(width), float32(height)
	var quads []Quad

	for _, e := range o.elements {
		if e.Opacity <= 0 {
			continue
		}
		switch e.Selector {
		case SelectorNav:
			navH := o.cfg.NavHeight
			y := navH * e.YPercent / 100
			if e.Background[3] > 0 {
				quads = append(quads, Quad{X: 0, Y: y, W: w, H: navH, Color: fade(e.Background, e.Opacity)})
			}
			tw, th := TextSize(e.Text, e.TextScale)
			quads = append(quads, Quad{
				X: 24, Y: y + (navH-th)/2, W: tw, H: th,
				Color: fade(e.Foreground, e.Opacity), Text: e.Text, TextScale: e.TextScale,
			})
		default:
			tw, th := TextSize(e.Text, e.TextScale)
			y := h*0.75 + th*e.YPercent/100
			quads = append(quads, Quad{
				X: (w - tw) / 2, Y: y, W: tw, H: th,
				Color: fade(e.Foreground, e.Opacity), Text: e.Text, TextScale: e.TextScale,
			})
		}
	}
	return quads
}

func fade(c mgl32.Vec4, opacity float32) mgl32.Vec4 {
	if opacity > 1 {
		opacity = 1
	}
	return mgl32.Vec4{c[0], c[1], c[2], c[3] * opacity}
}
