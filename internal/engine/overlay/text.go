package overlay

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// TextSize returns the on-screen size of text drawn at scale.
func TextSize(text string, scale float32) (float32, float32) {
	if scale <= 0 {
		scale = 1
	}
	w := font.MeasureString(face, text).Ceil()
	return float32(w) * scale, float32(face.Metrics().Height.Ceil()) * scale
}

// RasterizeText draws text in white on a transparent image sized to fit.
// Color and opacity are applied when the image is drawn.
func RasterizeText(text string) *image.RGBA {
	w := font.MeasureString(face, text).Ceil()
	h := face.Metrics().Height.Ceil()
	if w == 0 {
		w = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: face.Metrics().Ascent},
	}
	d.DrawString(text)
	return img
}
