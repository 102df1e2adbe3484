package app

import (
	"math"

	"github.com/Faultbox/midgard-moon/internal/engine/tween"
)

// tintKey identifies the moon color tween in the manager.
const tintKey = "moon.color"

// tintBlue is the constant blue channel of every pointer tint.
const tintBlue = 150

// initialRGB is the tint before the first drag.
var initialRGB = [3]int{12, 23, 55}

// Tint maps the pointer position to the moon color while a button is held.
type Tint struct {
	dragging bool
	rgb      [3]int

	color    []*float32
	tweens   *tween.Manager
	duration float32
}

// NewTint creates an idle controller that tweens the color channels.
func NewTint(color []*float32, tweens *tween.Manager, duration float32) *Tint {
	return &Tint{
		rgb:      initialRGB,
		color:    color,
		tweens:   tweens,
		duration: duration,
	}
}

// Dragging reports whether a pointer button is held.
func (t *Tint) Dragging() bool {
	return t.dragging
}

// RGB returns the last computed tint.
func (t *Tint) RGB() [3]int {
	return t.rgb
}

// PointerDown enters the dragging state.
func (t *Tint) PointerDown() {
	t.dragging = true
}

// PointerUp returns to idle. A running tint tween is left to finish.
func (t *Tint) PointerUp() {
	t.dragging = false
}

// PointerMove retargets the tint from a pointer position inside a
// width x height viewport. It returns false, and does nothing, while idle.
func (t *Tint) PointerMove(x, y, width, height int) bool {
	if !t.dragging || width <= 0 || height <= 0 {
		return false
	}

	t.rgb = [3]int{
		channel(x, width),
		channel(y, height),
		tintBlue,
	}

	// The material color is linear; pointer channels are sRGB bytes
	to := []float32{
		srgbToLinear(t.rgb[0]),
		srgbToLinear(t.rgb[1]),
		srgbToLinear(t.rgb[2]),
	}
	t.tweens.To(tintKey, t.color, to, tween.Vars{Duration: t.duration})
	return true
}

// channel maps a coordinate to 0-255. Positions outside the window, which
// SDL reports while a drag is captured, saturate.
func channel(pos, size int) int {
	v := int(math.Round(float64(pos) / float64(size) * 255))
	return min(max(v, 0), 255)
}

// srgbToLinear decodes an sRGB byte into a linear 0-1 intensity.
func srgbToLinear(c int) float32 {
	v := float64(c) / 255
	if v <= 0.04045 {
		return float32(v / 12.92)
	}
	return float32(math.Pow((v+0.055)/1.055, 2.4))
}
