package scene

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Material describes how a mesh surface reacts to light.
// The final albedo is Color multiplied by the Map sample, when a map is set.
type Material struct {
	Color     mgl32.Vec3 // linear 0-1
	Roughness float32
	Map       *image.NRGBA

	version int
}

// NewMaterial returns a material with the given base color and no map.
func NewMaterial(color mgl32.Vec3) *Material {
	return &Material{Color: color, Roughness: 1}
}

// SetMap attaches a color map. The renderer re-uploads it on the next frame.
func (m *Material) SetMap(img *image.NRGBA) {
	m.Map = img
	m.version++
}

// Version changes every time the map is replaced.
func (m *Material) Version() int {
	return m.version
}

// ColorTargets exposes the color channels for tweening.
func (m *Material) ColorTargets() []*float32 {
	return []*float32{&m.Color[0], &m.Color[1], &m.Color[2]}
}
