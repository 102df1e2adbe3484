// Package lighting provides point light support for scene rendering.
package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 4

// PointLight emits equally in all directions from Position.
//
// Intensity is in candela-like units: irradiance falls off with
// 1/distance^Decay and fades smoothly to zero at Distance (0 = no cutoff).
type PointLight struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3 // RGB 0-1
	Intensity float32
	Distance  float32
	Decay     float32
}

// NewPointLight creates a white light with physically based falloff.
func NewPointLight(position mgl32.Vec3, intensity, distance float32) PointLight {
	return PointLight{
		Position:  position,
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: intensity,
		Distance:  distance,
		Decay:     2,
	}
}

// Attenuation returns the intensity scale at distance d from the light.
// It mirrors the falloff in the mesh fragment shader.
func (l PointLight) Attenuation(d float32) float32 {
	dd := float64(d)
	if dd < 0.01 {
		dd = 0.01
	}
	falloff := 1 / gomath.Pow(dd, float64(l.Decay))
	if l.Distance > 0 {
		ratio := dd / float64(l.Distance)
		window := 1 - ratio*ratio*ratio*ratio
		if window < 0 {
			window = 0
		}
		falloff *= window * window
	}
	return float32(falloff)
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of lights in the buffer.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxPointLights if necessary.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	count := len(lights)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	b.Lights = append(b.Lights[:0], lights[:count]...)
}

// GetPositions returns positions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *PointLightBuffer) GetPositions() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		copy(result[i*3:], light.Position[:])
	}
	return result
}

// GetColors returns color * intensity as a flat float32 slice for GPU upload.
func (b *PointLightBuffer) GetColors() []float32 {
	result := make([]float32, MaxPointLights*3)
	for i, light := range b.Lights {
		c := light.Color.Mul(light.Intensity)
		copy(result[i*3:], c[:])
	}
	return result
}

// GetFalloff returns (distance, decay) pairs as a flat float32 slice for GPU upload.
func (b *PointLightBuffer) GetFalloff() []float32 {
	result := make([]float32, MaxPointLights*2)
	for i, light := range b.Lights {
		result[i*2+0] = light.Distance
		result[i*2+1] = light.Decay
	}
	return result
}
