package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAttenuationInverseSquare(t *testing.T) {
	l := NewPointLight(mgl32.Vec3{}, 300, 0)
	assert.InDelta(t, 0.25, l.Attenuation(2), 1e-6)
	assert.InDelta(t, 0.01, l.Attenuation(10), 1e-6)
}

func TestAttenuationCutoff(t *testing.T) {
	l := NewPointLight(mgl32.Vec3{}, 300, 100)
	assert.Zero(t, l.Attenuation(100))
	assert.Zero(t, l.Attenuation(150))
	assert.Greater(t, l.Attenuation(50), float32(0))
	assert.Less(t, l.Attenuation(50), float32(1.0/2500), "window shrinks the falloff near the cutoff")
}

func TestBufferTruncatesAndPacks(t *testing.T) {
	b := NewPointLightBuffer()
	lights := make([]PointLight, MaxPointLights+2)
	for i := range lights {
		lights[i] = NewPointLight(mgl32.Vec3{float32(i), 0, 0}, 2, 50)
	}
	b.SetLights(lights)

	assert.Equal(t, MaxPointLights, b.Count())
	pos := b.GetPositions()
	assert.Len(t, pos, MaxPointLights*3)
	assert.Equal(t, float32(1), pos[3])

	colors := b.GetColors()
	assert.Equal(t, float32(2), colors[0], "color is premultiplied by intensity")

	falloff := b.GetFalloff()
	assert.Equal(t, []float32{50, 2}, falloff[:2])
}
