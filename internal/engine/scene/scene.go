// Package scene builds the moon scene: a textured sphere, a point light,
// a field of small white stars and the camera that looks at them.
package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-moon/internal/config"
	"github.com/Faultbox/midgard-moon/internal/engine/camera"
	"github.com/Faultbox/midgard-moon/internal/engine/lighting"
	"github.com/Faultbox/midgard-moon/internal/logger"
)

// Scene owns every renderable object and the camera.
type Scene struct {
	Moon       *Mesh
	Stars      []*Mesh
	Lights     []lighting.PointLight
	Camera     *camera.PerspectiveCamera
	Background mgl32.Vec3
}

// Build populates a scene from cfg. aspect is the initial viewport ratio.
// A nil rng draws star positions from the global source.
func Build(sc config.SceneConfig, cc config.CameraConfig, aspect float32, rng *rand.Rand) *Scene {
	s := &Scene{}

	// Moon: white base color so the map shows through untinted
	moonGeo := NewSphereGeometry(sc.MoonRadius, sc.MoonSegments, sc.MoonSegments)
	s.Moon = NewMesh("moon", moonGeo, NewMaterial(mgl32.Vec3{1, 1, 1}))

	light := lighting.NewPointLight(mgl32.Vec3(sc.Light.Position), sc.Light.Intensity, sc.Light.Distance)
	light.Color = mgl32.Vec3(sc.Light.Color)
	light.Decay = sc.Light.Decay
	s.Lights = []lighting.PointLight{light}

	s.Camera = camera.NewPerspective(cc.FOV, aspect, cc.Near, cc.Far)
	s.Camera.Position = mgl32.Vec3{0, 0, cc.Distance}
	s.Camera.LookAt(mgl32.Vec3{})

	s.Stars = GenerateStars(sc.StarCount, sc, rng)

	logger.Named("scene").Debug("scene built",
		zap.Int("moonTriangles", moonGeo.TriangleCount()),
		zap.Int("stars", len(s.Stars)),
		zap.Int("lights", len(s.Lights)),
	)
	return s
}

// Meshes returns the moon followed by every star.
func (s *Scene) Meshes() []*Mesh {
	out := make([]*Mesh, 0, len(s.Stars)+1)
	if s.Moon != nil {
		out = append(out, s.Moon)
	}
	return append(out, s.Stars...)
}
