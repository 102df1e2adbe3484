package scene

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-moon/internal/config"
)

// GenerateStars places count small white spheres uniformly inside a cube of
// edge sc.StarSpread centered on the origin. Stars may overlap each other
// and the moon. All stars share one geometry and one material.
func GenerateStars(count int, sc config.SceneConfig, rng *rand.Rand) []*Mesh {
	if count <= 0 {
		return nil
	}

	geo := NewSphereGeometry(sc.StarRadius, sc.StarSegments, sc.StarSegments)
	mat := NewMaterial(mgl32.Vec3{1, 1, 1})

	stars := make([]*Mesh, count)
	for i := range stars {
		star := NewMesh(fmt.Sprintf("star-%d", i), geo, mat)
		star.Position = mgl32.Vec3{
			spread(rng, sc.StarSpread),
			spread(rng, sc.StarSpread),
			spread(rng, sc.StarSpread),
		}
		stars[i] = star
	}
	return stars
}

// spread returns a float in (-r/2, r/2].
func spread(rng *rand.Rand, r float32) float32 {
	var f float32
	if rng != nil {
		f = rng.Float32()
	} else {
		f = rand.Float32()
	}
	return r * (0.5 - f)
}
