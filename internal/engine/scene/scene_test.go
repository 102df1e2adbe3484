package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-moon/internal/config"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestBuildDefaults(t *testing.T) {
	cfg := config.Default()
	s := Build(cfg.Scene, cfg.Camera, 16.0/9.0, seeded())

	require.NotNil(t, s.Moon)
	assert.Equal(t, float32(3), s.Moon.Geometry.Radius)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, s.Moon.Scale)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, s.Moon.Material.Color)
	assert.Nil(t, s.Moon.Material.Map, "the map arrives asynchronously")

	require.Len(t, s.Lights, 1)
	assert.Equal(t, mgl32.Vec3{0, 10, 10}, s.Lights[0].Position)
	assert.Equal(t, float32(300), s.Lights[0].Intensity)
	assert.Equal(t, float32(2), s.Lights[0].Decay)

	assert.Equal(t, mgl32.Vec3{0, 0, 20}, s.Camera.Position)
	assert.Equal(t, float32(50), s.Camera.FOV)
	assert.InDelta(t, 16.0/9.0, s.Camera.Aspect, 1e-6)

	assert.Len(t, s.Meshes(), 201)
	assert.Same(t, s.Moon, s.Meshes()[0])
}

func TestStarFieldCountAndBounds(t *testing.T) {
	cfg := config.Default()
	stars := GenerateStars(200, cfg.Scene, seeded())

	require.Len(t, stars, 200)
	for _, star := range stars {
		for axis := 0; axis < 3; axis++ {
			c := star.Position[axis]
			assert.GreaterOrEqual(t, c, float32(-50), "%s axis %d", star.Name, axis)
			assert.LessOrEqual(t, c, float32(50), "%s axis %d", star.Name, axis)
		}
		assert.Equal(t, float32(0.08), star.Geometry.Radius)
		assert.Equal(t, mgl32.Vec3{1, 1, 1}, star.Material.Color)
	}
	assert.Same(t, stars[0].Geometry, stars[199].Geometry, "stars share geometry")
}

func TestStarFieldUnseededDiffers(t *testing.T) {
	cfg := config.Default()
	a := GenerateStars(200, cfg.Scene, nil)
	b := GenerateStars(200, cfg.Scene, nil)

	same := 0
	for i := range a {
		if a[i].Position == b[i].Position {
			same++
		}
	}
	assert.Less(t, same, 200)
}

func TestStarFieldSpreadsOut(t *testing.T) {
	cfg := config.Default()
	stars := GenerateStars(200, cfg.Scene, seeded())

	var minX, maxX float32 = 50, -50
	for _, s := range stars {
		minX = min(minX, s.Position.X())
		maxX = max(maxX, s.Position.X())
	}
	// 200 uniform samples cover most of the range
	assert.Less(t, minX, float32(-40))
	assert.Greater(t, maxX, float32(40))
}

func TestGenerateStarsEmpty(t *testing.T) {
	assert.Nil(t, GenerateStars(0, config.Default().Scene, nil))
}

func TestSphereGeometry(t *testing.T) {
	g := NewSphereGeometry(3, 64, 64)

	assert.Len(t, g.Vertices, 65*65)
	// Pole rows contribute one triangle per segment, the rest two
	assert.Equal(t, 64*64*2-2*64, g.TriangleCount())

	for _, v := range g.Vertices {
		p := mgl32.Vec3(v.Position)
		assert.InDelta(t, 3, p.Len(), 1e-4)
		n := mgl32.Vec3(v.Normal)
		assert.InDelta(t, 1, n.Len(), 1e-4)
	}
	for _, idx := range g.Indices {
		require.Less(t, int(idx), len(g.Vertices))
	}

	north := g.Vertices[0]
	assert.InDelta(t, 3, north.Position[1], 1e-5)
	assert.InDelta(t, 1, north.TexCoord[1], 1e-6)
}

func TestModelMatrix(t *testing.T) {
	m := NewMesh("m", NewSphereGeometry(1, 8, 8), NewMaterial(mgl32.Vec3{}))
	m.Position = mgl32.Vec3{1, 2, 3}
	m.Scale = mgl32.Vec3{2, 2, 2}

	p := m.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{3, 2, 3, 1}, p)

	for _, target := range m.ScaleTargets() {
		*target = 0
	}
	assert.Equal(t, mgl32.Vec3{}, m.Scale)
}

func TestMaterialMapVersion(t *testing.T) {
	mat := NewMaterial(mgl32.Vec3{1, 1, 1})
	assert.Equal(t, 0, mat.Version())
	mat.SetMap(nil)
	assert.Equal(t, 1, mat.Version())

	targets := mat.ColorTargets()
	*targets[1] = 0.5
	assert.Equal(t, float32(0.5), mat.Color.Y())
}
