package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerspectiveProjectionFollowsAspect(t *testing.T) {
	cam := NewPerspective(50, 1, 0.1, 100)
	square := cam.ProjectionMatrix()

	cam.Aspect = 2
	assert.Equal(t, square, cam.ProjectionMatrix(), "projection only changes on UpdateProjectionMatrix")

	cam.UpdateProjectionMatrix()
	wide := cam.ProjectionMatrix()
	// x scale is f/aspect
	assert.InDelta(t, square[0]/2, wide[0], 1e-5)
	assert.InDelta(t, square[5], wide[5], 1e-5)
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	cam := NewPerspective(50, 1, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 0, 20}
	cam.LookAt(mgl32.Vec3{})

	// The target sits straight ahead on the -Z axis in view space
	p := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -20, p.Z(), 1e-4)
}

func newControls() *OrbitControls {
	cam := NewPerspective(50, 16.0/9.0, 0.1, 100)
	cam.Position = mgl32.Vec3{0, 0, 20}
	o := NewOrbitControls(cam)
	o.EnableDamping = true
	o.DampingFactor = 0.05
	o.AutoRotate = true
	o.AutoRotateSpeed = 3.5
	o.EnablePan = false
	o.EnableZoom = false
	o.ViewportHeight = 720
	return o
}

func TestAutoRotateMovesAzimuthMonotonically(t *testing.T) {
	o := newControls()
	prev := o.Azimuth()
	for i := 0; i < 120; i++ {
		o.Update(1.0 / 60)
		az := o.Azimuth()
		require.Less(t, az, prev, "frame %d: azimuth did not advance", i)
		prev = az
	}
	assert.InDelta(t, 20, o.Distance(), 1e-3, "orbiting keeps the distance")
	assert.InDelta(t, 0, o.Camera.Position.Y(), 1e-3, "orbiting keeps the height")
}

func TestAutoRotatePausesWhileDragging(t *testing.T) {
	o := newControls()
	o.EnableDamping = false
	o.BeginDrag()
	before := o.Camera.Position
	o.Update(1.0 / 60)
	// Position round-trips through spherical coordinates, so allow float noise
	for i := range 3 {
		assert.InDelta(t, before[i], o.Camera.Position[i], 1e-5, "axis %d moved while dragging", i)
	}

	o.EndDrag()
	o.Update(1.0 / 60)
	assert.False(t, before.ApproxEqualThreshold(o.Camera.Position, 1e-3), "auto rotation resumes after the drag")
}

func TestDragRotatesOnlyDuringGesture(t *testing.T) {
	o := newControls()
	o.AutoRotate = false
	o.EnableDamping = false

	o.HandleDrag(100, 0)
	o.Update(1.0 / 60)
	assert.InDelta(t, 0, o.Azimuth(), 1e-6)

	o.BeginDrag()
	o.HandleDrag(90, 0) // 90px of 720 => an eighth of a turn
	o.Update(1.0 / 60)
	assert.InDelta(t, -mgl32.DegToRad(45), o.Azimuth(), 1e-4)
}

func TestDampingCarriesInertia(t *testing.T) {
	o := newControls()
	o.AutoRotate = false
	o.BeginDrag()
	o.HandleDrag(50, 0)
	o.EndDrag()

	o.Update(1.0 / 60)
	first := o.Azimuth()
	o.Update(1.0 / 60)
	second := o.Azimuth()
	assert.Less(t, second, first, "rotation keeps going after the gesture")

	for i := 0; i < 1000; i++ {
		o.Update(1.0 / 60)
	}
	settled := o.Azimuth()
	o.Update(1.0 / 60)
	assert.InDelta(t, settled, o.Azimuth(), 1e-5, "rotation settles")
}

func TestPolarAngleStaysOffThePoles(t *testing.T) {
	o := newControls()
	o.AutoRotate = false
	o.EnableDamping = false
	o.BeginDrag()
	o.HandleDrag(0, 5000)
	o.Update(1.0 / 60)

	p := o.Camera.Position
	for i := 0; i < 3; i++ {
		assert.False(t, gomath.IsNaN(float64(p[i])), "position component %d is NaN", i)
	}
	assert.InDelta(t, 20, p.Y(), 1e-3, "camera parks just off the north pole")
	assert.InDelta(t, 20, o.Distance(), 1e-3)
}

func TestPanAndZoomDisabled(t *testing.T) {
	o := newControls()
	o.AutoRotate = false

	start := o.Camera.Position
	fov := o.Camera.FOV
	for i := 0; i < 30; i++ {
		o.HandlePan(40, -25)
		o.HandleZoom(1)
		o.HandleZoom(-3)
		o.Update(1.0 / 60)
	}

	assert.Equal(t, mgl32.Vec3{}, o.Target, "target must not translate")
	assert.InDelta(t, 20, o.Distance(), 1e-4, "distance must not change")
	assert.InDelta(t, start.X(), o.Camera.Position.X(), 1e-4)
	assert.InDelta(t, start.Y(), o.Camera.Position.Y(), 1e-4)
	assert.InDelta(t, start.Z(), o.Camera.Position.Z(), 1e-4)
	assert.Equal(t, fov, o.Camera.FOV)
}

func TestZoomWhenEnabled(t *testing.T) {
	o := newControls()
	o.AutoRotate = false
	o.EnableDamping = false
	o.EnableZoom = true

	o.HandleZoom(1)
	o.Update(1.0 / 60)
	assert.Less(t, o.Distance(), float32(20))
}

func TestPanWhenEnabled(t *testing.T) {
	o := newControls()
	o.AutoRotate = false
	o.EnableDamping = false
	o.EnablePan = true

	o.HandlePan(100, 0)
	o.Update(1.0 / 60)
	assert.Less(t, o.Target.X(), float32(0), "dragging right moves the target left")
	assert.InDelta(t, 20, o.Distance(), 1e-3)
}
