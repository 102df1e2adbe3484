package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// polarEpsilon keeps the camera off the poles where LookAt degenerates.
const polarEpsilon = 1e-6

// OrbitControls rotates a camera around a target point.
//
// Dragging rotates, the wheel dollies and panning slides the target. Each
// Update applies a fraction of the pending rotation when damping is on, which
// gives the motion its inertia. Auto rotation spins the camera around the
// vertical axis while no drag is in progress.
type OrbitControls struct {
	Camera *PerspectiveCamera
	Target mgl32.Vec3

	EnableDamping   bool
	DampingFactor   float32
	RotateSpeed     float32
	AutoRotate      bool
	AutoRotateSpeed float32 // 1.0 = one turn per minute at 60 fps
	EnablePan       bool
	EnableZoom      bool
	ZoomSpeed       float32
	PanSpeed        float32

	MinDistance, MaxDistance float32
	MinPolar, MaxPolar       float32

	// ViewportHeight scales drag distances to angles.
	ViewportHeight float32

	dragging   bool
	panning    bool
	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  mgl32.Vec3
}

// NewOrbitControls attaches controls to cam, orbiting the origin.
func NewOrbitControls(cam *PerspectiveCamera) *OrbitControls {
	return &OrbitControls{
		Camera:          cam,
		DampingFactor:   0.05,
		RotateSpeed:     1,
		AutoRotateSpeed: 2,
		EnablePan:       true,
		EnableZoom:      true,
		ZoomSpeed:       1,
		PanSpeed:        1,
		MinDistance:     0,
		MaxDistance:     float32(gomath.Inf(1)),
		MinPolar:        0,
		MaxPolar:        gomath.Pi,
		ViewportHeight:  1,
		scale:           1,
	}
}

// Dragging reports whether a rotate gesture is in progress.
func (o *OrbitControls) Dragging() bool {
	return o.dragging
}

// BeginDrag starts a rotate gesture. Auto rotation pauses until EndDrag.
func (o *OrbitControls) BeginDrag() {
	o.dragging = true
}

// EndDrag finishes a rotate gesture.
func (o *OrbitControls) EndDrag() {
	o.dragging = false
}

// Panning reports whether a pan gesture is in progress.
func (o *OrbitControls) Panning() bool {
	return o.panning
}

// BeginPan starts a pan gesture, normally bound to the right button.
func (o *OrbitControls) BeginPan() {
	o.panning = true
}

// EndPan finishes a pan gesture.
func (o *OrbitControls) EndPan() {
	o.panning = false
}

// HandleDrag rotates by a pointer delta in pixels. Ignored outside a gesture.
func (o *OrbitControls) HandleDrag(deltaX, deltaY float32) {
	if !o.dragging {
		return
	}
	h := o.ViewportHeight
	if h <= 0 {
		h = 1
	}
	o.rotateLeft(2 * gomath.Pi * deltaX / h * o.RotateSpeed)
	o.rotateUp(2 * gomath.Pi * deltaY / h * o.RotateSpeed)
}

// HandleZoom dollies toward (delta > 0) or away from the target.
func (o *OrbitControls) HandleZoom(delta float32) {
	if !o.EnableZoom || delta == 0 {
		return
	}
	factor := float32(gomath.Pow(0.95, float64(o.ZoomSpeed)))
	if delta > 0 {
		o.scale *= factor
	} else {
		o.scale /= factor
	}
}

// HandlePan slides the target parallel to the view plane by a pixel delta.
func (o *OrbitControls) HandlePan(deltaX, deltaY float32) {
	if !o.EnablePan {
		return
	}
	h := o.ViewportHeight
	if h <= 0 {
		h = 1
	}
	offset := o.Camera.Position.Sub(o.Target)
	// Distance that spans the full viewport height at the target
	span := 2 * offset.Len() * float32(gomath.Tan(float64(mgl32.DegToRad(o.Camera.FOV))/2))

	view := o.Camera.ViewMatrix()
	right := mgl32.Vec3{view[0], view[4], view[8]}
	up := mgl32.Vec3{view[1], view[5], view[9]}

	o.panOffset = o.panOffset.
		Sub(right.Mul(deltaX * span / h * o.PanSpeed)).
		Add(up.Mul(deltaY * span / h * o.PanSpeed))
}

// Azimuth returns the current horizontal angle of the camera around the target.
func (o *OrbitControls) Azimuth() float32 {
	return spherical(o.Camera.Position.Sub(o.Target)).theta
}

// Polar returns the current angle from the vertical axis.
func (o *OrbitControls) Polar() float32 {
	return spherical(o.Camera.Position.Sub(o.Target)).phi
}

// Distance returns the camera distance from the target.
func (o *OrbitControls) Distance() float32 {
	return o.Camera.Position.Sub(o.Target).Len()
}

// Update advances the controls by one frame of dt seconds and moves the camera.
func (o *OrbitControls) Update(dt float32) {
	s := spherical(o.Camera.Position.Sub(o.Target))

	if o.AutoRotate && !o.dragging {
		o.rotateLeft(2 * gomath.Pi / 60 * o.AutoRotateSpeed * dt)
	}

	if o.EnableDamping {
		s.theta += o.deltaTheta * o.DampingFactor
		s.phi += o.deltaPhi * o.DampingFactor
	} else {
		s.theta += o.deltaTheta
		s.phi += o.deltaPhi
	}

	s.phi = clamp(s.phi, o.MinPolar, o.MaxPolar)
	s.phi = clamp(s.phi, polarEpsilon, gomath.Pi-polarEpsilon)

	s.radius = clamp(s.radius*o.scale, o.MinDistance, o.MaxDistance)

	if o.EnableDamping {
		o.Target = o.Target.Add(o.panOffset.Mul(o.DampingFactor))
	} else {
		o.Target = o.Target.Add(o.panOffset)
	}

	o.Camera.Position = o.Target.Add(s.vec())
	o.Camera.LookAt(o.Target)

	if o.EnableDamping {
		o.deltaTheta *= 1 - o.DampingFactor
		o.deltaPhi *= 1 - o.DampingFactor
		o.panOffset = o.panOffset.Mul(1 - o.DampingFactor)
	} else {
		o.deltaTheta = 0
		o.deltaPhi = 0
		o.panOffset = mgl32.Vec3{}
	}
	o.scale = 1
}

func (o *OrbitControls) rotateLeft(angle float32) {
	o.deltaTheta -= angle
}

func (o *OrbitControls) rotateUp(angle float32) {
	o.deltaPhi -= angle
}

// sphericalCoords uses Y as the polar axis; theta is measured from +Z toward +X.
type sphericalCoords struct {
	radius, theta, phi float32
}

func spherical(v mgl32.Vec3) sphericalCoords {
	r := v.Len()
	if r == 0 {
		return sphericalCoords{}
	}
	return sphericalCoords{
		radius: r,
		theta:  float32(gomath.Atan2(float64(v.X()), float64(v.Z()))),
		phi:    float32(gomath.Acos(float64(clamp(v.Y()/r, -1, 1)))),
	}
}

func (s sphericalCoords) vec() mgl32.Vec3 {
	sinPhi := float32(gomath.Sin(float64(s.phi))) * s.radius
	return mgl32.Vec3{
		sinPhi * float32(gomath.Sin(float64(s.theta))),
		float32(gomath.Cos(float64(s.phi))) * s.radius,
		sinPhi * float32(gomath.Cos(float64(s.theta))),
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
