package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Object is a positioned, scaled node.
type Object struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
}

func newObject() Object {
	return Object{Scale: mgl32.Vec3{1, 1, 1}}
}

// ModelMatrix returns translate * scale.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z()).
		Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}

// ScaleTargets exposes the scale components for tweening.
func (o *Object) ScaleTargets() []*float32 {
	return []*float32{&o.Scale[0], &o.Scale[1], &o.Scale[2]}
}

// Mesh pairs a geometry with a material.
// Several meshes may share the same geometry and material.
type Mesh struct {
	Object
	Name     string
	Geometry *Geometry
	Material *Material
}

// NewMesh creates a mesh at the origin with unit scale.
func NewMesh(name string, geo *Geometry, mat *Material) *Mesh {
	return &Mesh{
		Object:   newObject(),
		Name:     name,
		Geometry: geo,
		Material: mat,
	}
}
