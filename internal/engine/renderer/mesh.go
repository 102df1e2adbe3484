package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-moon/internal/engine/scene"
)

// gpuMesh holds the GL buffers of one uploaded geometry.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// meshFor returns the GPU buffers of geo, uploading them on first use.
// Geometries shared between meshes are uploaded once.
func (r *Renderer) meshFor(geo *scene.Geometry) *gpuMesh {
	if m, ok := r.meshes[geo]; ok {
		return m
	}

	m := &gpuMesh{indexCount: int32(len(geo.Indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	stride := int32(unsafe.Sizeof(scene.Vertex{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(geo.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*int(stride), unsafe.Pointer(&geo.Vertices[0]), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(geo.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, unsafe.Pointer(&geo.Indices[0]), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	r.meshes[geo] = m
	return m
}

func (m *gpuMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
}

func (m *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}
