package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-moon/internal/engine/overlay"
)

func (r *Renderer) createOverlayBuffers() {
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)

	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.STREAM_DRAW)

	// x, y, u, v
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)
}

// textTexture returns the cached mask texture for text.
func (r *Renderer) textTexture(text string) uint32 {
	if id, ok := r.texts[text]; ok {
		return id
	}
	id := uploadRGBA(overlay.RasterizeText(text))
	r.texts[text] = id
	return id
}

// drawOverlay draws the page quads on top of the scene in screen coordinates.
func (r *Renderer) drawOverlay(quads []overlay.Quad) {
	if len(quads) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	r.overlayProgram.Use()
	r.overlayProgram.SetMat4("uProjection", mgl32.Ortho(0, float32(r.width), float32(r.height), 0, -1, 1))
	r.overlayProgram.SetInt("uTexture", 0)

	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.ActiveTexture(gl.TEXTURE0)

	for _, q := range quads {
		if q.Text != "" {
			gl.BindTexture(gl.TEXTURE_2D, r.textTexture(q.Text))
			r.overlayProgram.SetInt("uTextured", 1)
		} else {
			r.overlayProgram.SetInt("uTextured", 0)
		}
		r.overlayProgram.SetVec4("uColor", q.Color)

		x0, y0, x1, y1 := q.X, q.Y, q.X+q.W, q.Y+q.H
		vertices := [24]float32{
			x0, y0, 0, 0,
			x1, y0, 1, 0,
			x1, y1, 1, 1,
			x0, y0, 0, 0,
			x1, y1, 1, 1,
			x0, y1, 0, 1,
		}
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, unsafe.Pointer(&vertices[0]))
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
