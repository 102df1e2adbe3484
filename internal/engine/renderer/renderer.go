// Package renderer draws the moon scene and its page overlay with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-moon/internal/engine/lighting"
	"github.com/Faultbox/midgard-moon/internal/engine/overlay"
	"github.com/Faultbox/midgard-moon/internal/engine/scene"
	"github.com/Faultbox/midgard-moon/internal/engine/shader"
	"github.com/Faultbox/midgard-moon/internal/engine/texture"
	"github.com/Faultbox/midgard-moon/internal/logger"
)

// Renderer owns every GL resource of the scene.
type Renderer struct {
	log *zap.Logger

	meshProgram    *shader.Program
	overlayProgram *shader.Program

	meshes   map[*scene.Geometry]*gpuMesh
	textures map[*scene.Material]*gpuTexture
	texts    map[string]uint32
	white    uint32

	quadVAO, quadVBO uint32

	lights *lighting.PointLightBuffer

	// Framebuffer size in pixels and overlay size in screen coordinates.
	fbWidth, fbHeight int
	width, height     int
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New() (*Renderer, error) {
	r := &Renderer{
		log:      logger.Named("renderer"),
		meshes:   make(map[*scene.Geometry]*gpuMesh),
		textures: make(map[*scene.Material]*gpuTexture),
		texts:    make(map[string]uint32),
		lights:   lighting.NewPointLightBuffer(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.MULTISAMPLE)

	var err error
	r.meshProgram, err = shader.New("mesh", meshVertexSrc, meshFragmentSrc)
	if err != nil {
		return nil, err
	}
	r.overlayProgram, err = shader.New("overlay", overlayVertexSrc, overlayFragmentSrc)
	if err != nil {
		r.meshProgram.Delete()
		return nil, err
	}

	r.createOverlayBuffers()

	r.white = uploadNRGBA(texture.Fallback(), false)

	return r, nil
}

// Close releases all GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.meshes {
		m.delete()
	}
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t.id)
	}
	for _, id := range r.texts {
		gl.DeleteTextures(1, &id)
	}
	if r.white != 0 {
		gl.DeleteTextures(1, &r.white)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	r.meshProgram.Delete()
	r.overlayProgram.Delete()
}

// SetSize sets the framebuffer size in pixels and the overlay size in
// screen coordinates. They differ on high-DPI displays.
func (r *Renderer) SetSize(fbWidth, fbHeight, width, height int) {
	r.fbWidth, r.fbHeight = fbWidth, fbHeight
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	r.log.Debug("renderer resized",
		zap.Int("width", fbWidth),
		zap.Int("height", fbHeight),
	)
}

// Render draws one frame: the scene from its camera, then the overlay.
func (r *Renderer) Render(s *scene.Scene, ov *overlay.Overlay) {
	bg := s.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.meshProgram.Use()
	r.meshProgram.SetMat4("uViewProj", s.Camera.ViewProjection())
	r.meshProgram.SetVec3("uCameraPos", s.Camera.Position)
	r.meshProgram.SetInt("uMap", 0)

	r.lights.SetLights(s.Lights)
	r.meshProgram.SetInt("uLightCount", int32(r.lights.Count()))
	r.meshProgram.SetVec3Array("uLightPos", r.lights.GetPositions())
	r.meshProgram.SetVec3Array("uLightColor", r.lights.GetColors())
	r.meshProgram.SetVec2Array("uLightFalloff", r.lights.GetFalloff())

	gl.ActiveTexture(gl.TEXTURE0)
	for _, m := range s.Meshes() {
		r.drawMesh(m)
	}
	gl.BindVertexArray(0)

	if ov != nil {
		r.drawOverlay(ov.Layout(r.width, r.height))
	}
}

func (r *Renderer) drawMesh(m *scene.Mesh) {
	model := m.ModelMatrix()
	if model.Det() == 0 {
		// Zero scale, e.g. the moon before the intro grows it
		return
	}
	r.meshProgram.SetMat4("uModel", model)
	r.meshProgram.SetMat3("uNormalMatrix", normalMatrix(model))
	r.meshProgram.SetVec3("uColor", m.Material.Color)
	r.meshProgram.SetFloat("uRoughness", m.Material.Roughness)

	gl.BindTexture(gl.TEXTURE_2D, r.textureFor(m.Material))
	r.meshFor(m.Geometry).draw()
}

func normalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}

// Err returns the first pending OpenGL error, if any.
func (r *Renderer) Err() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl error 0x%04x", code)
	}
	return nil
}

// ReadPixels returns the framebuffer contents as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.fbWidth, r.fbHeight
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
