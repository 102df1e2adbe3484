package renderer

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-moon/internal/engine/scene"
)

type gpuTexture struct {
	id      uint32
	version int
}

// textureFor returns the GL texture of a material's map, re-uploading when
// the map was replaced. Materials without a map sample the white texture.
func (r *Renderer) textureFor(mat *scene.Material) uint32 {
	if mat.Map == nil {
		return r.white
	}
	t, ok := r.textures[mat]
	if ok && t.version == mat.Version() {
		return t.id
	}
	if !ok {
		t = &gpuTexture{}
		r.textures[mat] = t
	}
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
	}
	t.id = uploadNRGBA(mat.Map, true)
	t.version = mat.Version()
	r.log.Debug("texture uploaded")
	return t.id
}

// uploadNRGBA creates a mipmapped texture. srgb marks color data that the
// sampler should linearize.
func uploadNRGBA(img *image.NRGBA, srgb bool) uint32 {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	internal := int32(gl.RGBA8)
	if srgb {
		internal = gl.SRGB8_ALPHA8
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// uploadRGBA creates an unfiltered texture for text masks.
func uploadRGBA(img *image.RGBA) uint32 {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}
