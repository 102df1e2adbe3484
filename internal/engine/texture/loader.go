// Package texture decodes images for upload as GPU textures.
package texture

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Result is the outcome of an asynchronous load.
type Result struct {
	Path  string
	Image *image.NRGBA
	Err   error
}

// Load decodes the image at path, applying EXIF orientation, and flips it
// vertically so row 0 is the bottom row as OpenGL expects.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	return imaging.FlipV(img), nil
}

// LoadAsync decodes path on a background goroutine and delivers exactly one
// Result on the returned channel. The channel is buffered so the loader never
// blocks if nobody reads it.
func LoadAsync(ctx context.Context, path string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		img, err := Load(path)
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		out <- Result{Path: path, Image: img, Err: err}
	}()
	return out
}

// Fallback returns a 1x1 opaque white image, used when a map cannot be loaded.
func Fallback() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	copy(img.Pix, []byte{255, 255, 255, 255})
	return img
}
