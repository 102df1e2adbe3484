package app

import (
	"go.uber.org/zap"
)

// Viewport is the window size in screen coordinates.
type Viewport struct {
	Width, Height int
}

// Aspect returns width / height, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Resize applies a new window size: the camera aspect and projection are
// updated before the surface is resized. A non-positive dimension, as sent
// for a minimized window, is ignored.
func (s *State) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		s.log.Debug("ignoring empty resize", zap.Int("width", width), zap.Int("height", height))
		return
	}

	s.Viewport = Viewport{Width: width, Height: height}

	cam := s.Scene.Camera
	cam.Aspect = s.Viewport.Aspect()
	cam.UpdateProjectionMatrix()
	s.Controls.ViewportHeight = float32(height)

	if s.surface != nil {
		s.surface.SetSize(width, height)
	}
}
