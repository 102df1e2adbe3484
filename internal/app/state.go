// Package app ties the moon scene together: it owns the scene, camera
// controls, animations and overlay, reacts to input events and drives
// them once per frame.
package app

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-moon/internal/config"
	"github.com/Faultbox/midgard-moon/internal/engine/camera"
	"github.com/Faultbox/midgard-moon/internal/engine/overlay"
	"github.com/Faultbox/midgard-moon/internal/engine/scene"
	"github.com/Faultbox/midgard-moon/internal/engine/texture"
	"github.com/Faultbox/midgard-moon/internal/engine/tween"
	"github.com/Faultbox/midgard-moon/internal/logger"
)

// Surface is whatever the frame is drawn to. Its size follows the viewport.
type Surface interface {
	SetSize(width, height int)
}

// State is the application state. It is only touched from the main goroutine.
type State struct {
	cfg *config.Config
	log *zap.Logger

	Scene    *scene.Scene
	Controls *camera.OrbitControls
	Overlay  *overlay.Overlay
	Tweens   *tween.Manager
	Intro    *tween.Timeline
	Tint     *Tint
	Viewport Viewport

	surface Surface
}

// NewState builds the scene and its animations for the configured window
// size. A nil rng places stars from the global random source.
func NewState(cfg *config.Config, surface Surface, rng *rand.Rand) *State {
	s := &State{
		cfg:      cfg,
		log:      logger.Named("app"),
		surface:  surface,
		Viewport: Viewport{Width: cfg.Graphics.Width, Height: cfg.Graphics.Height},
	}

	s.Scene = scene.Build(cfg.Scene, cfg.Camera, s.Viewport.Aspect(), rng)
	s.Controls = newControls(s.Scene.Camera, cfg.Controls)
	s.Controls.ViewportHeight = float32(s.Viewport.Height)
	s.Overlay = overlay.New(cfg.Page)

	s.Tweens = tween.NewManager(tween.Vars{
		Duration: float32(cfg.Animation.TintDuration.Seconds()),
		Ease:     tween.DefaultEase,
	})
	s.Tint = NewTint(s.Scene.Moon.Material.ColorTargets(), s.Tweens, float32(cfg.Animation.TintDuration.Seconds()))
	s.Intro = s.buildIntro()

	return s
}

func newControls(cam *camera.PerspectiveCamera, cc config.ControlsConfig) *camera.OrbitControls {
	c := camera.NewOrbitControls(cam)
	c.EnableDamping = cc.EnableDamping
	c.DampingFactor = cc.DampingFactor
	c.RotateSpeed = cc.RotateSpeed
	c.AutoRotate = cc.AutoRotate
	c.AutoRotateSpeed = cc.AutoRotateSpeed
	c.EnablePan = cc.EnablePan
	c.EnableZoom = cc.EnableZoom
	return c
}

// Update advances controls, the entrance timeline and free tweens by dt seconds.
func (s *State) Update(dt float32) {
	s.Controls.Update(dt)
	s.Intro.Update(dt)
	s.Tweens.Update(dt)
}

// ApplyTexture attaches a decoded map to the moon. A failed load keeps the
// moon visible with a plain white map.
func (s *State) ApplyTexture(res texture.Result) {
	if res.Err != nil {
		s.log.Warn("moon texture unavailable, using fallback",
			zap.String("path", res.Path),
			zap.Error(res.Err),
		)
		s.Scene.Moon.Material.SetMap(texture.Fallback())
		return
	}
	s.Scene.Moon.Material.SetMap(res.Image)
	s.log.Info("moon texture loaded",
		zap.String("path", res.Path),
		zap.Int("width", res.Image.Bounds().Dx()),
		zap.Int("height", res.Image.Bounds().Dy()),
	)
}
