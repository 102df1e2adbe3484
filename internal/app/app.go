package app

import (
	"context"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-moon/internal/config"
	"github.com/Faultbox/midgard-moon/internal/engine/input"
	"github.com/Faultbox/midgard-moon/internal/engine/renderer"
	"github.com/Faultbox/midgard-moon/internal/engine/screenshot"
	"github.com/Faultbox/midgard-moon/internal/engine/texture"
	"github.com/Faultbox/midgard-moon/internal/engine/window"
	"github.com/Faultbox/midgard-moon/internal/logger"
)

// App is the running viewer: a window, its renderer and the scene state.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	events   *input.Dispatcher
	state    *State
	loop     *Loop

	textures <-chan texture.Result

	capture *screenshot.Capture
}

// glSurface resizes the renderer to the window's drawable size.
type glSurface struct {
	window   *window.Window
	renderer *renderer.Renderer
}

func (s glSurface) SetSize(width, height int) {
	fbWidth, fbHeight := s.window.DrawableSize()
	s.renderer.SetSize(fbWidth, fbHeight, width, height)
}

// New opens the window and builds the scene. The moon texture starts
// loading in the background and is attached once decoded.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		cfg:    cfg,
		log:    logger.Named("app"),
		events: input.NewDispatcher(),
		loop:   NewLoop(cfg.Graphics.FPSLimit),

		capture: screenshot.New(cfg.Graphics.ScreenshotDir, "moon"),
	}

	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	a.window, err = window.New(cfg.Graphics)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since OpenGL context must exist
	a.renderer, err = renderer.New()
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.textures = texture.LoadAsync(ctx, cfg.Scene.Texture)

	a.state = NewState(cfg, glSurface{window: a.window, renderer: a.renderer}, nil)
	a.state.Resize(a.window.Size())
	a.state.Bind(a.events, a.loop.Stop)

	a.log.Info("viewer initialized")
	return a, nil
}

// Run drives frames until the window closes, Escape is pressed or ctx ends.
func (a *App) Run(ctx context.Context) error {
	return a.loop.Run(ctx, func(dt float64) error {
		a.events.Poll(ctx)
		a.pollTexture()

		a.state.Update(float32(dt))
		a.renderer.Render(a.state.Scene, a.state.Overlay)
		if err := a.renderer.Err(); err != nil {
			return err
		}
		if a.events.IsKeyPressed(sdl.SCANCODE_F12) {
			a.saveScreenshot()
		}

		a.window.SwapBuffers()
		return nil
	})
}

// pollTexture attaches the decoded moon map once it arrives.
func (a *App) pollTexture() {
	if a.textures == nil {
		return
	}
	select {
	case res, ok := <-a.textures:
		if ok {
			a.state.ApplyTexture(res)
		}
		a.textures = nil
	default:
	}
}

// saveScreenshot writes the current back buffer. Failures are logged only.
func (a *App) saveScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.capture.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL and window resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
