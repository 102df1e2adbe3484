// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Scene     SceneConfig     `yaml:"scene"`
	Camera    CameraConfig    `yaml:"camera"`
	Controls  ControlsConfig  `yaml:"controls"`
	Animation AnimationConfig `yaml:"animation"`
	Page      PageConfig      `yaml:"page"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"` // 0 = unlimited

	// ScreenshotDir receives F12 captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LightConfig describes the single point light.
type LightConfig struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Distance  float32    `yaml:"distance"` // 0 = infinite range
	Decay     float32    `yaml:"decay"`
}

// SceneConfig holds the moon, star field and light parameters.
type SceneConfig struct {
	Texture      string      `yaml:"texture"`
	MoonRadius   float32     `yaml:"moon_radius"`
	MoonSegments int         `yaml:"moon_segments"`
	StarCount    int         `yaml:"star_count"`
	StarRadius   float32     `yaml:"star_radius"`
	StarSegments int         `yaml:"star_segments"`
	StarSpread   float32     `yaml:"star_spread"` // edge length of the sampling cube
	Light        LightConfig `yaml:"light"`
}

// CameraConfig holds perspective camera settings.
type CameraConfig struct {
	FOV      float32 `yaml:"fov"` // vertical, degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

// ControlsConfig holds orbit control settings.
type ControlsConfig struct {
	EnableDamping   bool    `yaml:"enable_damping"`
	DampingFactor   float32 `yaml:"damping_factor"`
	RotateSpeed     float32 `yaml:"rotate_speed"`
	AutoRotate      bool    `yaml:"auto_rotate"`
	AutoRotateSpeed float32 `yaml:"auto_rotate_speed"`
	EnablePan       bool    `yaml:"enable_pan"`
	EnableZoom      bool    `yaml:"enable_zoom"`
}

// AnimationConfig holds tween durations.
type AnimationConfig struct {
	StepDuration time.Duration `yaml:"step_duration"`
	TintDuration time.Duration `yaml:"tint_duration"`
}

// PageConfig holds the overlay text and layout.
type PageConfig struct {
	Title      string  `yaml:"title"`
	Brand      string  `yaml:"brand"`
	NavHeight  float32 `yaml:"nav_height"`
	TitleScale float32 `yaml:"title_scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the stock viewer settings.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,

			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Texture:      "moon.jpg",
			MoonRadius:   3,
			MoonSegments: 64,
			StarCount:    200,
			StarRadius:   0.08,
			StarSegments: 10,
			StarSpread:   100,
			Light: LightConfig{
				Position:  [3]float32{0, 10, 10},
				Color:     [3]float32{1, 1, 1},
				Intensity: 300,
				Distance:  100,
				Decay:     2,
			},
		},
		Camera: CameraConfig{
			FOV:      50,
			Near:     0.1,
			Far:      100,
			Distance: 20,
		},
		Controls: ControlsConfig{
			EnableDamping:   true,
			DampingFactor:   0.05,
			RotateSpeed:     1,
			AutoRotate:      true,
			AutoRotateSpeed: 3.5,
			EnablePan:       false,
			EnableZoom:      false,
		},
		Animation: AnimationConfig{
			StepDuration: time.Second,
			TintDuration: 500 * time.Millisecond,
		},
		Page: PageConfig{
			Title:      "Give it a spin",
			Brand:      "Sphere",
			NavHeight:  64,
			TitleScale: 4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot produce a usable scene.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	case c.Graphics.FPSLimit < 0:
		return fmt.Errorf("graphics: negative fps_limit %d", c.Graphics.FPSLimit)
	case c.Scene.MoonRadius <= 0 || c.Scene.StarRadius <= 0:
		return errors.New("scene: radii must be positive")
	case c.Scene.MoonSegments < 3 || c.Scene.StarSegments < 3:
		return errors.New("scene: spheres need at least 3 segments")
	case c.Scene.StarCount < 0:
		return fmt.Errorf("scene: negative star_count %d", c.Scene.StarCount)
	case c.Scene.StarSpread < 0:
		return errors.New("scene: negative star_spread")
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera: invalid clip range %g..%g", c.Camera.Near, c.Camera.Far)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("camera: invalid fov %g", c.Camera.FOV)
	case c.Controls.DampingFactor < 0 || c.Controls.DampingFactor > 1:
		return fmt.Errorf("controls: damping_factor %g out of [0,1]", c.Controls.DampingFactor)
	case c.Animation.StepDuration <= 0 || c.Animation.TintDuration <= 0:
		return errors.New("animation: durations must be positive")
	}
	return nil
}
