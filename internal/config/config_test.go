package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %s", cfg.Graphics.ScreenshotDir)
	}

	// Scene constants
	if cfg.Scene.StarCount != 200 {
		t.Errorf("expected 200 stars, got %d", cfg.Scene.StarCount)
	}
	if cfg.Scene.StarSpread != 100 {
		t.Errorf("expected star spread 100, got %f", cfg.Scene.StarSpread)
	}
	if cfg.Scene.MoonRadius != 3 || cfg.Scene.MoonSegments != 64 {
		t.Errorf("expected moon r=3 seg=64, got r=%f seg=%d", cfg.Scene.MoonRadius, cfg.Scene.MoonSegments)
	}
	if cfg.Scene.Light.Intensity != 300 {
		t.Errorf("expected light intensity 300, got %f", cfg.Scene.Light.Intensity)
	}

	// Camera and controls
	if cfg.Camera.FOV != 50 || cfg.Camera.Distance != 20 {
		t.Errorf("expected fov 50 distance 20, got fov %f distance %f", cfg.Camera.FOV, cfg.Camera.Distance)
	}
	if cfg.Controls.EnablePan || cfg.Controls.EnableZoom {
		t.Error("expected pan and zoom to be disabled by default")
	}
	if !cfg.Controls.AutoRotate || cfg.Controls.AutoRotateSpeed != 3.5 {
		t.Errorf("expected auto rotate at 3.5, got %v at %f", cfg.Controls.AutoRotate, cfg.Controls.AutoRotateSpeed)
	}

	if cfg.Animation.StepDuration != time.Second {
		t.Errorf("expected step duration 1s, got %v", cfg.Animation.StepDuration)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

scene:
  texture: "assets/moon.png"
  star_count: 50

controls:
  auto_rotate_speed: 1.5

animation:
  step_duration: 250ms

page:
  title: "Hello"

logging:
  level: "debug"
  log_file: "moon.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Scene.Texture != "assets/moon.png" {
		t.Errorf("expected texture assets/moon.png, got %s", cfg.Scene.Texture)
	}
	if cfg.Scene.StarCount != 50 {
		t.Errorf("expected 50 stars, got %d", cfg.Scene.StarCount)
	}
	// Untouched keys keep their defaults
	if cfg.Scene.StarSpread != 100 {
		t.Errorf("expected default star spread, got %f", cfg.Scene.StarSpread)
	}
	if cfg.Controls.AutoRotateSpeed != 1.5 {
		t.Errorf("expected auto rotate speed 1.5, got %f", cfg.Controls.AutoRotateSpeed)
	}
	if cfg.Animation.StepDuration != 250*time.Millisecond {
		t.Errorf("expected step duration 250ms, got %v", cfg.Animation.StepDuration)
	}
	if cfg.Page.Title != "Hello" {
		t.Errorf("expected title Hello, got %s", cfg.Page.Title)
	}
	if cfg.Logging.LogFile != "moon.log" {
		t.Errorf("expected log file 'moon.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative fps", func(c *Config) { c.Graphics.FPSLimit = -1 }},
		{"zero moon radius", func(c *Config) { c.Scene.MoonRadius = 0 }},
		{"two segments", func(c *Config) { c.Scene.StarSegments = 2 }},
		{"negative stars", func(c *Config) { c.Scene.StarCount = -5 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }},
		{"damping above one", func(c *Config) { c.Controls.DampingFactor = 1.5 }},
		{"zero step", func(c *Config) { c.Animation.StepDuration = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "texture flag",
			setup: func() { *flagTexture = "other.jpg" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Texture != "other.jpg" {
					t.Errorf("expected texture other.jpg, got %s", cfg.Scene.Texture)
				}
			},
			teardown: func() { *flagTexture = "" },
		},
		{
			name:  "fps flag",
			setup: func() { *flagFPS = 30 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.FPSLimit != 30 {
					t.Errorf("expected fps limit 30, got %d", cfg.Graphics.FPSLimit)
				}
			},
			teardown: func() { *flagFPS = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Texture = "saved.jpg"
	cfg.Animation.TintDuration = 750 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Scene.Texture != "saved.jpg" {
		t.Errorf("expected texture saved.jpg, got %s", loaded.Scene.Texture)
	}
	if loaded.Animation.TintDuration != 750*time.Millisecond {
		t.Errorf("expected tint duration 750ms, got %v", loaded.Animation.TintDuration)
	}
}
