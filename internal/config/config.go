// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/polyprism/internal/control"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig    `yaml:"graphics"`
	Camera   CameraConfig      `yaml:"camera"`
	Object   ObjectConfig      `yaml:"object"`
	Game     GameConfig        `yaml:"game"`
	Bindings map[string]string `yaml:"bindings"` // action name -> SDL key name
	Logging  LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	ClearColor [3]float32 `yaml:"clear_color,flow"`

	// UploadEveryFrame re-sends the vertex and index buffers every frame.
	// When false they are only sent after the shape changes.
	UploadEveryFrame bool `yaml:"upload_every_frame"`
}

// CameraConfig holds the fly camera setup.
type CameraConfig struct {
	Position [3]float32 `yaml:"position,flow"`
	Target   [3]float32 `yaml:"target,flow"`
	Up       [3]float32 `yaml:"up,flow"`
	Speed    float32    `yaml:"speed"`
}

// ObjectConfig holds the object transform speeds.
type ObjectConfig struct {
	Speed         float32 `yaml:"speed"`
	Step          float32 `yaml:"step"`
	RotateDegrees float32 `yaml:"rotate_degrees"`
}

// GameConfig holds viewer behaviour settings.
type GameConfig struct {
	Seed    uint64 `yaml:"seed"` // color seed, 0 picks one at startup
	ShowFPS bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:            "polyprism",
			Width:            800,
			Height:           800,
			Fullscreen:       false,
			VSync:            true,
			FOVDegrees:       45,
			Near:             0.1,
			Far:              100,
			ClearColor:       [3]float32{0.2, 0.3, 0.3},
			UploadEveryFrame: true,
		},
		Camera: CameraConfig{
			Position: [3]float32{0, 0, 3},
			Target:   [3]float32{0, 0, 0.5},
			Up:       [3]float32{0, 1, 0},
			Speed:    2.5,
		},
		Object: ObjectConfig{
			Speed:         5,
			Step:          0.1,
			RotateDegrees: 0.5,
		},
		Game: GameConfig{
			Seed:    0,
			ShowFPS: false,
		},
		Bindings: control.DefaultBindings(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error

	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size must be positive, got %dx%d", g.Width, g.Height))
	}
	if g.FOVDegrees <= 0 || g.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov_degrees must be in (0, 180), got %g", g.FOVDegrees))
	}
	if g.Near <= 0 || g.Far <= g.Near {
		errs = append(errs, fmt.Errorf("graphics: need 0 < near < far, got near=%g far=%g", g.Near, g.Far))
	}
	if c.Camera.Position == c.Camera.Target {
		errs = append(errs, errors.New("camera: position and target must differ"))
	}
	if c.Camera.Up == [3]float32{} {
		errs = append(errs, errors.New("camera: up vector must be non-zero"))
	}

	for name := range c.Bindings {
		if _, err := control.ParseAction(name); err != nil {
			errs = append(errs, fmt.Errorf("bindings: %w", err))
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}

	return errors.Join(errs...)
}
