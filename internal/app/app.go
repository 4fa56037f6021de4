// Package app wires the window, input, renderer and frame state into the
// render loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/polyprism/internal/config"
	"github.com/Faultbox/polyprism/internal/engine/input"
	"github.com/Faultbox/polyprism/internal/engine/renderer"
	"github.com/Faultbox/polyprism/internal/engine/window"
	"github.com/Faultbox/polyprism/internal/frame"
	"github.com/Faultbox/polyprism/internal/logger"
	"github.com/Faultbox/polyprism/internal/mesh"
)

// App is the viewer instance.
type App struct {
	config   *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	state    *frame.State
	log      *zap.Logger
}

// New generates the prism and brings up the window, GL context and renderer.
func New(cfg *config.Config, sides int) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}

	prism, err := mesh.Generate(sides, mesh.NewRand(cfg.Game.Seed))
	if err != nil {
		return nil, err
	}
	a.log.Info("prism generated",
		zap.Int("sides", prism.Sides),
		zap.Int("vertices", prism.VertexCount()),
		zap.Int("indices", prism.IndexCount()),
		zap.Uint64("seed", cfg.Game.Seed),
	)

	// Create window (this also creates the OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, err
	}

	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		FOVDegrees: cfg.Graphics.FOVDegrees,
		Near:       cfg.Graphics.Near,
		Far:        cfg.Graphics.Far,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		a.window.Close()
		return nil, err
	}

	a.input, err = input.New(cfg.Bindings)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("input bindings: %w", err)
	}

	a.state = frame.New(cfg, prism)

	a.log.Info("viewer initialized")
	return a, nil
}

// Run drives the render loop until the window is closed or quit is pressed.
func (a *App) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	// Pump once so the first keyboard sample is current
	a.input.Poll()

	a.log.Info("starting render loop")

	for a.state.Phase == frame.Running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if !a.state.Step(dt, a.input.Held()) {
			break
		}

		a.render()

		// Present, then let the OS deliver events for the next frame
		a.window.SwapBuffers()
		if a.input.Poll() {
			a.state.Close()
		}
		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				a.renderer.Resize(event.Width, event.Height)
			}
		}

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Uint64("frames", a.state.Frames()),
				zap.Duration("dt", time.Duration(float64(dt)*float64(time.Second))),
				zap.Stringer("shape", a.state.Shape),
				zap.Float32("rotation_z", a.state.Transform.RotationZ()),
				zap.Any("object_offset", a.state.Model().Translation()),
				zap.Float32("camera_distance", a.state.Camera.Position.Distance(a.state.Camera.Target)),
			)
			if a.config.Game.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %d FPS", a.window.Title(), frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// render draws the current frame.
func (a *App) render() {
	a.renderer.Begin()

	view := a.state.View()
	if a.state.NeedsUpload() {
		a.renderer.Upload(a.state.Prism)
	}
	a.renderer.Draw(a.state.Prism, a.state.Model(), view)
}

// Close releases the renderer and the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
