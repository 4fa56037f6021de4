// Package frame holds everything the render loop mutates between frames.
package frame

import (
	"go.uber.org/zap"

	"github.com/Faultbox/polyprism/internal/config"
	"github.com/Faultbox/polyprism/internal/control"
	"github.com/Faultbox/polyprism/internal/engine/camera"
	"github.com/Faultbox/polyprism/internal/engine/transform"
	"github.com/Faultbox/polyprism/internal/logger"
	"github.com/Faultbox/polyprism/internal/mesh"
	"github.com/Faultbox/polyprism/pkg/math"
)

// Phase is the render loop state.
type Phase int

const (
	Running Phase = iota
	Closing
)

func (p Phase) String() string {
	if p == Running {
		return "running"
	}
	return "closing"
}

// State is owned by the render loop and passed to the input and render
// steps by pointer. Nothing in it is shared across goroutines.
type State struct {
	Phase     Phase
	Camera    *camera.FlyCamera
	Transform *transform.Controller
	Prism     *mesh.Prism
	Shape     mesh.Shape

	// toggle remembers whether the shape key was down last frame
	toggle control.Latch

	uploadEveryFrame bool
	dirty            bool
	frames           uint64
}

// New builds the initial state from config around an already generated prism.
func New(cfg *config.Config, prism *mesh.Prism) *State {
	cam := camera.NewFlyCamera(
		math.V3(cfg.Camera.Position),
		math.V3(cfg.Camera.Target),
		math.V3(cfg.Camera.Up),
	)
	cam.Speed = cfg.Camera.Speed

	tr := transform.NewController()
	tr.Speed = cfg.Object.Speed
	tr.Step = cfg.Object.Step
	tr.RotateDegrees = cfg.Object.RotateDegrees

	return &State{
		Phase:            Running,
		Camera:           cam,
		Transform:        tr,
		Prism:            prism,
		Shape:            mesh.ShapePrism,
		uploadEveryFrame: cfg.Graphics.UploadEveryFrame,
		dirty:            true,
	}
}

// Step applies one frame of input: quit, camera, object transform, shape
// toggle and morph. It returns false once the loop should close.
func (s *State) Step(dt float32, held control.ActionSet) bool {
	if s.Phase != Running {
		return false
	}
	s.frames++

	if held.Has(control.Quit) {
		s.Close()
		return false
	}

	s.Camera.Update(dt, held)
	s.Transform.Apply(dt, held)

	if s.toggle.Update(held.Has(control.ToggleShape)) {
		s.Shape = s.Shape.Toggle()
		logger.Debug("shape toggled",
			zap.Stringer("shape", s.Shape),
			zap.Uint64("frame", s.frames),
		)
	}

	if s.Prism.Morph(s.Shape) {
		s.dirty = true
	}

	return true
}

// Close moves the loop to the closing phase. Safe to call more than once.
func (s *State) Close() {
	if s.Phase == Closing {
		return
	}
	s.Phase = Closing
	logger.Info("render loop closing", zap.Uint64("frames", s.frames))
}

// View returns the view matrix for the current camera.
func (s *State) View() math.Mat4 {
	return s.Camera.ViewMatrix()
}

// Model returns the accumulated model matrix.
func (s *State) Model() math.Mat4 {
	return s.Transform.Model
}

// NeedsUpload reports whether the GPU buffers must be re-sent this frame
// and clears the pending flag.
func (s *State) NeedsUpload() bool {
	need := s.uploadEveryFrame || s.dirty
	s.dirty = false
	return need
}

// Frames returns the number of steps taken.
func (s *State) Frames() uint64 {
	return s.frames
}
