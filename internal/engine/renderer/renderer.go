// Package renderer draws the prism with OpenGL.
package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/polyprism/internal/engine/renderer/shaders"
	"github.com/Faultbox/polyprism/internal/engine/shader"
	"github.com/Faultbox/polyprism/internal/logger"
	"github.com/Faultbox/polyprism/internal/mesh"
	"github.com/Faultbox/polyprism/pkg/math"
)

// ErrGLInit means the OpenGL function pointers could not be loaded.
var ErrGLInit = errors.New("failed to initialize OpenGL")

const (
	floatSize  = 4
	uint32Size = 4
	stride     = mesh.FloatsPerVertex * floatSize
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOVDegrees float32
	Near       float32
	Far        float32
	ClearColor [3]float32
}

// Renderer owns the GL program and the prism's vertex/index buffers.
type Renderer struct {
	config     Config
	projection math.Mat4
	log        *zap.Logger

	program *shader.Program
	vao     uint32
	vbo     uint32
	ebo     uint32

	uploads uint64
}

// New creates a new renderer.
// Must be called AFTER the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGLInit, err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)

	var err error
	r.program, err = shader.NewProgram(
		shaders.PrismVertexShader,
		shaders.PrismFragmentShader,
		"model", "view", "projection",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// createBuffers sets up the VAO with position at location 0 and color at
// location 1, both read from the interleaved vertex buffer.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	// The element buffer binding is VAO state
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*floatSize)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.log.Debug("buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Uint32("ebo", r.ebo),
	)
}

// Close releases the GL objects.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Uint64("uploads", r.uploads))
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the viewport and the projection aspect ratio.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))

	aspect := float32(width) / float32(height)
	r.projection = math.Perspective(math.Radians(r.config.FOVDegrees), aspect, r.config.Near, r.config.Far)

	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("aspect", aspect),
	)
}

// Begin clears the color and depth targets.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Upload sends the prism's vertex and index buffers to the GPU.
func (r *Renderer) Upload(p *mesh.Prism) {
	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.Vertices)*floatSize, unsafe.Pointer(&p.Vertices[0]), gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(p.Indices)*uint32Size, unsafe.Pointer(&p.Indices[0]), gl.DYNAMIC_DRAW)

	gl.BindVertexArray(0)
	r.uploads++
}

// Draw renders the bottom cap, the top cap and the side walls.
func (r *Renderer) Draw(p *mesh.Prism, model, view math.Mat4) {
	n := int32(p.Sides)

	r.program.Use()
	r.program.SetMat4("model", &model)
	r.program.SetMat4("view", &view)
	r.program.SetMat4("projection", &r.projection)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, n)
	gl.DrawArrays(gl.TRIANGLE_FAN, n, n)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(p.IndexCount()), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}
