package triangle

import (
	"gl-sandbox/internal/graphics"
	renderer "gl-sandbox/internal/graphics/renderer"
	"gl-sandbox/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertices is the hard-coded triangle, xyz per vertex
var Vertices = []float32{
	-0.5, -0.5, 0.0, // left
	0.5, -0.5, 0.0, // right
	0.0, 0.5, 0.0, // top
}

// Triangle draws a single triangle at the world origin
type Triangle struct {
	vertPath string
	fragPath string

	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	model  mgl32.Mat4
}

// NewTriangle creates a triangle renderable using the given shader files
func NewTriangle(vertPath, fragPath string) *Triangle {
	return &Triangle{
		vertPath: vertPath,
		fragPath: fragPath,
		model:    mgl32.Ident4(),
	}
}

// Init compiles the shader and uploads the vertex buffer
func (t *Triangle) Init() error {
	var err error
	t.shader, err = graphics.NewShader(t.vertPath, t.fragPath)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// Render draws the triangle with the frame's view and projection
func (t *Triangle) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderTriangle")()

	t.shader.Use()
	t.shader.SetMatrix4("model", t.model)
	t.shader.SetMatrix4("view", ctx.View)
	t.shader.SetMatrix4("projection", ctx.Proj)

	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(Vertices)/3))
	gl.BindVertexArray(0)
}

// SetViewport is a no-op; the triangle lives in world space
func (t *Triangle) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (t *Triangle) Dispose() {
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}
