package overlay

import (
	"fmt"
	"image"
	"path/filepath"

	"gl-sandbox/internal/config"
	"gl-sandbox/internal/graphics"
	renderer "gl-sandbox/internal/graphics/renderer"
	"gl-sandbox/internal/graphics/text"
	"gl-sandbox/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	VertShader = filepath.Join(config.ShadersDir, "overlay.vert")
	FragShader = filepath.Join(config.ShadersDir, "overlay.frag")
)

// unit quad, two triangles, xy + uv
var quad = []float32{
	0, 0, 0, 0,
	1, 0, 1, 0,
	1, 1, 1, 1,
	0, 0, 0, 0,
	1, 1, 1, 1,
	0, 1, 0, 1,
}

// Overlay draws the camera readout in the top-left corner
type Overlay struct {
	shader  *graphics.Shader
	vao     uint32
	vbo     uint32
	texture uint32

	texW, texH int
	viewW      int
	viewH      int

	visible bool
	last    string
}

func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

func (o *Overlay) Init() error {
	var err error
	o.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	o.texture = graphics.NewAlphaTexture(image.NewAlpha(image.Rect(0, 0, 1, 1)))
	o.texW, o.texH = 1, 1
	return nil
}

// Toggle flips visibility and returns the new state
func (o *Overlay) Toggle() bool {
	o.visible = !o.visible
	return o.visible
}

// Lines formats the readout for the current frame
func Lines(ctx renderer.RenderContext) []string {
	c := ctx.Camera
	p := c.Position()
	return []string{
		fmt.Sprintf("pos   %7.2f %7.2f %7.2f", p.X(), p.Y(), p.Z()),
		fmt.Sprintf("yaw   %7.2f  pitch %6.2f", c.Yaw(), c.Pitch()),
		fmt.Sprintf("fov   %5.1f   fps %d", c.FieldOfView(), ctx.FPS),
	}
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !o.visible || o.viewW == 0 || o.viewH == 0 {
		return
	}
	defer profiling.Track("renderer.renderOverlay")()

	lines := Lines(ctx)
	key := lines[0] + lines[1] + lines[2]
	if key != o.last {
		img := text.Rasterize(lines)
		graphics.UpdateAlphaTexture(o.texture, img)
		o.texW, o.texH = img.Rect.Dx(), img.Rect.Dy()
		o.last = key
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	o.shader.Use()
	o.shader.SetVector2("screen", float32(o.viewW), float32(o.viewH))
	o.shader.SetVector2("origin", 8, 8)
	o.shader.SetVector2("size", float32(o.texW), float32(o.texH))
	o.shader.SetInt("glyphs", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quad)/4))
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *Overlay) SetViewport(width, height int) {
	o.viewW, o.viewH = width, height
}

func (o *Overlay) Dispose() {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}
