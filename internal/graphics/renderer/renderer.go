package renderer

import (
	"fmt"

	"gl-sandbox/internal/camera"
	"gl-sandbox/internal/graphics"
	"gl-sandbox/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	projection  *graphics.Projection
	wireframe   bool
}

// NewRenderer configures GL state and initializes every renderable in order
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)

	r := &Renderer{
		renderables: rs,
		projection:  graphics.NewProjection(width, height),
	}

	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			// release the ones that did come up
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		rr.SetViewport(width, height)
	}

	return r, nil
}

// Render clears the frame and draws every feature from the camera's point of view
func (r *Renderer) Render(cam *camera.Camera, dt float64, fps int) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:     cam,
		Projection: r.projection,
		DT:         dt,
		FPS:        fps,
		View:       cam.ViewMatrix(),
		Proj:       r.projection.Matrix(cam.FieldOfView()),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// ToggleWireframe switches between filled and line polygon mode
func (r *Renderer) ToggleWireframe() bool {
	r.wireframe = !r.wireframe
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	return r.wireframe
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport propagates a framebuffer resize to the projection and all renderables
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection.SetViewport(width, height)
	for _, rr := range r.renderables {
		rr.SetViewport(width, height)
	}
}
