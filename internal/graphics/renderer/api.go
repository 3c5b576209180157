package renderer

import (
	"gl-sandbox/internal/camera"
	"gl-sandbox/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera     *camera.Camera
	Projection *graphics.Projection
	DT         float64
	FPS        int
	View       mgl32.Mat4
	Proj       mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
