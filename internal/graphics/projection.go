package graphics

import "github.com/go-gl/mathgl/mgl32"

// Projection holds the frustum parameters the camera does not own.
// The field of view comes from the camera each frame.
type Projection struct {
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewProjection(width, height int) *Projection {
	p := &Projection{
		AspectRatio: 4.0 / 3.0,
		NearPlane:   0.1,
		FarPlane:    100.0,
	}
	p.SetViewport(width, height)
	return p
}

// SetViewport updates the aspect ratio. A zero-sized (minimized) viewport is ignored.
func (p *Projection) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.AspectRatio = float32(width) / float32(height)
}

// Matrix returns the perspective matrix for a vertical fov in degrees
func (p *Projection) Matrix(fovDeg float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), p.AspectRatio, p.NearPlane, p.FarPlane)
}
