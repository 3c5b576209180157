package input

import (
	"gl-sandbox/internal/camera"
	"gl-sandbox/internal/profiling"
)

// Apply feeds one frame of input to the camera in the fixed order
// movement, look, zoom. dt must already be guarded by the caller.
func (f Frame) Apply(cam *camera.Camera, dt float64, constrainPitch bool) {
	defer profiling.Track("camera.Apply")()

	for _, dir := range f.Move {
		cam.ApplyMovement(dir, float32(dt))
	}
	if f.LookX != 0 || f.LookY != 0 {
		cam.ApplyLook(f.LookX, f.LookY, constrainPitch)
	}
	if f.Scroll != 0 {
		cam.ApplyZoom(f.Scroll)
	}
}
