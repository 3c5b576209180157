// Package timing paces the render loop and guards the frame delta.
package timing

// ClampDelta guards the frame delta handed to the camera: negative deltas
// become 0 and stalls longer than max are truncated to max.
func ClampDelta(dt, max float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}
