package config

import (
	"path/filepath"
	"sync"
)

const ShadersDir = "assets/shaders"

// LookSettings holds camera tuning and shader configuration
type LookSettings struct {
	mu               sync.RWMutex
	mouseSensitivity float32
	movementSpeed    float32
	constrainPitch   bool
	vertShader       string
	fragShader       string
}

var globalLookSettings = &LookSettings{
	mouseSensitivity: 0.1,
	movementSpeed:    2.5,
	constrainPitch:   true, // always clamp unless explicitly disabled
	vertShader:       filepath.Join(ShadersDir, "triangle.vert"),
	fragShader:       filepath.Join(ShadersDir, "triangle.frag"),
}

// GetMouseSensitivity returns the pixel-to-degree look multiplier
func GetMouseSensitivity() float32 {
	globalLookSettings.mu.RLock()
	defer globalLookSettings.mu.RUnlock()
	return globalLookSettings.mouseSensitivity
}

// SetMouseSensitivity sets the look multiplier
func SetMouseSensitivity(s float32) {
	globalLookSettings.mu.Lock()
	defer globalLookSettings.mu.Unlock()

	if s < 0.01 {
		s = 0.01
	}
	if s > 2 {
		s = 2
	}

	globalLookSettings.mouseSensitivity = s
}

// GetMovementSpeed returns camera speed in world units per second
func GetMovementSpeed() float32 {
	globalLookSettings.mu.RLock()
	defer globalLookSettings.mu.RUnlock()
	return globalLookSettings.movementSpeed
}

// SetMovementSpeed sets the camera speed
func SetMovementSpeed(speed float32) {
	globalLookSettings.mu.Lock()
	defer globalLookSettings.mu.Unlock()

	if speed < 0.1 {
		speed = 0.1
	}
	if speed > 100 {
		speed = 100
	}

	globalLookSettings.movementSpeed = speed
}

// GetConstrainPitch returns whether mouse look clamps pitch to ±89 degrees
func GetConstrainPitch() bool {
	globalLookSettings.mu.RLock()
	defer globalLookSettings.mu.RUnlock()
	return globalLookSettings.constrainPitch
}

// SetConstrainPitch enables or disables the pitch clamp
func SetConstrainPitch(enabled bool) {
	globalLookSettings.mu.Lock()
	defer globalLookSettings.mu.Unlock()
	globalLookSettings.constrainPitch = enabled
}

// GetShaderPaths returns the vertex and fragment shader file paths
func GetShaderPaths() (string, string) {
	globalLookSettings.mu.RLock()
	defer globalLookSettings.mu.RUnlock()
	return globalLookSettings.vertShader, globalLookSettings.fragShader
}

// SetShaderPaths overrides the shader file paths. Empty arguments keep the current value.
func SetShaderPaths(vert, frag string) {
	globalLookSettings.mu.Lock()
	defer globalLookSettings.mu.Unlock()
	if vert != "" {
		globalLookSettings.vertShader = vert
	}
	if frag != "" {
		globalLookSettings.fragShader = frag
	}
}
