package config

import (
	"sync"
	"time"
)

// WindowSettings holds window and frame timing configuration
type WindowSettings struct {
	mu            sync.RWMutex
	width         int
	height        int
	title         string
	vsync         bool
	fpsLimit      int     // 0 = unlimited
	maxFrameDelta float64 // seconds
	slowFrame     time.Duration
}

var globalWindowSettings = &WindowSettings{
	width:         800,
	height:        600,
	title:         "gl-sandbox",
	vsync:         false,
	fpsLimit:      0,
	maxFrameDelta: 0.25,
	slowFrame:     16 * time.Millisecond,
}

// GetWindowSize returns the initial window size in screen coordinates
func GetWindowSize() (int, int) {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.width, globalWindowSettings.height
}

// SetWindowSize sets the initial window size
func SetWindowSize(width, height int) {
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()

	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}

	globalWindowSettings.width = width
	globalWindowSettings.height = height
}

// GetWindowTitle returns the window title
func GetWindowTitle() string {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.title
}

// SetWindowTitle sets the window title. Empty titles are ignored.
func SetWindowTitle(title string) {
	if title == "" {
		return
	}
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()
	globalWindowSettings.title = title
}

// GetVSync returns whether buffer swaps wait for vertical sync
func GetVSync() bool {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.vsync
}

// SetVSync enables or disables vertical sync
func SetVSync(enabled bool) {
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()
	globalWindowSettings.vsync = enabled
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalWindowSettings.fpsLimit = limit
}

// GetMaxFrameDelta returns the largest frame delta, in seconds, fed to the camera.
// Longer stalls are truncated so the camera does not teleport.
func GetMaxFrameDelta() float64 {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.maxFrameDelta
}

// SetMaxFrameDelta sets the frame delta cap in seconds
func SetMaxFrameDelta(seconds float64) {
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()

	if seconds < 0.001 {
		seconds = 0.001
	}
	if seconds > 1 {
		seconds = 1
	}

	globalWindowSettings.maxFrameDelta = seconds
}

// GetSlowFrameThreshold returns the frame time above which a slow frame is logged
func GetSlowFrameThreshold() time.Duration {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.slowFrame
}

// SetSlowFrameThreshold sets the slow frame threshold
func SetSlowFrameThreshold(d time.Duration) {
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()

	if d < time.Millisecond {
		d = time.Millisecond
	}

	globalWindowSettings.slowFrame = d
}
