package game

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"gl-sandbox/internal/camera"
	"gl-sandbox/internal/config"
	"gl-sandbox/internal/game/timing"
	"gl-sandbox/internal/graphics/renderables/overlay"
	"gl-sandbox/internal/graphics/renderables/triangle"
	"gl-sandbox/internal/graphics/renderer"
	"gl-sandbox/internal/input"
	"gl-sandbox/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// App owns the window, the camera and everything the render loop drives
type App struct {
	window       *glfw.Window
	inputManager *input.Manager
	camera       *camera.Camera
	renderer     *renderer.Renderer
	overlay      *overlay.Overlay

	fpsLimiter *timing.FPSLimiter
	lastTime   time.Time
	captured   bool

	frames       int
	fps          int
	lastFPSCheck time.Time
	totalFrames  atomic.Int64
}

// NewApp builds the renderer and camera for an already-created window.
// Shader load, compile or link failures are returned as errors.
func NewApp(window *glfw.Window) (*App, error) {
	vert, frag := config.GetShaderPaths()
	ov := overlay.NewOverlay()

	fbW, fbH := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbW, fbH,
		triangle.NewTriangle(vert, frag),
		ov,
	)
	if err != nil {
		return nil, err
	}

	cam := camera.New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, -90, 0)
	cam.SetMovementSpeed(config.GetMovementSpeed())
	cam.SetMouseSensitivity(config.GetMouseSensitivity())

	now := time.Now()
	app := &App{
		window:       window,
		inputManager: input.NewManager(),
		camera:       cam,
		renderer:     r,
		overlay:      ov,
		fpsLimiter:   timing.NewFPSLimiter(),
		lastTime:     now,
		lastFPSCheck: now,
		captured:     true,
	}
	SetupInputHandlers(app)
	return app, nil
}

// Camera returns the camera driven by this app
func (a *App) Camera() *camera.Camera {
	return a.camera
}

// Frames returns the number of frames rendered so far. Safe to call from
// any goroutine.
func (a *App) Frames() int64 {
	return a.totalFrames.Load()
}

// Run loops until the window is asked to close, then releases GL resources
func (a *App) Run() {
	defer a.renderer.Dispose()
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := timing.ClampDelta(start.Sub(a.lastTime).Seconds(), config.GetMaxFrameDelta())
	a.lastTime = start

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	frame := a.inputManager.Drain()
	a.handleActions(frame)
	if !a.captured {
		frame.LookX, frame.LookY, frame.Scroll = 0, 0, 0
	}

	frame.Apply(a.camera, dt, config.GetConstrainPitch())

	a.renderer.Render(a.camera, dt, a.fps)
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.frames++
	a.totalFrames.Add(1)
	if time.Since(a.lastFPSCheck) >= time.Second {
		a.fps = a.frames
		fmt.Println("FPS:", a.frames)
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}

	if d := time.Since(start); d > config.GetSlowFrameThreshold() {
		log.Printf("Slow frame: %v (glfw %v). Top tasks: %s", d, profiling.SumWithPrefix("glfw."), profiling.TopN(5))
	}

	a.fpsLimiter.Wait(!a.captured)
}

func (a *App) handleActions(f input.Frame) {
	if f.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if f.JustPressed(input.ActionToggleOverlay) {
		a.overlay.Toggle()
	}
	if f.JustPressed(input.ActionToggleWireframe) {
		a.renderer.ToggleWireframe()
	}
	if f.JustPressed(input.ActionToggleCursor) {
		a.captured = !a.captured
		if a.captured {
			a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			a.inputManager.ResetCursor()
		} else {
			a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		}
	}
}
