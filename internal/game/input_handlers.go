package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupInputHandlers routes window events into the input manager and renderer
func SetupInputHandlers(app *App) {
	app.inputManager.Attach(app.window)

	app.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		app.renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// repaint while the user drags the window edge
	app.window.SetRefreshCallback(func(w *glfw.Window) {
		app.renderer.Render(app.camera, 0, app.fps)
		w.SwapBuffers()
	})
}
