package main

import (
	"flag"
	"log"
	"runtime"

	"gl-sandbox/internal/config"
	"gl-sandbox/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// glfw and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	title := flag.String("title", config.GetWindowTitle(), "window title")
	fps := flag.Int("fps", 0, "frame cap, 0 for unlimited")
	vsync := flag.Bool("vsync", false, "wait for vertical sync on swap")
	maxDelta := flag.Float64("max-delta", config.GetMaxFrameDelta(), "largest frame step in seconds")
	slowFrame := flag.Duration("slow-frame", config.GetSlowFrameThreshold(), "log frames slower than this")
	sensitivity := flag.Float64("sensitivity", 0.1, "mouse look degrees per pixel")
	speed := flag.Float64("speed", 2.5, "movement speed in units per second")
	noClamp := flag.Bool("no-clamp", false, "allow pitch past ±89 degrees")
	vert := flag.String("vert", "", "vertex shader path")
	frag := flag.String("frag", "", "fragment shader path")
	flag.Parse()

	config.SetWindowSize(*width, *height)
	config.SetWindowTitle(*title)
	config.SetFPSLimit(*fps)
	config.SetVSync(*vsync)
	config.SetMaxFrameDelta(*maxDelta)
	config.SetSlowFrameThreshold(*slowFrame)
	config.SetMouseSensitivity(float32(*sensitivity))
	config.SetMovementSpeed(float32(*speed))
	config.SetConstrainPitch(!*noClamp)
	config.SetShaderPaths(*vert, *frag)

	if err := glfw.Init(); err != nil {
		closer.Fatalln("init glfw:", err)
	}

	window, err := game.SetupWindow()
	if err != nil {
		closer.Fatalln(err)
	}

	app, err := game.NewApp(window)
	if err != nil {
		closer.Fatalln("startup:", err)
	}

	// runs on exit signals as well as normal shutdown, off the main thread
	closer.Bind(func() {
		log.Printf("session: %d frames rendered", app.Frames())
	})

	app.Run()

	p := app.Camera().Position()
	log.Printf("camera stopped at %.2f %.2f %.2f", p.X(), p.Y(), p.Z())
	window.Destroy()
	glfw.Terminate()
	closer.Close()
}
