package input

import (
	"testing"

	"gl-sandbox/internal/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func newCamera() *camera.Camera {
	return camera.New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, -90, 0)
}

func approxVec(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}

func TestApplyMovesAlongHeldDirections(t *testing.T) {
	m := NewManager()
	m.HandleKeyEvent(glfw.KeyD, glfw.Press)
	cam := newCamera()

	m.Drain().Apply(cam, 1.0, true)

	want := mgl32.Vec3{2.5, 0, 3}
	if !approxVec(cam.Position(), want, 1e-5) {
		t.Fatalf("position: got %v, want %v", cam.Position(), want)
	}
}

func TestApplyLookBeforeZoom(t *testing.T) {
	m := NewManager()
	m.HandleCursorPos(0, 0)
	m.HandleCursorPos(0, -900) // cursor moved up the screen
	m.HandleScroll(0, 10)
	cam := newCamera()

	m.Drain().Apply(cam, 0.016, true)

	if cam.Pitch() != camera.MaxPitch {
		t.Errorf("pitch: got %v, want %v", cam.Pitch(), camera.MaxPitch)
	}
	if cam.FieldOfView() != 35 {
		t.Errorf("fov: got %v, want 35", cam.FieldOfView())
	}
	if !approxVec(cam.Position(), mgl32.Vec3{0, 0, 3}, 1e-6) {
		t.Errorf("position moved without keys: %v", cam.Position())
	}
}

func TestApplyEmptyFrameLeavesCamera(t *testing.T) {
	cam := newCamera()
	before := *cam
	Frame{}.Apply(cam, 0.5, true)
	if *cam != before {
		t.Errorf("empty frame changed camera")
	}
}

func TestApplyUnconstrained(t *testing.T) {
	cam := newCamera()
	Frame{LookY: 1000}.Apply(cam, 0, false)
	if cam.Pitch() <= camera.MaxPitch {
		t.Errorf("pitch should pass 89 when unconstrained, got %v", cam.Pitch())
	}
}
