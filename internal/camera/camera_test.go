package camera_test

import (
	"math"
	"testing"

	"gl-sandbox/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

var worldUp = mgl32.Vec3{0, 1, 0}

func newDefault() *camera.Camera {
	return camera.New(mgl32.Vec3{0, 0, 3}, worldUp, -90, 0)
}

// approx compares with an absolute tolerance; mgl32's threshold helpers are
// relative and collapse to eps*eps when one side is 0.
func approx(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) < float64(tol)
}

func approxVec(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}

func approxMat(a, b mgl32.Mat4, tol float32) bool {
	for i := range a {
		if !approx(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func TestNewDefaults(t *testing.T) {
	c := newDefault()
	if c.MovementSpeed() != 2.5 {
		t.Errorf("movement speed: got %v, want 2.5", c.MovementSpeed())
	}
	if c.MouseSensitivity() != float32(0.1) {
		t.Errorf("mouse sensitivity: got %v, want 0.1", c.MouseSensitivity())
	}
	if c.FieldOfView() != 45 {
		t.Errorf("fov: got %v, want 45", c.FieldOfView())
	}
	if c.WorldUp() != worldUp {
		t.Errorf("world up: got %v, want %v", c.WorldUp(), worldUp)
	}
}

func TestInitialFrontLooksDownNegativeZ(t *testing.T) {
	c := newDefault()
	want := mgl32.Vec3{0, 0, -1}
	if !approxVec(c.Front(), want, eps) {
		t.Fatalf("front: got %v, want %v", c.Front(), want)
	}
	if !approxVec(c.Right(), mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("right: got %v, want {1 0 0}", c.Right())
	}
	if !approxVec(c.Up(), worldUp, eps) {
		t.Errorf("up: got %v, want %v", c.Up(), worldUp)
	}
}

func TestBasisOrthonormal(t *testing.T) {
	yaws := []float32{-1080, -450, -90, -33.3, 0, 12.5, 90, 179.9, 360, 725, 10000}
	for _, yaw := range yaws {
		for pitch := float32(-88.9); pitch < 89; pitch += 3.7 {
			c := camera.New(mgl32.Vec3{1, 2, 3}, worldUp, yaw, pitch)
			f, r, u := c.Front(), c.Right(), c.Up()

			for name, v := range map[string]mgl32.Vec3{"front": f, "right": r, "up": u} {
				if !approx(v.Len(), 1, eps) {
					t.Fatalf("yaw=%v pitch=%v: |%s| = %v, want 1", yaw, pitch, name, v.Len())
				}
			}
			if d := f.Dot(r); !approx(d, 0, eps) {
				t.Fatalf("yaw=%v pitch=%v: front.right = %v", yaw, pitch, d)
			}
			if d := f.Dot(u); !approx(d, 0, eps) {
				t.Fatalf("yaw=%v pitch=%v: front.up = %v", yaw, pitch, d)
			}
			if d := r.Dot(u); !approx(d, 0, eps) {
				t.Fatalf("yaw=%v pitch=%v: right.up = %v", yaw, pitch, d)
			}
		}
	}
}

func TestInitialBasisHasFloatNoiseNearZero(t *testing.T) {
	// -90° in float32 radians is not exactly -pi/2, so cos is about -4.4e-8
	c := newDefault()
	if x := c.Front().X(); x == 0 || !approx(x, 0, eps) {
		t.Fatalf("front.x: got %v, want tiny non-zero", x)
	}
	if d := c.Front().Dot(c.Up()); !approx(d, 0, eps) {
		t.Errorf("front.up: got %v, want ~0", d)
	}
}

func TestBasisDerivationOrder(t *testing.T) {
	c := camera.New(mgl32.Vec3{}, worldUp, 37, 21)
	c.ApplyLook(120, -310, true)

	wantRight := c.Front().Cross(worldUp).Normalize()
	if !approxVec(c.Right(), wantRight, 1e-6) {
		t.Errorf("right: got %v, want front x worldUp = %v", c.Right(), wantRight)
	}
	wantUp := c.Right().Cross(c.Front()).Normalize()
	if !approxVec(c.Up(), wantUp, 1e-6) {
		t.Errorf("up: got %v, want right x front = %v", c.Up(), wantUp)
	}
	// up tilts with pitch rather than staying on worldUp
	if approxVec(c.Up(), worldUp, 1e-3) {
		t.Errorf("up should follow pitch, got world up %v", c.Up())
	}
}

func TestLookClampsPitchAt89(t *testing.T) {
	c := newDefault()
	c.ApplyLook(0, 900, true)
	if c.Pitch() != camera.MaxPitch {
		t.Fatalf("pitch: got %v, want %v", c.Pitch(), camera.MaxPitch)
	}
}

func TestLookClampHugeOffsets(t *testing.T) {
	c := newDefault()
	c.ApplyLook(0, 10000, true)
	if c.Pitch() != camera.MaxPitch {
		t.Fatalf("pitch after +10000: got %v, want %v", c.Pitch(), camera.MaxPitch)
	}
	c.ApplyLook(0, -10000, true)
	if c.Pitch() != camera.MinPitch {
		t.Fatalf("pitch after -10000: got %v, want %v", c.Pitch(), camera.MinPitch)
	}
	for i := 0; i < 50; i++ {
		c.ApplyLook(3, 700, true)
		if c.Pitch() > camera.MaxPitch || c.Pitch() < camera.MinPitch {
			t.Fatalf("pitch left bounds: %v", c.Pitch())
		}
	}
	if l := c.Right().Len(); !approx(l, 1, eps) {
		t.Errorf("right degenerate at clamped pitch: |right| = %v", l)
	}
}

func TestLookWithoutClamp(t *testing.T) {
	c := newDefault()
	c.ApplyLook(0, 1200, false)
	if !approx(c.Pitch(), 120, 1e-3) {
		t.Fatalf("unconstrained pitch: got %v, want 120", c.Pitch())
	}
}

func TestLookScalesBySensitivity(t *testing.T) {
	c := newDefault()
	c.SetMouseSensitivity(0.5)
	c.ApplyLook(20, -10, true)
	if !approx(c.Yaw(), -80, eps) {
		t.Errorf("yaw: got %v, want -80", c.Yaw())
	}
	if !approx(c.Pitch(), -5, eps) {
		t.Errorf("pitch: got %v, want -5", c.Pitch())
	}
}

func TestZoomSaturates(t *testing.T) {
	c := newDefault()
	c.ApplyZoom(100)
	if c.FieldOfView() != camera.MinFOV {
		t.Fatalf("fov after zoom in: got %v, want %v", c.FieldOfView(), camera.MinFOV)
	}
	c.ApplyZoom(-100)
	if c.FieldOfView() != camera.MaxFOV {
		t.Fatalf("fov after zoom out: got %v, want %v", c.FieldOfView(), camera.MaxFOV)
	}
	for i := 0; i < 100; i++ {
		c.ApplyZoom(1)
		if c.FieldOfView() < camera.MinFOV || c.FieldOfView() > camera.MaxFOV {
			t.Fatalf("fov left bounds at step %d: %v", i, c.FieldOfView())
		}
	}
	if c.FieldOfView() != camera.MinFOV {
		t.Errorf("repeated zoom in should rest at %v, got %v", camera.MinFOV, c.FieldOfView())
	}
}

func TestZoomLeavesPoseAlone(t *testing.T) {
	c := newDefault()
	pos, front := c.Position(), c.Front()
	c.ApplyZoom(5)
	if c.Position() != pos || c.Front() != front {
		t.Errorf("zoom moved the camera: pos %v front %v", c.Position(), c.Front())
	}
}

func TestForwardBackwardRoundTrip(t *testing.T) {
	c := camera.New(mgl32.Vec3{4, -2, 7}, worldUp, 33, -41)
	start := c.Position()
	c.ApplyMovement(camera.Forward, 0.016)
	if approxVec(c.Position(), start, 1e-4) {
		t.Fatalf("forward did not move camera")
	}
	c.ApplyMovement(camera.Backward, 0.016)
	if !approxVec(c.Position(), start, eps) {
		t.Fatalf("round trip: got %v, want %v", c.Position(), start)
	}
}

func TestStrafeRight(t *testing.T) {
	c := newDefault()
	c.ApplyMovement(camera.StrafeRight, 1.0)
	want := mgl32.Vec3{2.5, 0, 3}
	if !approxVec(c.Position(), want, eps) {
		t.Fatalf("strafe right: got %v, want %v", c.Position(), want)
	}
	c.ApplyMovement(camera.StrafeLeft, 1.0)
	if !approxVec(c.Position(), mgl32.Vec3{0, 0, 3}, eps) {
		t.Fatalf("strafe left: got %v, want {0 0 3}", c.Position())
	}
}

func TestMovementKeepsOrientation(t *testing.T) {
	c := camera.New(mgl32.Vec3{}, worldUp, 10, 20)
	yaw, pitch, front := c.Yaw(), c.Pitch(), c.Front()
	c.ApplyMovement(camera.Forward, 2)
	c.ApplyMovement(camera.StrafeLeft, 2)
	if c.Yaw() != yaw || c.Pitch() != pitch || c.Front() != front {
		t.Errorf("movement changed orientation")
	}
}

func TestViewMatrixLookAt(t *testing.T) {
	c := camera.New(mgl32.Vec3{1, 2, 3}, worldUp, 25, 15)
	view := c.ViewMatrix()

	want := mgl32.LookAtV(c.Position(), c.Position().Add(c.Front()), c.Up())
	if !approxMat(view, want, eps) {
		t.Fatalf("view: got %v, want %v", view, want)
	}

	eye := view.Mul4x1(c.Position().Vec4(1)).Vec3()
	if !approxVec(eye, mgl32.Vec3{}, eps) {
		t.Errorf("eye in view space: got %v, want origin", eye)
	}
	ahead := view.Mul4x1(c.Position().Add(c.Front()).Vec4(1)).Vec3()
	if !approxVec(ahead, mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("front in view space: got %v, want {0 0 -1}", ahead)
	}
	if again := c.ViewMatrix(); again != view {
		t.Errorf("view matrix not stable across calls")
	}
}

func TestTuningSettersRejectNegative(t *testing.T) {
	c := newDefault()
	c.SetMovementSpeed(-3)
	if c.MovementSpeed() != 0 {
		t.Errorf("speed: got %v, want 0", c.MovementSpeed())
	}
	c.SetMouseSensitivity(-1)
	if c.MouseSensitivity() != 0 {
		t.Errorf("sensitivity: got %v, want 0", c.MouseSensitivity())
	}
}
