package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default tuning applied by New
const (
	DefaultMovementSpeed    = 2.5
	DefaultMouseSensitivity = 0.1
	DefaultFieldOfView      = 45.0
)

// Orientation and zoom limits, in degrees
const (
	MaxPitch = 89.0
	MinPitch = -89.0
	MinFOV   = 1.0
	MaxFOV   = 45.0
)

// Direction is a translational move along the current basis
type Direction int

const (
	Forward Direction = iota
	Backward
	StrafeLeft
	StrafeRight
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case StrafeLeft:
		return "strafe-left"
	case StrafeRight:
		return "strafe-right"
	}
	return "unknown"
}

// Camera is a first-person free-fly camera driven by yaw/pitch Euler angles.
// front, right and up are derived from yaw, pitch and worldUp and are never
// written from outside deriveBasis.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3

	movementSpeed    float32
	mouseSensitivity float32
	fieldOfView      float32
}

// New creates a camera at position looking along yaw/pitch (degrees).
// The basis is derived before New returns.
func New(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		position:         position,
		worldUp:          worldUp,
		yaw:              yaw,
		pitch:            pitch,
		movementSpeed:    DefaultMovementSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
		fieldOfView:      DefaultFieldOfView,
	}
	c.deriveBasis()
	return c
}

// deriveBasis recomputes front/right/up. right is front x worldUp and up is
// right x front, so up tilts with pitch instead of staying on worldUp.
func (c *Camera) deriveBasis() {
	y := float64(mgl32.DegToRad(c.yaw))
	p := float64(mgl32.DegToRad(c.pitch))
	front := mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ApplyMovement translates the camera by movementSpeed*deltaTime along the
// current basis. Orientation is left untouched.
func (c *Camera) ApplyMovement(dir Direction, deltaTime float32) {
	velocity := c.movementSpeed * deltaTime

	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case StrafeLeft:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case StrafeRight:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ApplyLook adds sensitivity-scaled offsets to yaw and pitch. The caller
// inverts screen-space y before calling so positive yOffset looks up.
// With constrainPitch the pitch saturates at ±89 degrees, which keeps front
// away from worldUp; callers feeding raw user input must pass true.
func (c *Camera) ApplyLook(xOffset, yOffset float32, constrainPitch bool) {
	xOffset *= c.mouseSensitivity
	yOffset *= c.mouseSensitivity

	c.yaw += xOffset
	c.pitch += yOffset

	if constrainPitch {
		if c.pitch > MaxPitch {
			c.pitch = MaxPitch
		}
		if c.pitch < MinPitch {
			c.pitch = MinPitch
		}
	}

	c.deriveBasis()
}

// ApplyZoom narrows the field of view by scrollOffset degrees, saturating
// at [MinFOV, MaxFOV].
func (c *Camera) ApplyZoom(scrollOffset float32) {
	c.fieldOfView -= scrollOffset
	if c.fieldOfView < MinFOV {
		c.fieldOfView = MinFOV
	}
	if c.fieldOfView > MaxFOV {
		c.fieldOfView = MaxFOV
	}
}

// ViewMatrix returns lookAt(position, position+front, up).
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) WorldUp() mgl32.Vec3 { return c.worldUp }
func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) Up() mgl32.Vec3 { return c.up }
func (c *Camera) Yaw() float32 { return c.yaw }
func (c *Camera) Pitch() float32 { return c.pitch }

// FieldOfView returns the vertical field of view in degrees
func (c *Camera) FieldOfView() float32 { return c.fieldOfView }

func (c *Camera) MovementSpeed() float32 { return c.movementSpeed }
func (c *Camera) MouseSensitivity() float32 { return c.mouseSensitivity }

// SetMovementSpeed sets world units per second. Negative values become 0.
func (c *Camera) SetMovementSpeed(speed float32) {
	if speed < 0 {
		speed = 0
	}
	c.movementSpeed = speed
}

// SetMouseSensitivity sets the pixel-to-degree multiplier. Negative values become 0.
func (c *Camera) SetMouseSensitivity(sensitivity float32) {
	if sensitivity < 0 {
		sensitivity = 0
	}
	c.mouseSensitivity = sensitivity
}
