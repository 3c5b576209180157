package input

import (
	"sync"

	"gl-sandbox/internal/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical sandbox action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
	ActionToggleOverlay
	ActionToggleWireframe
	ActionToggleCursor
	ActionCount // Sentinel value for array sizing
)

var moveActions = [...]struct {
	action Action
	dir    camera.Direction
}{
	{ActionMoveForward, camera.Forward},
	{ActionMoveBackward, camera.Backward},
	{ActionMoveLeft, camera.StrafeLeft},
	{ActionMoveRight, camera.StrafeRight},
}

// Frame is everything the render loop needs from input for one frame
type Frame struct {
	// Held movement directions, in Forward/Backward/StrafeLeft/StrafeRight order
	Move []camera.Direction

	// Cursor delta in pixels since the previous drain. LookY is already
	// inverted so positive means look up.
	LookX float32
	LookY float32

	// Vertical scroll since the previous drain
	Scroll float32

	pressed [ActionCount]bool
}

// JustPressed reports whether the action went down since the previous drain
func (f Frame) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return f.pressed[action]
}

// Manager collects glfw events between frames. Callbacks write into it during
// PollEvents and the render loop drains it once per frame.
type Manager struct {
	mu sync.Mutex

	keyToActions map[glfw.Key][]Action
	actionToKeys [ActionCount][]glfw.Key
	keyDown      map[glfw.Key]bool

	// held is derived from keyDown: an action is held while any bound key is down
	held        [ActionCount]bool
	justPressed [ActionCount]bool

	firstCursor  bool
	lastX, lastY float64
	lookX, lookY float64
	scroll       float64
}

// NewManager creates a Manager with the fixed sandbox key bindings
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
		keyDown:      make(map[glfw.Key]bool),
		firstCursor:  true,
	}

	m.bindKey(glfw.KeyW, ActionMoveForward)
	m.bindKey(glfw.KeyUp, ActionMoveForward)
	m.bindKey(glfw.KeyS, ActionMoveBackward)
	m.bindKey(glfw.KeyDown, ActionMoveBackward)
	m.bindKey(glfw.KeyA, ActionMoveLeft)
	m.bindKey(glfw.KeyLeft, ActionMoveLeft)
	m.bindKey(glfw.KeyD, ActionMoveRight)
	m.bindKey(glfw.KeyRight, ActionMoveRight)
	m.bindKey(glfw.KeyEscape, ActionQuit)
	m.bindKey(glfw.KeyF3, ActionToggleOverlay)
	m.bindKey(glfw.KeyF, ActionToggleWireframe)
	m.bindKey(glfw.KeyTab, ActionToggleCursor)

	return m
}

func (m *Manager) bindKey(key glfw.Key, action Action) {
	m.keyToActions[key] = append(m.keyToActions[key], action)
	m.actionToKeys[action] = append(m.actionToKeys[action], key)
}

func (m *Manager) anyKeyDown(action Action) bool {
	for _, k := range m.actionToKeys[action] {
		if m.keyDown[k] {
			return true
		}
	}
	return false
}

// HandleKeyEvent records a key transition. Repeat counts as held. Releasing
// one of several keys bound to the same action keeps the action held.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	actions, ok := m.keyToActions[key]
	if !ok {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyDown[key] = isPressed
	for _, act := range actions {
		down := m.anyKeyDown(act)
		if down && !m.held[act] {
			m.justPressed[act] = true
		}
		m.held[act] = down
	}
}

// HandleCursorPos accumulates cursor motion. The first event after creation
// or ResetCursor only records the position so the view does not jump.
func (m *Manager) HandleCursorPos(xpos, ypos float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.firstCursor {
		m.lastX = xpos
		m.lastY = ypos
		m.firstCursor = false
		return
	}

	m.lookX += xpos - m.lastX
	m.lookY += m.lastY - ypos // screen y grows downward
	m.lastX = xpos
	m.lastY = ypos
}

// HandleScroll accumulates vertical scroll
func (m *Manager) HandleScroll(xoff, yoff float64) {
	m.mu.Lock()
	m.scroll += yoff
	m.mu.Unlock()
}

// ResetCursor discards pending look deltas and treats the next cursor event
// as the first one. Call it whenever the cursor is recaptured.
func (m *Manager) ResetCursor() {
	m.mu.Lock()
	m.firstCursor = true
	m.lookX, m.lookY = 0, 0
	m.mu.Unlock()
}

// IsActive returns true if the action is currently held
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held[action]
}

// Drain returns the accumulated frame input and clears deltas and edge
// flags. Held keys stay held.
func (m *Manager) Drain() Frame {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := Frame{
		LookX:   float32(m.lookX),
		LookY:   float32(m.lookY),
		Scroll:  float32(m.scroll),
		pressed: m.justPressed,
	}
	for _, ma := range moveActions {
		if m.held[ma.action] {
			f.Move = append(f.Move, ma.dir)
		}
	}

	m.lookX, m.lookY, m.scroll = 0, 0, 0
	m.justPressed = [ActionCount]bool{}
	return f
}

// Attach installs key, cursor and scroll callbacks on the window
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		m.HandleCursorPos(xpos, ypos)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		m.HandleScroll(xoff, yoff)
	})
}
