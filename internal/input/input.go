package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical game action, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionSprint
	ActionBreak
	ActionPlace
	ActionCycleBlock
	ActionRegenerate
	ActionPause
	ActionToggleProfiling
	ActionCount // sentinel for array sizing
)

// State is the immutable per-frame input snapshot the simulation consumes.
// Held fields reflect the current key state; the edge fields fire once per
// press.
type State struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Sprint   bool
	Jump     bool

	Break      bool
	Place      bool
	CycleBlock bool
	Regenerate bool

	// Mouse delta accumulated since the previous snapshot, in pixels.
	LookDX float64
	LookDY float64
}

// Manager maps physical keys and mouse buttons to logical actions and tracks
// per-frame press edges and mouse movement.
type Manager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	prevState    [ActionCount]bool
	justPressed  [ActionCount]bool

	lookDX, lookDY    float64
	lastMouseX        float64
	lastMouseY        float64
	haveMousePosition bool
}

// NewManager creates a Manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionJump)
	m.BindKey(glfw.KeyLeftControl, ActionSprint)
	m.BindKey(glfw.KeyB, ActionCycleBlock)
	m.BindKey(glfw.KeyR, ActionRegenerate)
	m.BindKey(glfw.KeyEscape, ActionPause)
	m.BindKey(glfw.KeyV, ActionToggleProfiling)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionBreak)
	m.BindMouseButton(glfw.MouseButtonRight, ActionPlace)

	return m
}

// BindKey maps a key to an action. One key can map to multiple actions.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// BindMouseButton maps a mouse button to an action.
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// InstallCallbacks registers the GLFW callbacks on the window.
func (m *Manager) InstallCallbacks(w *glfw.Window) {
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.handleKey(key, action)
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		m.handleMouseButton(button, action)
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		m.handleCursor(xpos, ypos)
	})
}

func (m *Manager) handleKey(key glfw.Key, action glfw.Action) {
	if action == glfw.Repeat {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.keyToActions[key] {
		m.currentState[a] = action == glfw.Press
	}
}

func (m *Manager) handleMouseButton(button glfw.MouseButton, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.mouseButtonToActions[button] {
		m.currentState[a] = action == glfw.Press
	}
}

func (m *Manager) handleCursor(xpos, ypos float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.haveMousePosition {
		m.lastMouseX = xpos
		m.lastMouseY = ypos
		m.haveMousePosition = true
		return
	}
	m.lookDX += xpos - m.lastMouseX
	m.lookDY += m.lastMouseY - ypos // screen Y grows downward
	m.lastMouseX = xpos
	m.lastMouseY = ypos
}

// ResetMouse forgets the last cursor position, so the next movement after a
// pointer re-capture does not register as a huge delta.
func (m *Manager) ResetMouse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.haveMousePosition = false
	m.lookDX = 0
	m.lookDY = 0
}

// IsActive reports whether the action's key is currently held.
func (m *Manager) IsActive(a Action) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[a]
}

// JustPressed reports whether the action went down since the last Snapshot.
func (m *Manager) JustPressed(a Action) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[a]
}

// Snapshot computes press edges, drains the accumulated mouse delta and
// returns the frame's input state. Call exactly once per frame, after
// glfw.PollEvents.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	for a := Action(0); a < ActionCount; a++ {
		m.justPressed[a] = m.currentState[a] && !m.prevState[a]
		m.prevState[a] = m.currentState[a]
	}

	st := State{
		Forward:  m.currentState[ActionMoveForward],
		Backward: m.currentState[ActionMoveBackward],
		Left:     m.currentState[ActionMoveLeft],
		Right:    m.currentState[ActionMoveRight],
		Sprint:   m.currentState[ActionSprint],
		Jump:     m.currentState[ActionJump],

		Break:      m.justPressed[ActionBreak],
		Place:      m.justPressed[ActionPlace],
		CycleBlock: m.justPressed[ActionCycleBlock],
		Regenerate: m.justPressed[ActionRegenerate],

		LookDX: m.lookDX,
		LookDY: m.lookDY,
	}
	m.lookDX = 0
	m.lookDY = 0
	return st
}
