package display

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputHandler tracks the state of a fixed set of keys between frames
type InputHandler struct {
	window       *glfw.Window
	keys         []glfw.Key
	currentKeys  map[glfw.Key]bool
	previousKeys map[glfw.Key]bool
}

// NewInputHandler creates an input handler watching keys
func NewInputHandler(window *glfw.Window, keys ...glfw.Key) *InputHandler {
	return &InputHandler{
		window:       window,
		keys:         keys,
		currentKeys:  make(map[glfw.Key]bool, len(keys)),
		previousKeys: make(map[glfw.Key]bool, len(keys)),
	}
}

// Update samples the watched keys; call once per frame after polling events
func (ih *InputHandler) Update() {
	for _, key := range ih.keys {
		ih.previousKeys[key] = ih.currentKeys[key]
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

// IsKeyDown checks whether the key is held right now
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed checks whether the key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}
