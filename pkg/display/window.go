// Package display is the GLFW and OpenGL 4.1 presentation surface.
package display

import (
	"fmt"
	"iter"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"noisefield/internal/logger"
	"noisefield/pkg/config"
	"noisefield/pkg/engine"
	"noisefield/pkg/procedural"
)

var _ engine.Surface = (*Window)(nil)

// Window is a fixed-size GLFW window with a core-profile context.
// All methods must be called from the thread that created it.
type Window struct {
	window   *glfw.Window
	input    *InputHandler
	renderer *Renderer
	logger   *logger.Logger
}

// NewWindow initializes GLFW, opens the window and prepares GL resources
func NewWindow(cfg config.GraphicsConfig, log *logger.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// Set window hints
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}
	log.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	renderer, err := NewRenderer(cfg)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize renderer: %v", err)
	}

	// animation time starts when the window is up
	glfw.SetTime(0)

	return &Window{
		window:   window,
		input:    NewInputHandler(window, glfw.KeyEscape),
		renderer: renderer,
		logger:   log,
	}, nil
}

// ShouldClose reports whether the user asked to close the window
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// PollEvents processes pending events; Escape requests a close
func (w *Window) PollEvents() {
	glfw.PollEvents()
	w.input.Update()

	if w.input.IsKeyPressed(glfw.KeyEscape) {
		w.logger.Debug("Escape pressed, closing window")
		w.window.SetShouldClose(true)
	}
}

// Time returns seconds since the window was created
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *Window) ConfigureProjection(width, height int) {
	w.renderer.SetProjection(width, height)
}

func (w *Window) Clear() {
	fbWidth, fbHeight := w.window.GetFramebufferSize()
	w.renderer.Clear(fbWidth, fbHeight)
}

func (w *Window) DrawPoints(points iter.Seq[procedural.Point]) {
	w.renderer.DrawPoints(points)
}

func (w *Window) UploadTexture(buf *procedural.PixelBuffer) {
	w.renderer.Upload(buf)
}

func (w *Window) DrawQuad() {
	w.renderer.DrawQuad()
}

func (w *Window) Present() {
	w.window.SwapBuffers()
}

// Close releases GL resources, the window and GLFW itself
func (w *Window) Close() {
	w.renderer.Close()
	w.window.Destroy()
	glfw.Terminate()
}
