package engine

import (
	"iter"

	"noisefield/pkg/procedural"
)

// Surface is the window the frame loop draws into. It owns the graphics
// context and the present cycle.
type Surface interface {
	// ShouldClose reports a pending close request
	ShouldClose() bool

	// PollEvents processes window and input events
	PollEvents()

	// Time returns seconds since the surface was created
	Time() float64

	// SetTitle updates the window title
	SetTitle(title string)

	// ConfigureProjection maps draw coordinates to window pixels with the
	// origin at the top-left corner
	ConfigureProjection(width, height int)

	// Clear fills the frame with the background color
	Clear()

	// DrawPoints draws each point as one white pixel
	DrawPoints(points iter.Seq[procedural.Point])

	// UploadTexture copies buf into the surface texture. buf is only read
	// for the duration of the call.
	UploadTexture(buf *procedural.PixelBuffer)

	// DrawQuad draws the texture over the whole window
	DrawQuad()

	// Present swaps the finished frame onto the screen
	Present()

	// Close releases the window and context
	Close()
}
