package procedural

import "fmt"

// BytesPerPixel is the interleaved RGB stride
const BytesPerPixel = 3

// PixelBuffer is a row-major interleaved RGB image
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a width×height RGB buffer
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("failed to allocate pixel buffer: invalid size %dx%d", width, height)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}, nil
}

// Offset returns the index of the red channel of pixel (x, y)
func (b *PixelBuffer) Offset(x, y int) int {
	return (y*b.Width + x) * BytesPerPixel
}

// RGB returns the three channels of pixel (x, y)
func (b *PixelBuffer) RGB(x, y int) (byte, byte, byte) {
	i := b.Offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Fill sets every byte to v
func (b *PixelBuffer) Fill(v byte) {
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Release drops the backing memory. The buffer must not be used afterwards.
func (b *PixelBuffer) Release() {
	b.Pix = nil
}
