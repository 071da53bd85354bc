package willowgui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTexture is a persistent offscreen canvas. Windows draw their
// contents into one so that children are clipped to the window body.
type RenderTexture struct {
	image *ebiten.Image
	w, h  int
}

// NewRenderTexture creates an offscreen canvas of the given size.
func NewRenderTexture(w, h int) *RenderTexture {
	return &RenderTexture{
		image: ebiten.NewImage(max(w, 1), max(h, 1)),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image.
func (rt *RenderTexture) Image() *ebiten.Image {
	return rt.image
}

// Width returns the texture width in pixels.
func (rt *RenderTexture) Width() int {
	return rt.w
}

// Height returns the texture height in pixels.
func (rt *RenderTexture) Height() int {
	return rt.h
}

// Clear fills the texture with transparent black.
func (rt *RenderTexture) Clear() {
	rt.image.Clear()
}

// Canvas returns a canvas drawing onto the texture with its origin at
// (-ox, -oy).
func (rt *RenderTexture) Canvas(ox, oy float64) *Canvas {
	return newCanvas(rt.image).Translated(-ox, -oy)
}

// Resize deallocates the old image and creates a new one at the given
// dimensions. It does nothing when the size is unchanged.
func (rt *RenderTexture) Resize(width, height int) {
	if rt.image != nil && rt.w == width && rt.h == height {
		return
	}
	if rt.image != nil {
		rt.image.Deallocate()
	}
	rt.image = ebiten.NewImage(max(width, 1), max(height, 1))
	rt.w = width
	rt.h = height
}

// Dispose deallocates the underlying image. The RenderTexture should not be
// used after calling Dispose.
func (rt *RenderTexture) Dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
}
