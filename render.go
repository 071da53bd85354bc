package willowgui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing context handed to a Painter. Coordinates are in the
// painted node's local space; the canvas carries the accumulated transform
// and alpha of its ancestors.
type Canvas struct {
	target *ebiten.Image
	geo    ebiten.GeoM
	alpha  float64
}

func newCanvas(target *ebiten.Image) *Canvas {
	return &Canvas{target: target, alpha: 1}
}

// Target returns the image being drawn to.
func (c *Canvas) Target() *ebiten.Image {
	return c.target
}

// Alpha returns the accumulated opacity.
func (c *Canvas) Alpha() float64 {
	return c.alpha
}

// Translated returns a canvas whose origin is moved by (dx, dy).
func (c *Canvas) Translated(dx, dy float64) *Canvas {
	var geo ebiten.GeoM
	geo.Translate(dx, dy)
	geo.Concat(c.geo)
	return &Canvas{target: c.target, geo: geo, alpha: c.alpha}
}

// child returns the canvas for a child node.
func (c *Canvas) child(n *Node) *Canvas {
	var geo ebiten.GeoM
	geo.Scale(n.ScaleX, n.ScaleY)
	geo.Translate(n.X, n.Y)
	geo.Concat(c.geo)
	return &Canvas{target: c.target, geo: geo, alpha: c.alpha * n.Alpha}
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if c.target == nil || w <= 0 || h <= 0 {
		return
	}
	x0, y0 := c.geo.Apply(x, y)
	x1, y1 := c.geo.Apply(x+w, y+h)
	vector.DrawFilledRect(c.target,
		float32(x0), float32(y0), float32(x1-x0), float32(y1-y0),
		col.WithAlpha(c.alpha).toRGBA(), false)
}

// DrawFrame draws a one pixel border just inside a w x h box.
func (c *Canvas) DrawFrame(w, h float64, col Color) {
	c.FillRect(0, 0, w-1, 1, col)
	c.FillRect(w-1, 0, 1, h-1, col)
	c.FillRect(1, h-1, w-1, 1, col)
	c.FillRect(0, 1, 1, h-1, col)
}

// DrawImage draws img with its top-left corner at (x, y).
func (c *Canvas) DrawImage(img *ebiten.Image, x, y float64) {
	c.drawImage(img, x, y, ColorWhite)
}

// DrawImageRegion draws the (sx, sy, sw, sh) region of img at (dx, dy).
func (c *Canvas) DrawImageRegion(img *ebiten.Image, sx, sy, sw, sh, dx, dy float64) {
	c.drawRegion(img, sx, sy, sw, sh, dx, dy, ColorWhite)
}

// drawRegion crops img to (sx, sy, sw, sh), relative to its bounds, and
// draws the result at (dx, dy).
func (c *Canvas) drawRegion(img *ebiten.Image, sx, sy, sw, sh, dx, dy float64, tint Color) {
	if img == nil || sw <= 0 || sh <= 0 {
		return
	}
	b := img.Bounds()
	r := image.Rect(
		b.Min.X+int(math.Floor(sx)), b.Min.Y+int(math.Floor(sy)),
		b.Min.X+int(math.Ceil(sx+sw)), b.Min.Y+int(math.Ceil(sy+sh)),
	).Intersect(b)
	if r.Empty() {
		return
	}
	c.drawImage(img.SubImage(r).(*ebiten.Image), dx, dy, tint)
}

func (c *Canvas) drawImage(img *ebiten.Image, x, y float64, tint Color) {
	if c.target == nil || img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.geo)
	op.ColorScale.Scale(float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A))
	op.ColorScale.ScaleAlpha(float32(c.alpha))
	c.target.DrawImage(img, &op)
}

// DrawText draws a single line of text with its top-left corner at (x, y).
// When maxWidth > 0 glyphs are cropped at that width from x.
func (c *Canvas) DrawText(font Font, s string, x, y, maxWidth float64, col Color) {
	if font == nil {
		return
	}
	var cx float64
	for _, r := range s {
		g, ok := font.Glyph(r)
		if !ok {
			continue
		}
		if g.Image != nil {
			w := g.Width
			if maxWidth > 0 {
				w = min(g.Width, maxWidth-cx)
			}
			if w > 0 {
				c.drawRegion(g.Image, 0, 0, w, g.Height,
					math.Round(x+cx+g.OffsetX), math.Round(y+g.OffsetY), col)
			}
		}
		cx += g.Advance
		if maxWidth > 0 && cx >= maxWidth {
			break
		}
	}
}

// paintTree draws n and, unless its painter declines, its children.
func paintTree(n *Node, c *Canvas) {
	if !n.Visible || n.disposed {
		return
	}
	nc := c.child(n)
	if n.Painter != nil && !n.Painter.Paint(nc) {
		return
	}
	for _, child := range n.children {
		paintTree(child, nc)
	}
}

// paintChildren draws n's children onto c as if c were n's own canvas.
func paintChildren(n *Node, c *Canvas) {
	for _, child := range n.children {
		paintTree(child, c)
	}
}
